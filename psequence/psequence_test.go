package psequence

import (
	"reflect"
	"testing"

	"github.com/gaissmai/pcollections/errkind"
)

func seqOf(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}

func iptr(i int) *int { return &i }

func TestEmptyAndFrom(t *testing.T) {
	e := Empty[int]()
	if !e.IsEmpty() || e.Len() != 0 {
		t.Fatalf("Empty() not empty")
	}
	s := From(seqOf(5))
	if s.Len() != 5 {
		t.Fatalf("From().Len() = %d, want 5", s.Len())
	}
	if got := s.ToSlice(); !reflect.DeepEqual(got, seqOf(5)) {
		t.Fatalf("ToSlice() = %v", got)
	}
}

func TestGetNegativeIndex(t *testing.T) {
	s := From(seqOf(5))
	v, err := s.Get(-1)
	if err != nil || v != 4 {
		t.Fatalf("Get(-1) = %d, %v, want 4, nil", v, err)
	}
	v, err = s.Get(-5)
	if err != nil || v != 0 {
		t.Fatalf("Get(-5) = %d, %v, want 0, nil", v, err)
	}
	if _, err := s.Get(-6); !errkind.Is(err, errkind.OutOfRange) {
		t.Fatalf("Get(-6): got %v, want OutOfRange", err)
	}
	if _, err := s.Get(5); !errkind.Is(err, errkind.OutOfRange) {
		t.Fatalf("Get(5): got %v, want OutOfRange", err)
	}
}

func TestSetSpec(t *testing.T) {
	s := From([]int{1, 2, 3, 4})
	got, err := s.Set(2, 0)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !reflect.DeepEqual(got.ToSlice(), []int{1, 2, 0, 4}) {
		t.Fatalf("Set(2,0) = %v, want [1 2 0 4]", got.ToSlice())
	}
}

func TestDeleteSliceConcreteScenario(t *testing.T) {
	s := From([]int{1, 2, 3, 4, 5})
	got := s.DeleteSlice(iptr(1), iptr(4), nil)
	if !reflect.DeepEqual(got.ToSlice(), []int{1, 5}) {
		t.Fatalf("DeleteSlice(1,4) = %v, want [1 5]", got.ToSlice())
	}
}

func TestInsertClampSpec(t *testing.T) {
	s := From([]int{1, 2, 3, 4})
	got := s.Insert(-10, 0)
	if !reflect.DeepEqual(got.ToSlice(), []int{0, 1, 2, 3, 4}) {
		t.Fatalf("Insert(-10,0) = %v, want [0 1 2 3 4]", got.ToSlice())
	}
}

func TestSplitAtClampSpec(t *testing.T) {
	s := From([]int{1, 2, 3, 4})
	l, r := s.SplitAt(5)
	if !reflect.DeepEqual(l.ToSlice(), []int{1, 2, 3, 4}) || !r.IsEmpty() {
		t.Fatalf("SplitAt(5) = %v, %v, want ([1 2 3 4], [])", l.ToSlice(), r.ToSlice())
	}
}

func TestRepeatOperatorScenario(t *testing.T) {
	s := From([]int{1, 2, 3})
	got := s.Repeat(3)
	want := []int{1, 2, 3, 1, 2, 3, 1, 2, 3}
	if !reflect.DeepEqual(got.ToSlice(), want) {
		t.Fatalf("Repeat(3) = %v, want %v", got.ToSlice(), want)
	}
}

func TestGetSliceVariants(t *testing.T) {
	s := From(seqOf(10))

	got := s.GetSlice(iptr(2), iptr(7), nil)
	if !reflect.DeepEqual(got.ToSlice(), []int{2, 3, 4, 5, 6}) {
		t.Fatalf("GetSlice(2,7) = %v", got.ToSlice())
	}

	got = s.GetSlice(nil, nil, iptr(-1))
	want := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	if !reflect.DeepEqual(got.ToSlice(), want) {
		t.Fatalf("GetSlice(::-1) = %v, want %v", got.ToSlice(), want)
	}

	got = s.GetSlice(iptr(-3), nil, nil)
	if !reflect.DeepEqual(got.ToSlice(), []int{7, 8, 9}) {
		t.Fatalf("GetSlice(-3:) = %v", got.ToSlice())
	}

	got = s.GetSlice(nil, nil, iptr(2))
	if !reflect.DeepEqual(got.ToSlice(), []int{0, 2, 4, 6, 8}) {
		t.Fatalf("GetSlice(::2) = %v", got.ToSlice())
	}
}

func TestSetSliceContiguousResizes(t *testing.T) {
	s := From([]int{1, 2, 3, 4, 5})
	got, err := s.SetSlice(iptr(1), iptr(3), nil, []int{10, 20, 30, 40})
	if err != nil {
		t.Fatalf("SetSlice: %v", err)
	}
	want := []int{1, 10, 20, 30, 40, 4, 5}
	if !reflect.DeepEqual(got.ToSlice(), want) {
		t.Fatalf("SetSlice = %v, want %v", got.ToSlice(), want)
	}
}

func TestSetSliceStridedLengthMismatch(t *testing.T) {
	s := From(seqOf(10))
	_, err := s.SetSlice(nil, nil, iptr(2), []int{1, 2, 3})
	if !errkind.Is(err, errkind.LengthMismatch) {
		t.Fatalf("SetSlice strided mismatch: got %v, want LengthMismatch", err)
	}

	got, err := s.SetSlice(nil, nil, iptr(2), []int{100, 100, 100, 100, 100})
	if err != nil {
		t.Fatalf("SetSlice: %v", err)
	}
	want := []int{100, 1, 100, 3, 100, 5, 100, 7, 100, 9}
	if !reflect.DeepEqual(got.ToSlice(), want) {
		t.Fatalf("SetSlice strided = %v, want %v", got.ToSlice(), want)
	}
}

func TestChunksOf(t *testing.T) {
	s := From(seqOf(10))
	chunks, err := s.ChunksOf(3)
	if err != nil {
		t.Fatalf("ChunksOf: %v", err)
	}
	if len(chunks) != 4 {
		t.Fatalf("ChunksOf(3) produced %d chunks, want 4", len(chunks))
	}
	if !reflect.DeepEqual(chunks[3].ToSlice(), []int{9}) {
		t.Fatalf("last chunk = %v, want [9]", chunks[3].ToSlice())
	}
	if _, err := s.ChunksOf(0); !errkind.Is(err, errkind.InvalidArgument) {
		t.Fatalf("ChunksOf(0): got %v, want InvalidArgument", err)
	}
}

func TestMultiView(t *testing.T) {
	s := From(seqOf(10))
	segs, vals, err := s.MultiView([]int{2, 5, 8})
	if err != nil {
		t.Fatalf("MultiView: %v", err)
	}
	if len(segs) != 4 || len(vals) != 3 {
		t.Fatalf("MultiView returned %d segments, %d values", len(segs), len(vals))
	}
	if !reflect.DeepEqual(vals, []int{2, 5, 8}) {
		t.Fatalf("MultiView values = %v", vals)
	}
	if !reflect.DeepEqual(segs[0].ToSlice(), []int{0, 1}) {
		t.Fatalf("segment 0 = %v, want [0 1]", segs[0].ToSlice())
	}
	if !reflect.DeepEqual(segs[1].ToSlice(), []int{3, 4}) {
		t.Fatalf("segment 1 = %v, want [3 4]", segs[1].ToSlice())
	}
	if !reflect.DeepEqual(segs[3].ToSlice(), []int{9}) {
		t.Fatalf("segment 3 = %v, want [9]", segs[3].ToSlice())
	}

	if _, _, err := s.MultiView([]int{5, 2}); !errkind.Is(err, errkind.InvalidArgument) {
		t.Fatalf("non-ascending MultiView: got %v, want InvalidArgument", err)
	}
}

func TestSortAndReverse(t *testing.T) {
	s := From([]int{3, 1, 4, 1, 5, 9, 2, 6})
	sorted := s.Sort(func(a, b int) bool { return a < b }, false)
	want := []int{1, 1, 2, 3, 4, 5, 6, 9}
	if !reflect.DeepEqual(sorted.ToSlice(), want) {
		t.Fatalf("Sort() = %v, want %v", sorted.ToSlice(), want)
	}

	rev := s.Reverse().Reverse()
	if !rev.Equal(s, func(a, b int) bool { return a == b }) {
		t.Fatalf("Reverse(Reverse(s)) != s")
	}
}

func TestEqualAndCompare(t *testing.T) {
	a := From([]int{1, 2, 3})
	b := From([]int{1, 2, 3})
	c := From([]int{1, 2, 4})
	eq := func(x, y int) bool { return x == y }
	less := func(x, y int) bool { return x < y }

	if !a.Equal(b, eq) {
		t.Fatalf("Equal(a,b) = false")
	}
	if a.Equal(c, eq) {
		t.Fatalf("Equal(a,c) = true")
	}
	if a.Compare(c, less) >= 0 {
		t.Fatalf("Compare(a,c) should be negative")
	}
	if From([]int{1, 2}).Compare(a, less) >= 0 {
		t.Fatalf("shorter prefix should compare less")
	}
}

func TestEvolverRoundTrip(t *testing.T) {
	e := NewEvolver(From([]int{1, 2, 3}))
	e.AppendRight(4)
	e.AppendLeft(0)
	if _, err := e.Set(2, 99); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got := e.Persistent().ToSlice()
	want := []int{0, 1, 99, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Evolver persistent = %v, want %v", got, want)
	}

	clone := e.Copy()
	clone.AppendRight(1000)
	if reflect.DeepEqual(clone.Persistent().ToSlice(), e.Persistent().ToSlice()) {
		t.Fatalf("Copy() shared state with original evolver")
	}

	v, err := e.PopLeft()
	if err != nil || v != 0 {
		t.Fatalf("PopLeft() = %d, %v, want 0, nil", v, err)
	}
}

func TestEvolverPersistentMatchesPureOperations(t *testing.T) {
	base := From(seqOf(20))

	pure := base
	pure = pure.Insert(5, 100)
	pure, _ = pure.Delete(0)
	pure = pure.PushRight(999)
	pure = pure.Reverse()

	e := NewEvolver(base)
	e.Insert(5, 100)
	if _, err := e.Delete(0); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	e.AppendRight(999)
	e.Reverse()

	if !pure.Equal(e.Persistent(), func(a, b int) bool { return a == b }) {
		t.Fatalf("evolver diverged from pure pipeline:\n evolver %v\n pure    %v", e.Persistent().ToSlice(), pure.ToSlice())
	}
}
