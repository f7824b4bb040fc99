package ftree

import (
	"math/rand"
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

func mustCheck(t *testing.T, tr Tree[int]) {
	t.Helper()
	if err := CheckInvariants[int](tr); err != nil {
		t.Fatalf("CheckInvariants: %v", err)
	}
}

func TestEmpty(t *testing.T) {
	e := Empty[int]()
	if !IsEmpty[int](e) {
		t.Fatalf("Empty() is not IsEmpty")
	}
	if e.Size() != 0 {
		t.Fatalf("Empty().Size() = %d, want 0", e.Size())
	}
	mustCheck(t, e)
}

func TestFromSliceAndToSlice(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 7, 8, 9, 16, 100, 257} {
		xs := seqOf(n)
		tr := FromSlice(xs)
		mustCheck(t, tr)
		if tr.Size() != n {
			t.Fatalf("n=%d: Size() = %d", n, tr.Size())
		}
		got := ToSlice(tr)
		if !reflect.DeepEqual(got, xs) {
			t.Fatalf("n=%d: ToSlice mismatch:\n got  %v\n want %v", n, got, xs)
		}
	}
}

func TestPushLeftRight(t *testing.T) {
	tr := Empty[int]()
	var want []int
	for i := 0; i < 200; i++ {
		if i%2 == 0 {
			tr = PushRight(tr, i)
			want = append(want, i)
		} else {
			tr = PushLeft(tr, i)
			want = append([]int{i}, want...)
		}
		mustCheck(t, tr)
	}
	if got := ToSlice(tr); !reflect.DeepEqual(got, want) {
		t.Fatalf("push sequence mismatch:\n got  %v\n want %v", got, want)
	}
}

func TestViewLeftRight(t *testing.T) {
	xs := seqOf(50)
	tr := FromSlice(xs)

	for i := 0; i < 50; i++ {
		v, rest, err := ViewLeft(tr)
		if err != nil {
			t.Fatalf("ViewLeft at i=%d: %v", i, err)
		}
		if v != xs[i] {
			t.Fatalf("ViewLeft at i=%d: got %d, want %d", i, v, xs[i])
		}
		mustCheck(t, rest)
		tr = rest
	}
	if !IsEmpty[int](tr) {
		t.Fatalf("tree not empty after draining")
	}

	_, _, err := ViewLeft(tr)
	if !errkind.Is(err, errkind.EmptyContainer) {
		t.Fatalf("ViewLeft on empty: got err %v, want EmptyContainer", err)
	}

	tr = FromSlice(xs)
	for i := 49; i >= 0; i-- {
		rest, v, err := ViewRight(tr)
		if err != nil {
			t.Fatalf("ViewRight at i=%d: %v", i, err)
		}
		if v != xs[i] {
			t.Fatalf("ViewRight at i=%d: got %d, want %d", i, v, xs[i])
		}
		mustCheck(t, rest)
		tr = rest
	}

	_, _, err = ViewRight(Empty[int]())
	if !errkind.Is(err, errkind.EmptyContainer) {
		t.Fatalf("ViewRight on empty: got err %v, want EmptyContainer", err)
	}
}

func TestPeek(t *testing.T) {
	tr := FromSlice(seqOf(5))
	if v, err := PeekLeft(tr); err != nil || v != 0 {
		t.Fatalf("PeekLeft() = %d, %v, want 0, nil", v, err)
	}
	if v, err := PeekRight(tr); err != nil || v != 4 {
		t.Fatalf("PeekRight() = %d, %v, want 4, nil", v, err)
	}
	if tr.Size() != 5 {
		t.Fatalf("Peek mutated tree size to %d", tr.Size())
	}

	if _, err := PeekLeft(Empty[int]()); !errkind.Is(err, errkind.EmptyContainer) {
		t.Fatalf("PeekLeft on empty: got %v", err)
	}
}

func TestIndex(t *testing.T) {
	xs := seqOf(123)
	tr := FromSlice(xs)
	for i, want := range xs {
		got, err := Index(tr, i)
		if err != nil {
			t.Fatalf("Index(%d): %v", i, err)
		}
		if got != want {
			t.Fatalf("Index(%d) = %d, want %d", i, got, want)
		}
	}
	if _, err := Index(tr, -1); !errkind.Is(err, errkind.OutOfRange) {
		t.Fatalf("Index(-1): got %v, want OutOfRange", err)
	}
	if _, err := Index(tr, 123); !errkind.Is(err, errkind.OutOfRange) {
		t.Fatalf("Index(123): got %v, want OutOfRange", err)
	}
}

func TestSplitAtAndTakeDrop(t *testing.T) {
	xs := seqOf(77)
	tr := FromSlice(xs)

	for _, i := range []int{-5, 0, 1, 7, 38, 76, 77, 100} {
		l, r := SplitAt(tr, i)
		mustCheck(t, l)
		mustCheck(t, r)

		clamped := i
		if clamped < 0 {
			clamped = 0
		}
		if clamped > 77 {
			clamped = 77
		}

		gotL := ToSlice(l)
		gotR := ToSlice(r)
		if !reflect.DeepEqual(gotL, xs[:clamped]) {
			t.Fatalf("SplitAt(%d) left = %v, want %v", i, gotL, xs[:clamped])
		}
		if !reflect.DeepEqual(gotR, xs[clamped:]) {
			t.Fatalf("SplitAt(%d) right = %v, want %v", i, gotR, xs[clamped:])
		}

		take := ToSlice(Take(tr, i))
		if !reflect.DeepEqual(take, xs[:clamped]) {
			t.Fatalf("Take(%d) = %v, want %v", i, take, xs[:clamped])
		}
		drop := ToSlice(Drop(tr, i))
		if !reflect.DeepEqual(drop, xs[clamped:]) {
			t.Fatalf("Drop(%d) = %v, want %v", i, drop, xs[clamped:])
		}
	}
}

func TestConcat(t *testing.T) {
	for _, na := range []int{0, 1, 3, 8, 50} {
		for _, nb := range []int{0, 1, 3, 8, 50} {
			a := FromSlice(seqOf(na))
			b := FromSlice(seqOf(nb))
			c := Concat(a, b)
			mustCheck(t, c)
			if c.Size() != na+nb {
				t.Fatalf("Concat(%d,%d).Size() = %d", na, nb, c.Size())
			}
			want := append(append([]int{}, seqOf(na)...), seqOf(nb)...)
			if got := ToSlice(c); !reflect.DeepEqual(got, want) {
				t.Fatalf("Concat(%d,%d) = %v, want %v", na, nb, got, want)
			}
		}
	}
}

func TestSetAtInsertAtDeleteAt(t *testing.T) {
	xs := seqOf(30)
	tr := FromSlice(xs)

	set, err := SetAt(tr, 10, 999)
	if err != nil {
		t.Fatalf("SetAt: %v", err)
	}
	mustCheck(t, set)
	want := append([]int{}, xs...)
	want[10] = 999
	if got := ToSlice(set); !reflect.DeepEqual(got, want) {
		t.Fatalf("SetAt(10,999) = %v, want %v", got, want)
	}
	if _, err := SetAt(tr, 30, 0); !errkind.Is(err, errkind.OutOfRange) {
		t.Fatalf("SetAt(30): got %v, want OutOfRange", err)
	}

	ins := InsertAt(tr, 10, -1)
	mustCheck(t, ins)
	want = append(append(append([]int{}, xs[:10]...), -1), xs[10:]...)
	if got := ToSlice(ins); !reflect.DeepEqual(got, want) {
		t.Fatalf("InsertAt(10,-1) = %v, want %v", got, want)
	}
	if got := ToSlice(InsertAt(tr, -5, -1)); got[0] != -1 {
		t.Fatalf("InsertAt clamps below 0 incorrectly: %v", got)
	}
	if got := ToSlice(InsertAt(tr, 1000, -1)); got[len(got)-1] != -1 {
		t.Fatalf("InsertAt clamps above n incorrectly: %v", got)
	}

	del, err := DeleteAt(tr, 10)
	if err != nil {
		t.Fatalf("DeleteAt: %v", err)
	}
	mustCheck(t, del)
	want = append(append([]int{}, xs[:10]...), xs[11:]...)
	if got := ToSlice(del); !reflect.DeepEqual(got, want) {
		t.Fatalf("DeleteAt(10) = %v, want %v", got, want)
	}
	if _, err := DeleteAt(tr, -1); !errkind.Is(err, errkind.OutOfRange) {
		t.Fatalf("DeleteAt(-1): got %v, want OutOfRange", err)
	}
}

func TestDeleteSlice(t *testing.T) {
	xs := seqOf(40)
	tr := FromSlice(xs)
	got := ToSlice(DeleteSlice(tr, 10, 20))
	want := append(append([]int{}, xs[:10]...), xs[20:]...)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DeleteSlice(10,20) = %v, want %v", got, want)
	}
}

func TestMultiSet(t *testing.T) {
	xs := seqOf(20)
	tr := FromSlice(xs)

	pairs := []IndexValue[int]{
		{Index: 3, Value: 300},
		{Index: 7, Value: 700},
		{Index: 3, Value: 303}, // duplicate: last write wins
	}
	got, err := MultiSet(tr, pairs)
	if err != nil {
		t.Fatalf("MultiSet: %v", err)
	}
	mustCheck(t, got)

	want := append([]int{}, xs...)
	want[3] = 303
	want[7] = 700
	if gotSlice := ToSlice(got); !reflect.DeepEqual(gotSlice, want) {
		t.Fatalf("MultiSet = %v, want %v", gotSlice, want)
	}

	if _, err := MultiSet(tr, []IndexValue[int]{{Index: 99, Value: 0}}); !errkind.Is(err, errkind.OutOfRange) {
		t.Fatalf("MultiSet out-of-range: got %v, want OutOfRange", err)
	}
}

func TestSliceContigAndStrided(t *testing.T) {
	xs := seqOf(30)
	tr := FromSlice(xs)

	got := ToSlice(SliceContig(tr, 5, 15))
	if !reflect.DeepEqual(got, xs[5:15]) {
		t.Fatalf("SliceContig(5,15) = %v, want %v", got, xs[5:15])
	}

	got = ToSlice(SliceStrided(tr, 0, 30, 3))
	var want []int
	for i := 0; i < 30; i += 3 {
		want = append(want, i)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SliceStrided(0,30,3) = %v, want %v", got, want)
	}

	got = ToSlice(SliceStrided(tr, 29, -1, -2))
	want = nil
	for i := 29; i > -1; i -= 2 {
		want = append(want, i)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SliceStrided(29,-1,-2) = %v, want %v", got, want)
	}
}

func TestReverse(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 8, 9, 100} {
		xs := seqOf(n)
		tr := Reverse(FromSlice(xs))
		mustCheck(t, tr)
		want := make([]int, n)
		for i, x := range xs {
			want[n-1-i] = x
		}
		if got := ToSlice(tr); !reflect.DeepEqual(got, want) {
			t.Fatalf("Reverse(n=%d) = %v, want %v", n, got, want)
		}
	}
}

func TestRepeat(t *testing.T) {
	xs := []int{1, 2, 3}
	tr := FromSlice(xs)
	for _, k := range []int{0, 1, 2, 3, 5, 8} {
		got := ToSlice(Repeat(tr, k))
		mustCheck(t, Repeat(tr, k))
		want := []int{}
		for i := 0; i < k; i++ {
			want = append(want, xs...)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Repeat(k=%d) = %v, want %v", k, got, want)
		}
	}
}

func TestBackwardIterator(t *testing.T) {
	xs := seqOf(25)
	tr := FromSlice(xs)
	var got []int
	for v := range Backward(tr) {
		got = append(got, v)
	}
	want := make([]int, 25)
	for i, x := range xs {
		want[24-i] = x
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Backward = %v, want %v", got, want)
	}
}

func TestIteratorEarlyStop(t *testing.T) {
	tr := FromSlice(seqOf(10))
	var got []int
	for v := range All(tr) {
		got = append(got, v)
		if v == 3 {
			break
		}
	}
	if !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("early-stop iteration = %v", got)
	}
}

func TestStringDoesNotPanic(t *testing.T) {
	for _, n := range []int{0, 1, 5, 20} {
		tr := FromSlice(seqOf(n))
		if s := String(tr); s == "" {
			t.Fatalf("String(n=%d) returned empty output", n)
		}
	}
}

// TestRandomizedAgainstSliceModel performs a randomized differential test:
// a sequence of push/insert/delete/split/concat operations is applied in
// lockstep to a Tree and to a plain Go slice, and the two are compared
// after every step, with invariants re-checked each time.
func TestRandomizedAgainstSliceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	tr := Empty[int]()
	model := []int{}

	for step := 0; step < 2000; step++ {
		switch rng.Intn(7) {
		case 0:
			v := rng.Int()
			tr = PushLeft(tr, v)
			model = append([]int{v}, model...)
		case 1:
			v := rng.Int()
			tr = PushRight(tr, v)
			model = append(model, v)
		case 2:
			if len(model) > 0 {
				i := rng.Intn(len(model))
				v := rng.Int()
				var err error
				tr, err = SetAt(tr, i, v)
				if err != nil {
					t.Fatalf("SetAt: %v", err)
				}
				model[i] = v
			}
		case 3:
			i := rng.Intn(len(model) + 1)
			v := rng.Int()
			tr = InsertAt(tr, i, v)
			model = append(model[:i:i], append([]int{v}, model[i:]...)...)
		case 4:
			if len(model) > 0 {
				i := rng.Intn(len(model))
				var err error
				tr, err = DeleteAt(tr, i)
				if err != nil {
					t.Fatalf("DeleteAt: %v", err)
				}
				model = append(model[:i:i], model[i+1:]...)
			}
		case 5:
			i := rng.Intn(len(model) + 1)
			l, r := SplitAt(tr, i)
			tr = Concat(l, r)
		case 6:
			if len(model) > 1 {
				i := rng.Intn(len(model))
				j := rng.Intn(len(model))
				if i > j {
					i, j = j, i
				}
				tr = DeleteSlice(tr, i, j)
				model = append(model[:i:i], model[j:]...)
			}
		}

		if tr.Size() != len(model) {
			t.Fatalf("step %d: size mismatch: tree=%d model=%d", step, tr.Size(), len(model))
		}
		if got := ToSlice(tr); !reflect.DeepEqual(got, model) {
			t.Fatalf("step %d: mismatch:\n got  %v\n want %v", step, got, model)
		}
		if err := CheckInvariants[int](tr); err != nil {
			t.Fatalf("step %d: CheckInvariants: %v", step, err)
		}
	}
}

func FuzzFromSliceRoundTrip(f *testing.F) {
	f.Add(0)
	f.Add(1)
	f.Add(17)
	f.Add(257)
	f.Fuzz(func(t *testing.T, n int) {
		if n < 0 || n > 5000 {
			t.Skip()
		}
		xs := seqOf(n)
		tr := FromSlice(xs)
		if err := CheckInvariants[int](tr); err != nil {
			t.Fatalf("CheckInvariants: %v", err)
		}
		if got := ToSlice(tr); !reflect.DeepEqual(got, xs) {
			t.Fatalf("round trip mismatch for n=%d", n)
		}
	})
}
