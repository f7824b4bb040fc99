package ftree

import (
	"sort"

	"github.com/gaissmai/pcollections/errkind"
)

// IndexValue pairs a normalized, non-negative index with a replacement
// value for MultiSet.
type IndexValue[T any] struct {
	Index int
	Value T
}

// SetAt returns a tree with the element at i replaced by v, in
// O(log n) (§4.1.1). i must already be a normalized index in [0, n).
func SetAt[T any](t Tree[T], i int, v T) (Tree[T], error) {
	if i < 0 || i >= t.Size() {
		return t, errkind.New(errkind.OutOfRange, "set index %d out of range [0,%d)", i, t.Size())
	}
	prefix, suffix := SplitAt(t, i)
	_, tail, _ := ViewLeft(suffix)
	return Concat(prefix, PushLeft(tail, v)), nil
}

// InsertAt inserts v at position i, in O(log min(i, n-i)). Out-of-range i
// clamps to a push at the corresponding end, per §4.1.1 "Insert".
func InsertAt[T any](t Tree[T], i int, v T) Tree[T] {
	n := t.Size()
	if i <= 0 {
		return PushLeft(t, v)
	}
	if i >= n {
		return PushRight(t, v)
	}
	prefix, suffix := SplitAt(t, i)
	return Concat(PushRight(prefix, v), suffix)
}

// DeleteAt removes the element at i, in O(log min(i, n-i)). i must already
// be a normalized index in [0, n).
func DeleteAt[T any](t Tree[T], i int) (Tree[T], error) {
	if i < 0 || i >= t.Size() {
		return t, errkind.New(errkind.OutOfRange, "delete index %d out of range [0,%d)", i, t.Size())
	}
	prefix, suffix := SplitAt(t, i)
	_, tail, _ := ViewLeft(suffix)
	return Concat(prefix, tail), nil
}

// DeleteSlice removes the contiguous range [start, stop), composing split
// and concat as §4.1.1 "Delete" specifies for slice deletion.
func DeleteSlice[T any](t Tree[T], start, stop int) Tree[T] {
	if stop < start {
		stop = start
	}
	return Concat(Take(t, start), Drop(t, stop))
}

// MultiSet applies a batch of (index, value) replacements, normalized
// indices only. Duplicate indices keep the last value (§4.1.1
// "Multi-set", testable property 10). All indices are validated before
// any rewriting takes place (§7 propagation policy). Each distinct index
// is then rewritten by its own SetAt call, so the batch costs one
// O(log n) split/concat round per index; there is no shared single
// traversal.
func MultiSet[T any](t Tree[T], pairs []IndexValue[T]) (Tree[T], error) {
	n := t.Size()
	last := make(map[int]T, len(pairs))
	order := make([]int, 0, len(pairs))

	for _, p := range pairs {
		if p.Index < 0 || p.Index >= n {
			return t, errkind.New(errkind.OutOfRange, "multi-set index %d out of range [0,%d)", p.Index, n)
		}
		if _, seen := last[p.Index]; !seen {
			order = append(order, p.Index)
		}
		last[p.Index] = p.Value
	}

	// process in descending index order, as §4.1.1 specifies, so each
	// rewrite's split/concat leaves earlier (smaller) indices undisturbed.
	sort.Sort(sort.Reverse(sort.IntSlice(order)))

	cur := t
	for _, idx := range order {
		var err error
		cur, err = SetAt(cur, idx, last[idx])
		if err != nil {
			return t, err
		}
	}
	return cur, nil
}
