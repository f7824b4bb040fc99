package pheap

import (
	"cmp"

	"github.com/gaissmai/pcollections/internal/bheap"
)

// Push returns a heap with (key, value) added, in O(1) amortized
// (§4.3.6).
func (h PHeap[K, V, P]) Push(key K, value V) PHeap[K, V, P] {
	return PHeap[K, V, P]{h: bheap.Insert(h.h, key, value)}
}

// Pop returns the heap without its winning entry, plus that entry's key
// and value. Fails with errkind.EmptyContainer on an empty heap (§4.3.4).
func (h PHeap[K, V, P]) Pop() (PHeap[K, V, P], K, V, error) {
	rest, k, v, err := bheap.Pop(h.h)
	if err != nil {
		return h, k, v, err
	}
	return PHeap[K, V, P]{h: rest}, k, v, nil
}

// Peek returns the winning (key, value) without removing it.
func (h PHeap[K, V, P]) Peek() (K, V, error) {
	return bheap.Peek(h.h)
}

// Merge combines h with other in O(log(n+m)) (§4.3.5).
func (h PHeap[K, V, P]) Merge(other PHeap[K, V, P]) PHeap[K, V, P] {
	return PHeap[K, V, P]{h: bheap.Merge(h.h, other.h)}
}

// MergeIterable merges in every pair of an iterable of (key, value)
// pairs, the iterable-peer form of Merge (§4.3 "merge with ... iterable
// of pairs").
func (h PHeap[K, V, P]) MergeIterable(pairs []Pair[K, V]) PHeap[K, V, P] {
	return h.Merge(FromPairs[K, V, P](pairs))
}

// Contains reports whether key appears anywhere in h (membership test by
// key, §6).
func (h PHeap[K, V, P]) Contains(key K) bool {
	for p := range bheap.All(h.h) {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Items returns every (key, value) entry in h, unordered but
// deterministic given the forest shape (§4.3.8).
func (h PHeap[K, V, P]) Items() []Pair[K, V] {
	out := make([]Pair[K, V], 0, h.Len())
	for p := range bheap.All(h.h) {
		out = append(out, p)
	}
	return out
}

// ItemsSorted returns every entry in winning order, via repeated pop
// (§4.3.9).
func (h PHeap[K, V, P]) ItemsSorted() []Pair[K, V] {
	return bheap.Sorted(h.h)
}

// Keys returns every key in h, in the same order as ItemsSorted.
func (h PHeap[K, V, P]) Keys() []K {
	items := h.ItemsSorted()
	out := make([]K, len(items))
	for i, p := range items {
		out[i] = p.Key
	}
	return out
}

// Values returns every value in h, in the same order as ItemsSorted.
func (h PHeap[K, V, P]) Values() []V {
	items := h.ItemsSorted()
	out := make([]V, len(items))
	for i, p := range items {
		out[i] = p.Value
	}
	return out
}

// Equal reports whether a and b hold the same multiset of
// (key, value) entries, per valueEqual (§4.3.10).
func Equal[K cmp.Ordered, V any, P bheap.Polarity[K]](a, b PHeap[K, V, P], valueEqual func(V, V) bool) bool {
	return bheap.Equal(a.h, b.h, valueEqual)
}

// Compare orders a against b by their sorted-by-key entry sequences;
// within a key, the value sequence is sorted by valueLess if non-nil
// (§4.3.10).
func Compare[K cmp.Ordered, V any, P bheap.Polarity[K]](a, b PHeap[K, V, P], valueLess func(V, V) bool) int {
	return bheap.Compare(a.h, b.h, valueLess)
}

// Hash combines the polarity tag with the sorted tuple of values per
// distinct key, so that equal heaps hash equal (§4.3.11).
func Hash[K cmp.Ordered, V any, P bheap.Polarity[K]](h PHeap[K, V, P], valueLess func(V, V) bool) uint64 {
	return bheap.Hash(h.h, valueLess)
}
