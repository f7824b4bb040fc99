// Package pheap implements PHeap, a persistent mergeable priority queue
// backed by the binomial heap in internal/bheap (§3.2, §4.3). PHeap is
// parameterized by a Polarity: Up for a min-heap, Down for a max-heap.
// The two are distinct Go types, so mixing them is a compile-time error,
// not a runtime one.
package pheap

import (
	"cmp"
	"strings"

	"github.com/gaissmai/pcollections/internal/bheap"
)

// Up is the min-heap polarity: smaller keys win.
type Up[K cmp.Ordered] = bheap.Up[K]

// Down is the max-heap polarity: larger keys win.
type Down[K cmp.Ordered] = bheap.Down[K]

// Pair is one (key, value) entry of a heap.
type Pair[K any, V any] = bheap.Pair[K, V]

// PHeap is an immutable mergeable priority queue of (K, V) entries,
// ordered by P.
type PHeap[K cmp.Ordered, V any, P bheap.Polarity[K]] struct {
	h bheap.Heap[K, V, P]
}

// Empty returns the empty heap.
func Empty[K cmp.Ordered, V any, P bheap.Polarity[K]]() PHeap[K, V, P] {
	return PHeap[K, V, P]{h: bheap.Empty[K, V, P]()}
}

// FromPairs builds a heap from pairs in O(n) (§4.3.7 "Bulk-from-iterable").
func FromPairs[K cmp.Ordered, V any, P bheap.Polarity[K]](pairs []Pair[K, V]) PHeap[K, V, P] {
	return PHeap[K, V, P]{h: bheap.FromSlice[K, V, P](pairs)}
}

// FromKeys builds a heap from keys, each paired with defaultValue,
// mirroring the source library's heap_from_keys(iterable, default_value,
// polarity) factory (§6 "Factories").
func FromKeys[K cmp.Ordered, V any, P bheap.Polarity[K]](keys []K, defaultValue V) PHeap[K, V, P] {
	pairs := make([]Pair[K, V], len(keys))
	for i, k := range keys {
		pairs[i] = Pair[K, V]{Key: k, Value: defaultValue}
	}
	return FromPairs[K, V, P](pairs)
}

// Len returns the number of entries in h.
func (h PHeap[K, V, P]) Len() int { return bheap.Len[K, V, P](h.h) }

// IsEmpty reports whether h holds no entries.
func (h PHeap[K, V, P]) IsEmpty() bool { return bheap.IsEmpty[K, V, P](h.h) }

// String renders a debugging view of the underlying forest.
func (h PHeap[K, V, P]) String() string {
	var b strings.Builder
	_ = bheap.Fprint[K, V, P](&b, h.h)
	return b.String()
}
