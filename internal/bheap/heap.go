package bheap

import (
	"cmp"
	"sort"

	"github.com/gaissmai/pcollections/errkind"
)

// Pair is one (key, value) entry of a heap.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Heap is an immutable binomial heap: a size, a cached winning
// (key, value) pulled out of the forest, and the rest of the forest
// (§3.2). P fixes the polarity, so Heap[K, V, Up[K]] and
// Heap[K, V, Down[K]] are distinct types; there is no merge between them
// without an explicit rebuild.
type Heap[K cmp.Ordered, V any, P Polarity[K]] struct {
	sz     int
	hasTop bool
	topKey K
	topVal V
	forest *entry[K, V]
}

// Empty returns the empty heap.
func Empty[K cmp.Ordered, V any, P Polarity[K]]() Heap[K, V, P] {
	return Heap[K, V, P]{}
}

// IsEmpty reports whether h holds no entries.
func IsEmpty[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P]) bool {
	return !h.hasTop
}

// Len returns the number of entries in h.
func Len[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P]) int {
	return h.sz
}

// Peek returns the winning (key, value) without removing it. Fails with
// errkind.EmptyContainer on an empty heap (§4.3.12).
func Peek[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P]) (K, V, error) {
	if !h.hasTop {
		var k K
		var v V
		return k, v, errkind.New(errkind.EmptyContainer, "peek on an empty heap")
	}
	return h.topKey, h.topVal, nil
}

// Insert returns a heap with (key, value) added, in O(1) amortized
// (§4.3.6): equivalent to merging in a size-1 heap, done directly by
// pushing a rank-0 tree into the forest and swapping the cached top
// first if the new key wins against it.
func Insert[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P], key K, value V) Heap[K, V, P] {
	var pol P
	if !h.hasTop {
		return Heap[K, V, P]{sz: 1, hasTop: true, topKey: key, topVal: value}
	}
	if pol.wins(key, h.topKey) {
		forest := forestPush(pol, h.forest, newLeaf(h.topKey, h.topVal))
		return Heap[K, V, P]{sz: h.sz + 1, hasTop: true, topKey: key, topVal: value, forest: forest}
	}
	forest := forestPush(pol, h.forest, newLeaf(key, value))
	return Heap[K, V, P]{sz: h.sz + 1, hasTop: true, topKey: h.topKey, topVal: h.topVal, forest: forest}
}

// Pop returns the heap without its winning entry, plus that entry's key
// and value, in O(log n) (§4.3.4). Fails with errkind.EmptyContainer on
// an empty heap.
func Pop[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P]) (Heap[K, V, P], K, V, error) {
	if !h.hasTop {
		var k K
		var v V
		return h, k, v, errkind.New(errkind.EmptyContainer, "pop on an empty heap")
	}
	key, val := h.topKey, h.topVal
	if h.forest == nil {
		return Heap[K, V, P]{}, key, val, nil
	}
	var pol P
	winner, rest := popWinner(pol, h.forest)
	return Heap[K, V, P]{sz: h.sz - 1, hasTop: true, topKey: winner.key, topVal: winner.value, forest: rest}, key, val, nil
}

// Merge combines a and b in O(log(n+m)) (§4.3.5): the winning cached top
// becomes the new cached top, the losing cached top is demoted into the
// forest as a rank-0 tree, and the two forests are merged.
func Merge[K cmp.Ordered, V any, P Polarity[K]](a, b Heap[K, V, P]) Heap[K, V, P] {
	if !a.hasTop {
		return b
	}
	if !b.hasTop {
		return a
	}
	var pol P
	winner, loser := a, b
	if !pol.wins(a.topKey, b.topKey) {
		winner, loser = b, a
	}
	forest := forestPush(pol, forestMerge(pol, winner.forest, loser.forest), newLeaf(loser.topKey, loser.topVal))
	return Heap[K, V, P]{sz: a.sz + b.sz, hasTop: true, topKey: winner.topKey, topVal: winner.topVal, forest: forest}
}

// FromSlice builds a heap from pairs in O(n) (§4.3.7): every pair is
// pushed as a rank-0 forest entry directly (no per-item top tracking),
// and the single winner is extracted once at the end.
func FromSlice[K cmp.Ordered, V any, P Polarity[K]](pairs []Pair[K, V]) Heap[K, V, P] {
	var pol P
	var forest *entry[K, V]
	for _, p := range pairs {
		forest = forestPush(pol, forest, newLeaf(p.Key, p.Value))
	}
	if forest == nil {
		return Heap[K, V, P]{}
	}
	winner, rest := popWinner(pol, forest)
	return Heap[K, V, P]{sz: len(pairs), hasTop: true, topKey: winner.key, topVal: winner.value, forest: rest}
}

// All returns a range-over-func iterator over every (key, value) entry
// in h, in forest DFS order — deterministic given the forest's shape but
// otherwise unordered (§4.3.8).
func All[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P]) func(yield func(Pair[K, V]) bool) {
	return func(yield func(Pair[K, V]) bool) {
		if h.hasTop {
			if !yield(Pair[K, V]{Key: h.topKey, Value: h.topVal}) {
				return
			}
		}
		walkForest(h.forest, yield)
	}
}

func walkForest[K cmp.Ordered, V any](e *entry[K, V], yield func(Pair[K, V]) bool) bool {
	for ; e != nil; e = e.next {
		if !walkTree(e.tree, yield) {
			return false
		}
	}
	return true
}

func walkTree[K cmp.Ordered, V any](t *Tree[K, V], yield func(Pair[K, V]) bool) bool {
	if !yield(Pair[K, V]{Key: t.key, Value: t.value}) {
		return false
	}
	for c := t.child; c != nil; c = c.sibling {
		if !walkTree(c, yield) {
			return false
		}
	}
	return true
}

// Sorted drains a copy of h via repeated Pop, yielding entries in
// winning order, in O(n log n) (§4.3.9).
func Sorted[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P]) []Pair[K, V] {
	out := make([]Pair[K, V], 0, h.sz)
	cur := h
	for cur.hasTop {
		var k K
		var v V
		var err error
		cur, k, v, err = Pop(cur)
		if err != nil {
			break
		}
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out
}

type keyGroup[K cmp.Ordered, V any] struct {
	key    K
	values []V
}

func groupByKey[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P]) []keyGroup[K, V] {
	m := map[K][]V{}
	for p := range All(h) {
		m[p.Key] = append(m[p.Key], p.Value)
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	groups := make([]keyGroup[K, V], len(keys))
	for i, k := range keys {
		groups[i] = keyGroup[K, V]{key: k, values: m[k]}
	}
	return groups
}

// Equal reports whether a and b hold the same multiset of (key, value)
// entries, per valueEqual (§4.3.10).
func Equal[K cmp.Ordered, V any, P Polarity[K]](a, b Heap[K, V, P], valueEqual func(V, V) bool) bool {
	if a.sz != b.sz {
		return false
	}
	ga, gb := groupByKey(a), groupByKey(b)
	if len(ga) != len(gb) {
		return false
	}
	for i := range ga {
		if ga[i].key != gb[i].key {
			return false
		}
		if !multisetEqual(ga[i].values, gb[i].values, valueEqual) {
			return false
		}
	}
	return true
}

func multisetEqual[V any](xs, ys []V, eq func(V, V) bool) bool {
	if len(xs) != len(ys) {
		return false
	}
	used := make([]bool, len(ys))
	for _, x := range xs {
		found := false
		for j, y := range ys {
			if !used[j] && eq(x, y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Compare orders a against b by comparing their sorted-by-key entry
// sequences. Within a key, the value sequence is sorted by valueLess if
// non-nil; otherwise only the group sizes are compared, so two groups of
// the same size compare equal whatever values they hold (§4.3.10).
func Compare[K cmp.Ordered, V any, P Polarity[K]](a, b Heap[K, V, P], valueLess func(V, V) bool) int {
	ga, gb := groupByKey(a), groupByKey(b)
	n := len(ga)
	if len(gb) < n {
		n = len(gb)
	}
	for i := 0; i < n; i++ {
		switch {
		case ga[i].key < gb[i].key:
			return -1
		case ga[i].key > gb[i].key:
			return 1
		}
		if valueLess == nil {
			if len(ga[i].values) != len(gb[i].values) {
				return sign(len(ga[i].values) - len(gb[i].values))
			}
			continue
		}
		if c := compareSorted(ga[i].values, gb[i].values, valueLess); c != 0 {
			return c
		}
	}
	return sign(len(ga) - len(gb))
}

func compareSorted[V any](xs, ys []V, less func(V, V) bool) int {
	sa := append([]V(nil), xs...)
	sb := append([]V(nil), ys...)
	sort.Slice(sa, func(i, j int) bool { return less(sa[i], sa[j]) })
	sort.Slice(sb, func(i, j int) bool { return less(sb[i], sb[j]) })

	n := len(sa)
	if len(sb) < n {
		n = len(sb)
	}
	for i := 0; i < n; i++ {
		if less(sa[i], sb[i]) {
			return -1
		}
		if less(sb[i], sa[i]) {
			return 1
		}
	}
	return sign(len(sa) - len(sb))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
