package bheap

import "cmp"

// entry is one link of a rank-sorted forest: a (rank, root tree, next)
// tuple, strictly increasing in rank from head to tail (§3.2).
type entry[K cmp.Ordered, V any] struct {
	rank int
	tree *Tree[K, V]
	next *entry[K, V]
}

// forestPush inserts t into head, maintaining strictly increasing ranks,
// merging on rank collisions the way binary addition carries (§4.3.2).
func forestPush[K cmp.Ordered, V any](pol Polarity[K], head *entry[K, V], t *Tree[K, V]) *entry[K, V] {
	switch {
	case head == nil:
		return &entry[K, V]{rank: t.rank, tree: t}
	case t.rank < head.rank:
		return &entry[K, V]{rank: t.rank, tree: t, next: head}
	case t.rank > head.rank:
		return &entry[K, V]{rank: head.rank, tree: head.tree, next: forestPush(pol, head.next, t)}
	default:
		return forestPush(pol, head.next, mergeTrees(pol, head.tree, t))
	}
}

// forestMerge walks a and b in parallel like binary addition with carry:
// the unique lower-rank entry is emitted as-is; a rank collision merges
// the two trees and carries the result into the rest of the merge
// (§4.3.3).
func forestMerge[K cmp.Ordered, V any](pol Polarity[K], a, b *entry[K, V]) *entry[K, V] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.rank < b.rank:
		return &entry[K, V]{rank: a.rank, tree: a.tree, next: forestMerge(pol, a.next, b)}
	case b.rank < a.rank:
		return &entry[K, V]{rank: b.rank, tree: b.tree, next: forestMerge(pol, a, b.next)}
	default:
		merged := mergeTrees(pol, a.tree, b.tree)
		return forestPush(pol, forestMerge(pol, a.next, b.next), merged)
	}
}

// popWinner scans the forest for the entry whose root wins under pol,
// removes it, and merges its children back into what remains (§4.3.4).
func popWinner[K cmp.Ordered, V any](pol Polarity[K], head *entry[K, V]) (*Tree[K, V], *entry[K, V]) {
	if head == nil {
		return nil, nil
	}

	best := head
	for e := head.next; e != nil; e = e.next {
		if pol.wins(e.tree.key, best.tree.key) {
			best = e
		}
	}

	rest := removeEntry(head, best)
	rest = forestMerge(pol, rest, childrenToForest[K, V](best.tree.child))
	return best.tree, rest
}

func removeEntry[K cmp.Ordered, V any](head, target *entry[K, V]) *entry[K, V] {
	if head == target {
		return head.next
	}
	return &entry[K, V]{rank: head.rank, tree: head.tree, next: removeEntry(head.next, target)}
}

// childrenToForest turns a decreasing-rank child chain (rank r-1, r-2,
// ..., 0) into an increasing-rank forest, the shape forestMerge requires.
func childrenToForest[K cmp.Ordered, V any](child *Tree[K, V]) *entry[K, V] {
	var head *entry[K, V]
	for c := child; c != nil; c = c.sibling {
		root := &Tree[K, V]{rank: c.rank, key: c.key, value: c.value, child: c.child}
		head = &entry[K, V]{rank: c.rank, tree: root, next: head}
	}
	return head
}
