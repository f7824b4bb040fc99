package bheap

import "cmp"

// Tree is a binomial tree root: a key, an associated value, an optional
// first child, and an optional next sibling. Children form a singly
// linked chain in decreasing rank order (§3.2). A Tree is never mutated
// after construction; mergeTrees always allocates new nodes along the
// path it changes, mirroring the copy-on-write style the package's
// teacher uses for its treap nodes.
type Tree[K cmp.Ordered, V any] struct {
	rank    int
	key     K
	value   V
	child   *Tree[K, V]
	sibling *Tree[K, V]
}

func newLeaf[K cmp.Ordered, V any](key K, value V) *Tree[K, V] {
	return &Tree[K, V]{key: key, value: value}
}

// mergeTrees combines two rank-r trees into one rank-(r+1) tree in O(1):
// the tree whose key wins becomes the parent, the other becomes its new
// first child, ahead of the winner's old children (§4.3.1).
func mergeTrees[K cmp.Ordered, V any](pol Polarity[K], a, b *Tree[K, V]) *Tree[K, V] {
	winner, loser := a, b
	if !pol.wins(a.key, b.key) {
		winner, loser = b, a
	}
	newLoser := &Tree[K, V]{
		rank:    loser.rank,
		key:     loser.key,
		value:   loser.value,
		child:   loser.child,
		sibling: winner.child,
	}
	return &Tree[K, V]{
		rank:  winner.rank + 1,
		key:   winner.key,
		value: winner.value,
		child: newLoser,
	}
}

// children returns t's children in decreasing-rank order.
func children[K cmp.Ordered, V any](t *Tree[K, V]) []*Tree[K, V] {
	var out []*Tree[K, V]
	for c := t.child; c != nil; c = c.sibling {
		out = append(out, c)
	}
	return out
}
