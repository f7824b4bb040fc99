// Package pcollections provides persistent (immutable) collection types:
// PSequence, a 2-3 finger tree giving O(log n) access, split, and
// concatenation anywhere in a sequence, and PHeap, a binomial heap giving
// O(log n) push/pop/merge for a mergeable priority queue.
//
// Both types never mutate in place. Every operation that "changes" a value
// returns a new value, sharing whatever structure is unaffected by the
// change with the original — the same immutable-with-structural-sharing
// approach this module's augmented-Treap ancestor uses for its interval
// sets, generalized here to ordered sequences and priority queues.
//
//	seq := psequence.From([]int{1, 2, 3})
//	seq2 := seq.PushRight(4) // seq is untouched, seq2 shares seq's spine
//
//	h := pheap.Empty[int, string, pheap.Up[int]]()
//	h = h.Push(1, "one")
//
// The internal/ftree and internal/bheap packages hold the respective
// algorithms; psequence and pheap are thin, type-safe facades over them.
// Errors across the module use a single taxonomy in package errkind.
package pcollections
