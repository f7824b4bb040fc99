package psequence

import (
	"sort"

	"github.com/gaissmai/pcollections/internal/ftree"
)

// SplitAt splits s into a prefix of length i and a suffix starting with
// the element formerly at i. Out-of-range i clamps: i <= 0 yields
// (empty, s); i >= len(s) yields (s, empty) (§4.1.1 "Split-at").
func (s PSequence[T]) SplitAt(i int) (PSequence[T], PSequence[T]) {
	l, r := ftree.SplitAt(s.t, i)
	return PSequence[T]{t: l}, PSequence[T]{t: r}
}

// ChunksOf splits s into consecutive chunks of at most k elements each,
// the last chunk possibly shorter. Fails with errkind.InvalidArgument if
// k <= 0.
func (s PSequence[T]) ChunksOf(k int) ([]PSequence[T], error) {
	if k <= 0 {
		return nil, invalidArgument("chunk size must be positive")
	}
	n := s.Len()
	chunks := make([]PSequence[T], 0, (n+k-1)/k)
	rest := s.t
	for !ftree.IsEmpty[T](rest) {
		var head ftree.Tree[T]
		head, rest = ftree.SplitAt(rest, k)
		chunks = append(chunks, PSequence[T]{t: head})
	}
	return chunks, nil
}

// Reverse returns s with its elements in reverse order.
func (s PSequence[T]) Reverse() PSequence[T] {
	return PSequence[T]{t: ftree.Reverse(s.t)}
}

// Sort returns s with its elements ordered by less. If reverse is true,
// the order is inverted. Sort is stable: elements that compare equal
// keep their original relative order (§9 "Open questions"), matching the
// source library's `sorted()`-backed sort.
func (s PSequence[T]) Sort(less func(a, b T) bool, reverse bool) PSequence[T] {
	xs := s.ToSlice()
	if reverse {
		sort.SliceStable(xs, func(i, j int) bool { return less(xs[j], xs[i]) })
	} else {
		sort.SliceStable(xs, func(i, j int) bool { return less(xs[i], xs[j]) })
	}
	return From(xs)
}

// Concat returns s followed by other.
func (s PSequence[T]) Concat(other PSequence[T]) PSequence[T] {
	return PSequence[T]{t: ftree.Concat(s.t, other.t)}
}

// Repeat returns s concatenated with itself k times. Negative or zero k
// yields the empty sequence.
func (s PSequence[T]) Repeat(k int) PSequence[T] {
	return PSequence[T]{t: ftree.Repeat(s.t, k)}
}
