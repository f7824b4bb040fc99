// Package iterseq provides small pull-style iterator helpers for
// equality and ordering over range-over-func sequences (spec.md §2
// "Shared utilities"). Package psequence uses EqualBy and CompareBy;
// package pheap does not use this package. It is built
// directly on the standard library's iter.Pull: no dependency anywhere
// in this module's stack offers a pull-conversion primitive, and the
// standard one is exactly what push-style range-over-func iterators need
// converted into (see DESIGN.md).
package iterseq

import "iter"

// EqualBy reports whether a and b yield the same length sequence of
// elements, pairwise equal under eq, short-circuiting on the first
// mismatch or length difference.
func EqualBy[T any](a, b iter.Seq[T], eq func(T, T) bool) bool {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for {
		va, okA := nextA()
		vb, okB := nextB()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !eq(va, vb) {
			return false
		}
	}
}

// CompareBy lexicographically orders a against b using less: the first
// differing element decides, and if one sequence is a prefix of the
// other, the shorter one is less.
func CompareBy[T any](a, b iter.Seq[T], less func(T, T) bool) int {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for {
		va, okA := nextA()
		vb, okB := nextB()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		if less(va, vb) {
			return -1
		}
		if less(vb, va) {
			return 1
		}
	}
}

// Zip pulls from a and b in lockstep, yielding pairs until either is
// exhausted.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		for {
			va, okA := nextA()
			vb, okB := nextB()
			if !okA || !okB {
				return
			}
			if !yield(va, vb) {
				return
			}
		}
	}
}
