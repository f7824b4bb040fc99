// Package psequence implements PSequence, a persistent indexed sequence
// backed by the size-annotated 2-3 finger tree in internal/ftree (§3.1,
// §4.2). Every operation is pure and returns a new value sharing
// structure with its input; nothing here ever mutates a node reachable
// from a value the caller already holds.
package psequence

import (
	"strings"

	"github.com/gaissmai/pcollections/internal/ftree"
)

// PSequence is an immutable, indexable sequence of T.
type PSequence[T any] struct {
	t ftree.Tree[T]
}

// Empty returns the empty sequence.
func Empty[T any]() PSequence[T] {
	return PSequence[T]{t: ftree.Empty[T]()}
}

// From builds a sequence holding exactly the elements of xs, in order.
func From[T any](xs []T) PSequence[T] {
	return PSequence[T]{t: ftree.FromSlice(xs)}
}

// Len returns the number of elements.
func (s PSequence[T]) Len() int { return s.t.Size() }

// IsEmpty reports whether s holds no elements.
func (s PSequence[T]) IsEmpty() bool { return ftree.IsEmpty[T](s.t) }

// ToSlice flattens s into a new slice, in order.
func (s PSequence[T]) ToSlice() []T { return ftree.ToSlice(s.t) }

// String renders a debugging view of the underlying finger tree's shape.
func (s PSequence[T]) String() string {
	var b strings.Builder
	_ = ftree.Fprint(&b, s.t)
	return b.String()
}
