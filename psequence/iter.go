package psequence

import "github.com/gaissmai/pcollections/internal/ftree"

// All returns a range-over-func iterator yielding s's elements in order.
func (s PSequence[T]) All() func(yield func(T) bool) {
	return ftree.All(s.t)
}

// Backward returns a range-over-func iterator yielding s's elements in
// reverse order.
func (s PSequence[T]) Backward() func(yield func(T) bool) {
	return ftree.Backward(s.t)
}
