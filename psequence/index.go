package psequence

import "github.com/gaissmai/pcollections/internal/ftree"

// Get returns the element at index i, which may be negative to count
// from the right (§4.2). Fails with errkind.OutOfRange if no such
// element exists.
func (s PSequence[T]) Get(i int) (T, error) {
	ni, err := normalizeIndex(s.Len(), i)
	if err != nil {
		var zero T
		return zero, err
	}
	return ftree.Index(s.t, ni)
}

// Set returns a sequence with the element at i replaced by v.
func (s PSequence[T]) Set(i int, v T) (PSequence[T], error) {
	ni, err := normalizeIndex(s.Len(), i)
	if err != nil {
		return s, err
	}
	t, err := ftree.SetAt(s.t, ni, v)
	if err != nil {
		return s, err
	}
	return PSequence[T]{t: t}, nil
}

// IndexValue pairs a (possibly negative) index with a replacement value
// for MultiSet.
type IndexValue[T any] struct {
	Index int
	Value T
}

// MultiSet applies every (index, value) pair, one ftree.SetAt per
// distinct index. Duplicate indices keep the last value supplied for that
// index (§4.1.1 "Multi-set", testable property 10).
func (s PSequence[T]) MultiSet(pairs []IndexValue[T]) (PSequence[T], error) {
	n := s.Len()
	converted := make([]ftree.IndexValue[T], len(pairs))
	for i, p := range pairs {
		ni, err := normalizeIndex(n, p.Index)
		if err != nil {
			return s, err
		}
		converted[i] = ftree.IndexValue[T]{Index: ni, Value: p.Value}
	}
	t, err := ftree.MultiSet(s.t, converted)
	if err != nil {
		return s, err
	}
	return PSequence[T]{t: t}, nil
}
