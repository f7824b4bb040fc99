package psequence

import "github.com/gaissmai/pcollections/internal/ftree"

// PushLeft returns a sequence with v prepended.
func (s PSequence[T]) PushLeft(v T) PSequence[T] {
	return PSequence[T]{t: ftree.PushLeft(s.t, v)}
}

// PushRight returns a sequence with v appended.
func (s PSequence[T]) PushRight(v T) PSequence[T] {
	return PSequence[T]{t: ftree.PushRight(s.t, v)}
}

// ViewLeft returns the leftmost element and the sequence without it.
// Fails with errkind.EmptyContainer on an empty sequence.
func (s PSequence[T]) ViewLeft() (T, PSequence[T], error) {
	v, rest, err := ftree.ViewLeft(s.t)
	if err != nil {
		return v, s, err
	}
	return v, PSequence[T]{t: rest}, nil
}

// ViewRight returns the sequence without its rightmost element and that
// element.
func (s PSequence[T]) ViewRight() (PSequence[T], T, error) {
	rest, v, err := ftree.ViewRight(s.t)
	if err != nil {
		return s, v, err
	}
	return PSequence[T]{t: rest}, v, nil
}

// PeekLeft returns the leftmost element without removing it.
func (s PSequence[T]) PeekLeft() (T, error) { return ftree.PeekLeft(s.t) }

// PeekRight returns the rightmost element without removing it.
func (s PSequence[T]) PeekRight() (T, error) { return ftree.PeekRight(s.t) }

// Insert returns a sequence with v inserted at position i, which may be
// negative to count from the right. Out-of-range i (after normalizing a
// negative i) clamps to a push at the corresponding end (§4.1.1
// "Insert").
func (s PSequence[T]) Insert(i int, v T) PSequence[T] {
	n := s.Len()
	if i < 0 {
		i += n
	}
	return PSequence[T]{t: ftree.InsertAt(s.t, i, v)}
}

// Delete returns a sequence with the element at i removed, which may be
// negative to count from the right.
func (s PSequence[T]) Delete(i int) (PSequence[T], error) {
	ni, err := normalizeIndex(s.Len(), i)
	if err != nil {
		return s, err
	}
	t, err := ftree.DeleteAt(s.t, ni)
	if err != nil {
		return s, err
	}
	return PSequence[T]{t: t}, nil
}

// MultiView splits s at every index in the strictly ascending list
// indices, returning the len(indices)+1 segments between and around them
// along with the len(indices) values found at those positions: left,
// v1, mid1, v2, mid2, …, right (§6 "multi-view"). Indices may be
// negative. Fails with errkind.InvalidArgument if indices is not
// strictly ascending once normalized, or errkind.OutOfRange if any index
// is out of bounds.
func (s PSequence[T]) MultiView(indices []int) ([]PSequence[T], []T, error) {
	n := s.Len()
	norm := make([]int, len(indices))
	for i, idx := range indices {
		ni, err := normalizeIndex(n, idx)
		if err != nil {
			return nil, nil, err
		}
		norm[i] = ni
	}
	for i := 1; i < len(norm); i++ {
		if norm[i] <= norm[i-1] {
			return nil, nil, invalidArgument("multi-view indices must be strictly ascending")
		}
	}

	segments := make([]PSequence[T], 0, len(norm)+1)
	values := make([]T, len(norm))
	cur := s.t
	prev := 0
	for i, idx := range norm {
		l, r := ftree.SplitAt(cur, idx-prev)
		v, rest, _ := ftree.ViewLeft(r)
		segments = append(segments, PSequence[T]{t: l})
		values[i] = v
		cur = rest
		prev = idx + 1
	}
	segments = append(segments, PSequence[T]{t: cur})
	return segments, values, nil
}
