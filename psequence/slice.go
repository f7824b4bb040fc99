package psequence

import (
	"github.com/gaissmai/pcollections/errkind"
	"github.com/gaissmai/pcollections/internal/ftree"
)

// GetSlice returns the elements selected by start:stop:step, each of
// which may be nil to mean "omitted" (the Go spelling of Python's
// slice(None, None, None)), normalized per §4.2. A step-1 slice costs
// O(log n); any other step, including -1, is built element by element
// and costs O(n/|step| · log n).
func (s PSequence[T]) GetSlice(start, stop, step *int) PSequence[T] {
	ns, ne, nstep, err := normalizeSlice(s.Len(), start, stop, step)
	if err != nil {
		return Empty[T]()
	}
	if nstep == 1 {
		return PSequence[T]{t: ftree.SliceContig(s.t, ns, ne)}
	}
	return PSequence[T]{t: ftree.SliceStrided(s.t, ns, ne, nstep)}
}

// SetSlice replaces the elements selected by start:stop:step with
// replacement. For a contiguous (step == 1 or nil) slice, replacement may
// have any length — the slice widens or narrows the sequence, exactly
// like Python's list slice assignment — materialized via take-left +
// replacement-as-new-tree + take-right concatenation (§4.1.1 "Set at
// index"). For a strided slice, replacement's length must equal the
// slice's element count; a mismatch fails with errkind.LengthMismatch.
func (s PSequence[T]) SetSlice(start, stop, step *int, replacement []T) (PSequence[T], error) {
	ns, ne, nstep, err := normalizeSlice(s.Len(), start, stop, step)
	if err != nil {
		return s, err
	}

	if nstep == 1 {
		if ne < ns {
			ne = ns
		}
		prefix := ftree.Take(s.t, ns)
		suffix := ftree.Drop(s.t, ne)
		mid := ftree.FromSlice(replacement)
		return PSequence[T]{t: ftree.Concat(ftree.Concat(prefix, mid), suffix)}, nil
	}

	count := stridedCount(ns, ne, nstep)
	if len(replacement) != count {
		return s, lengthMismatch(count, len(replacement))
	}

	pairs := make([]ftree.IndexValue[T], count)
	i := ns
	for k := 0; k < count; k++ {
		pairs[k] = ftree.IndexValue[T]{Index: i, Value: replacement[k]}
		i += nstep
	}
	t, err := ftree.MultiSet(s.t, pairs)
	if err != nil {
		return s, err
	}
	return PSequence[T]{t: t}, nil
}

// DeleteSlice removes the elements selected by start:stop:step. For a
// contiguous slice this composes take and drop (§4.1.1 "Delete");
// non-contiguous deletion rebuilds the surviving elements from a single
// pass over the sequence.
func (s PSequence[T]) DeleteSlice(start, stop, step *int) PSequence[T] {
	ns, ne, nstep, err := normalizeSlice(s.Len(), start, stop, step)
	if err != nil {
		return s
	}

	if nstep == 1 {
		return PSequence[T]{t: ftree.DeleteSlice(s.t, ns, ne)}
	}

	removed := make(map[int]bool, stridedCount(ns, ne, nstep))
	for i := ns; (nstep > 0 && i < ne) || (nstep < 0 && i > ne); i += nstep {
		removed[i] = true
	}

	kept := make([]T, 0, s.Len()-len(removed))
	for i, v := range s.ToSlice() {
		if !removed[i] {
			kept = append(kept, v)
		}
	}
	return From(kept)
}

func lengthMismatch(want, got int) error {
	return errkind.New(errkind.LengthMismatch, "replacement has length %d, want %d", got, want)
}
