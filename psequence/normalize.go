package psequence

import "github.com/gaissmai/pcollections/errkind"

// normalizeIndex turns a possibly-negative scalar index (counting from
// the right, per §4.2) into a normalized index in [0, n), failing with
// errkind.OutOfRange if no such index exists.
func normalizeIndex(n, i int) (int, error) {
	orig := i
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, errkind.New(errkind.OutOfRange, "index %d out of range [-%d,%d)", orig, n, n)
	}
	return i, nil
}

// normalizeSlice turns a start/stop/step triple (any of which may be
// omitted, the Go spelling of Python's slice(None, None, None)) into the
// conventional three-argument form, following the same clamping rules as
// the source library's slice.indices(n) (§4.2 "slice... normalized to
// the conventional three-argument form"). Unlike normalizeIndex, slice
// bounds never fail: they clamp.
func normalizeSlice(n int, start, stop, step *int) (ns, ne, nstep int, err error) {
	nstep = 1
	if step != nil {
		nstep = *step
	}
	if nstep == 0 {
		return 0, 0, 0, errkind.New(errkind.InvalidArgument, "slice step cannot be zero")
	}

	var lower, upper int
	if nstep < 0 {
		lower, upper = -1, n-1
	} else {
		lower, upper = 0, n
	}

	if start == nil {
		if nstep < 0 {
			ns = upper
		} else {
			ns = lower
		}
	} else {
		ns = clampSliceBound(*start, n, lower, upper)
	}

	if stop == nil {
		if nstep < 0 {
			ne = lower
		} else {
			ne = upper
		}
	} else {
		ne = clampSliceBound(*stop, n, lower, upper)
	}

	return ns, ne, nstep, nil
}

func clampSliceBound(i, n, lower, upper int) int {
	if i < 0 {
		i += n
		if i < lower {
			return lower
		}
		return i
	}
	if i > upper {
		return upper
	}
	return i
}

// stridedCount returns the number of positions visited by a walk from ns
// to ne (exclusive) in steps of nstep.
func stridedCount(ns, ne, nstep int) int {
	if nstep > 0 {
		if ne <= ns {
			return 0
		}
		return (ne-ns+nstep-1)/nstep
	}
	if ne >= ns {
		return 0
	}
	return (ns-ne-nstep-1) / (-nstep)
}
