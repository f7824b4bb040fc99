package ftree

// SliceContig returns the contiguous range [start, stop) in O(log n),
// implemented as take(stop) composed with drop(start) on the result
// (§4.1.1 "Contiguous slice").
func SliceContig[T any](t Tree[T], start, stop int) Tree[T] {
	return Drop(Take(t, stop), start)
}

// SliceStrided returns the elements at start, start+step, start+2*step,
// ... up to but excluding stop, for step != 0. start/stop/step must
// already be normalized by the caller (§4.1.1 "Strided slice"): each
// selected position is fetched by its own O(log n) Index call and the
// results are rebuilt with FromSlice.
func SliceStrided[T any](t Tree[T], start, stop, step int) Tree[T] {
	var out []T
	if step > 0 {
		for i := start; i < stop; i += step {
			v, _ := Index(t, i)
			out = append(out, v)
		}
	} else {
		for i := start; i > stop; i += step {
			v, _ := Index(t, i)
			out = append(out, v)
		}
	}
	return FromSlice(out)
}
