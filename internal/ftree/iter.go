package ftree

// All returns a range-over-func iterator that yields t's elements in
// order (§4.1.1 "Iteration").
func All[T any](t Tree[T]) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		walk(t, false, yield)
	}
}

// Backward returns a range-over-func iterator that yields t's elements in
// reverse order.
func Backward[T any](t Tree[T]) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		walk(t, true, yield)
	}
}

// ToSlice flattens t into a slice, in order, O(n).
func ToSlice[T any](t Tree[T]) []T {
	out := make([]T, 0, t.Size())
	for v := range All(t) {
		out = append(out, v)
	}
	return out
}

func walk[T any](t Tree[T], rev bool, yield func(T) bool) bool {
	switch tt := t.(type) {
	case emptyTree[T]:
		return true
	case singleTree[T]:
		return walkNode(tt.a, rev, yield)
	case deepTree[T]:
		if !rev {
			if !walkDigit(tt.left, rev, yield) {
				return false
			}
			if !walk[T](tt.mid, rev, yield) {
				return false
			}
			return walkDigit(tt.right, rev, yield)
		}
		if !walkDigit(tt.right, rev, yield) {
			return false
		}
		if !walk[T](tt.mid, rev, yield) {
			return false
		}
		return walkDigit(tt.left, rev, yield)
	default:
		panic("ftree: unreachable tree variant")
	}
}

func walkDigit[T any](d digit[T], rev bool, yield func(T) bool) bool {
	if !rev {
		for i := 0; i < d.n; i++ {
			if !walkNode(d.c[i], rev, yield) {
				return false
			}
		}
		return true
	}
	for i := d.n - 1; i >= 0; i-- {
		if !walkNode(d.c[i], rev, yield) {
			return false
		}
	}
	return true
}

func walkNode[T any](n node[T], rev bool, yield func(T) bool) bool {
	switch b := n.(type) {
	case element[T]:
		return yield(b.value)
	case branch2[T]:
		if !rev {
			if !walkNode(b.c0, rev, yield) {
				return false
			}
			return walkNode(b.c1, rev, yield)
		}
		if !walkNode(b.c1, rev, yield) {
			return false
		}
		return walkNode(b.c0, rev, yield)
	case branch3[T]:
		if !rev {
			if !walkNode(b.c0, rev, yield) {
				return false
			}
			if !walkNode(b.c1, rev, yield) {
				return false
			}
			return walkNode(b.c2, rev, yield)
		}
		if !walkNode(b.c2, rev, yield) {
			return false
		}
		if !walkNode(b.c1, rev, yield) {
			return false
		}
		return walkNode(b.c0, rev, yield)
	default:
		panic("ftree: unreachable node variant")
	}
}
