package ftree

import "github.com/gaissmai/pcollections/errkind"

// Index returns the element at position i, 0 <= i < Size(t), in
// O(log min(i, n-i)) (§4.1.1). Out-of-range indices fail with
// errkind.OutOfRange.
func Index[T any](t Tree[T], i int) (v T, err error) {
	if i < 0 || i >= t.Size() {
		return v, errkind.New(errkind.OutOfRange, "index %d out of range [0,%d)", i, t.Size())
	}
	return findAt(t, i).(element[T]).value, nil
}

// findAt locates the leaf at offset i (0 <= i < t.Size()) by probing the
// left digit, then the middle tree, then the right digit, as §4.1.1
// "Index" specifies. The middle tree's own elements are one-level-deeper
// branch nodes; findAt's recursion into mid bottoms out the same way,
// and leafWithin descends the remaining offset inside whatever node it
// lands on (leaf or branch) to reach the final element.
func findAt[T any](t Tree[T], i int) node[T] {
	switch tt := t.(type) {
	case singleTree[T]:
		return leafWithin(tt.a, i)
	case deepTree[T]:
		if i < tt.left.size() {
			child, off := digitLocate(tt.left, i)
			return leafWithin(child, off)
		}
		i -= tt.left.size()
		if i < tt.mid.Size() {
			return findAt[T](tt.mid, i)
		}
		i -= tt.mid.Size()
		child, off := digitLocate(tt.right, i)
		return leafWithin(child, off)
	default:
		panic("ftree: index on empty tree")
	}
}

// digitLocate returns the child of d covering offset i and the residual
// offset inside that child.
func digitLocate[T any](d digit[T], i int) (node[T], int) {
	for k := 0; k < d.n; k++ {
		sz := d.c[k].size()
		if i < sz {
			return d.c[k], i
		}
		i -= sz
	}
	panic("ftree: digit offset out of range")
}

// leafWithin descends node n by offset i until it reaches a leaf.
func leafWithin[T any](n node[T], i int) node[T] {
	switch b := n.(type) {
	case element[T]:
		return b
	case branch2[T]:
		if i < b.c0.size() {
			return leafWithin[T](b.c0, i)
		}
		return leafWithin[T](b.c1, i-b.c0.size())
	case branch3[T]:
		if i < b.c0.size() {
			return leafWithin[T](b.c0, i)
		}
		i -= b.c0.size()
		if i < b.c1.size() {
			return leafWithin[T](b.c1, i)
		}
		return leafWithin[T](b.c2, i-b.c1.size())
	default:
		panic("ftree: unreachable node variant")
	}
}
