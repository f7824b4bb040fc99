package ftree

import "fmt"

// CheckInvariants verifies that t satisfies the five finger-tree
// invariants of §3.1: uniform leaf depth, cached sizes matching the sum
// of children, legal branch/digit arities, middle subtrees holding only
// InnerNodes, and (structurally, by construction) immutability. It is
// exported for use by property tests, mirroring spec.md §8's "a verifier
// available to tests".
func CheckInvariants[T any](t Tree[T]) error {
	_, err := treeDepth[T](t)
	return err
}

// treeDepth returns the depth of t's leaves (0 for a tree of bare
// elements, or a sentinel -1 for an empty tree, which has no leaves to
// measure) while checking every invariant along the way.
func treeDepth[T any](t Tree[T]) (int, error) {
	switch tt := t.(type) {
	case emptyTree[T]:
		return -1, nil
	case singleTree[T]:
		return nodeDepth(tt.a)
	case deepTree[T]:
		if tt.sz != tt.left.size()+tt.mid.Size()+tt.right.size() {
			return 0, fmt.Errorf("ftree: deep tree size %d != left(%d)+mid(%d)+right(%d)",
				tt.sz, tt.left.size(), tt.mid.Size(), tt.right.size())
		}

		leftDepth, err := checkDigit(tt.left)
		if err != nil {
			return 0, err
		}
		rightDepth, err := checkDigit(tt.right)
		if err != nil {
			return 0, err
		}
		if leftDepth != rightDepth {
			return 0, fmt.Errorf("ftree: left/right digit depth mismatch: %d vs %d", leftDepth, rightDepth)
		}

		if err := checkMidNoBareElements(tt.mid); err != nil {
			return 0, err
		}

		midDepth, err := treeDepth[T](tt.mid)
		if err != nil {
			return 0, err
		}
		if midDepth != -1 && midDepth != leftDepth+1 {
			return 0, fmt.Errorf("ftree: middle leaf depth %d does not match spine depth+1 %d", midDepth, leftDepth+1)
		}

		return leftDepth, nil
	default:
		return 0, fmt.Errorf("ftree: unreachable tree variant")
	}
}

func checkDigit[T any](d digit[T]) (int, error) {
	if d.n < 1 || d.n > 4 {
		return 0, fmt.Errorf("ftree: digit arity %d out of range [1,4]", d.n)
	}

	depth := -1
	sum := 0
	for i := 0; i < d.n; i++ {
		dd, err := nodeDepth(d.c[i])
		if err != nil {
			return 0, err
		}
		if depth == -1 {
			depth = dd
		} else if depth != dd {
			return 0, fmt.Errorf("ftree: digit children at mismatched depths %d and %d", depth, dd)
		}
		sum += d.c[i].size()
	}
	if sum != d.sz {
		return 0, fmt.Errorf("ftree: digit size %d != sum of children %d", d.sz, sum)
	}
	return depth, nil
}

func checkMidNoBareElements[T any](mid Tree[T]) error {
	switch mt := mid.(type) {
	case singleTree[T]:
		if _, ok := mt.a.(element[T]); ok {
			return fmt.Errorf("ftree: middle tree holds a bare element, must hold only InnerNodes")
		}
	case deepTree[T]:
		for i := 0; i < mt.left.n; i++ {
			if _, ok := mt.left.c[i].(element[T]); ok {
				return fmt.Errorf("ftree: middle tree's left digit holds a bare element")
			}
		}
		for i := 0; i < mt.right.n; i++ {
			if _, ok := mt.right.c[i].(element[T]); ok {
				return fmt.Errorf("ftree: middle tree's right digit holds a bare element")
			}
		}
	}
	return nil
}

func nodeDepth[T any](n node[T]) (int, error) {
	switch b := n.(type) {
	case element[T]:
		return 0, nil
	case branch2[T]:
		d0, err := nodeDepth(b.c0)
		if err != nil {
			return 0, err
		}
		d1, err := nodeDepth(b.c1)
		if err != nil {
			return 0, err
		}
		if d0 != d1 {
			return 0, fmt.Errorf("ftree: branch2 children at mismatched depths %d and %d", d0, d1)
		}
		if b.sz != b.c0.size()+b.c1.size() {
			return 0, fmt.Errorf("ftree: branch2 size %d != sum of children", b.sz)
		}
		return d0 + 1, nil
	case branch3[T]:
		d0, err := nodeDepth(b.c0)
		if err != nil {
			return 0, err
		}
		d1, err := nodeDepth(b.c1)
		if err != nil {
			return 0, err
		}
		d2, err := nodeDepth(b.c2)
		if err != nil {
			return 0, err
		}
		if d0 != d1 || d1 != d2 {
			return 0, fmt.Errorf("ftree: branch3 children at mismatched depths %d, %d, %d", d0, d1, d2)
		}
		if b.sz != b.c0.size()+b.c1.size()+b.c2.size() {
			return 0, fmt.Errorf("ftree: branch3 size %d != sum of children", b.sz)
		}
		return d0 + 1, nil
	default:
		return 0, fmt.Errorf("ftree: unreachable node variant")
	}
}
