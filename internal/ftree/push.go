package ftree

// PushLeft adds v to the left end of t. Amortized O(1), worst case
// O(log n) (§4.1.1).
func PushLeft[T any](t Tree[T], v T) Tree[T] {
	return pushLeftNode(t, newElement(v))
}

// PushRight adds v to the right end of t.
func PushRight[T any](t Tree[T], v T) Tree[T] {
	return pushRightNode(t, newElement(v))
}

func pushLeftNode[T any](t Tree[T], n node[T]) Tree[T] {
	switch tt := t.(type) {
	case emptyTree[T]:
		return singleTree[T]{a: n}
	case singleTree[T]:
		return newDeep[T](digitOf(n), Empty[T](), digitOf(tt.a))
	case deepTree[T]:
		if tt.left.n < 4 {
			return newDeep[T](tt.left.pushLeft(n), tt.mid, tt.right)
		}
		old := tt.left
		promoted := newBranch3[T](old.c[1], old.c[2], old.c[3])
		newLeft := digitOf(n, old.c[0])
		return newDeep[T](newLeft, pushLeftNode[T](tt.mid, promoted), tt.right)
	default:
		panic("ftree: unreachable tree variant")
	}
}

func pushRightNode[T any](t Tree[T], n node[T]) Tree[T] {
	switch tt := t.(type) {
	case emptyTree[T]:
		return singleTree[T]{a: n}
	case singleTree[T]:
		return newDeep[T](digitOf(tt.a), Empty[T](), digitOf(n))
	case deepTree[T]:
		if tt.right.n < 4 {
			return newDeep[T](tt.left, tt.mid, tt.right.pushRight(n))
		}
		old := tt.right
		promoted := newBranch3[T](old.c[0], old.c[1], old.c[2])
		newRight := digitOf(old.c[3], n)
		return newDeep[T](tt.left, pushRightNode[T](tt.mid, promoted), newRight)
	default:
		panic("ftree: unreachable tree variant")
	}
}
