package ftree

import "github.com/gaissmai/pcollections/errkind"

// ViewLeft returns the leftmost element and the tree without it. It fails
// with errkind.EmptyContainer on an empty tree (§4.1.3).
func ViewLeft[T any](t Tree[T]) (v T, rest Tree[T], err error) {
	n, rest, ok := viewLeftNode(t)
	if !ok {
		return v, t, errkind.New(errkind.EmptyContainer, "view-left on an empty sequence")
	}
	return n.(element[T]).value, rest, nil
}

// ViewRight returns the tree without its rightmost element and that
// element. It fails with errkind.EmptyContainer on an empty tree.
func ViewRight[T any](t Tree[T]) (rest Tree[T], v T, err error) {
	n, rest, ok := viewRightNode(t)
	if !ok {
		return t, v, errkind.New(errkind.EmptyContainer, "view-right on an empty sequence")
	}
	return rest, n.(element[T]).value, nil
}

// PeekLeft returns the leftmost element without removing it.
func PeekLeft[T any](t Tree[T]) (T, error) {
	v, _, err := ViewLeft(t)
	return v, err
}

// PeekRight returns the rightmost element without removing it.
func PeekRight[T any](t Tree[T]) (T, error) {
	_, v, err := ViewRight(t)
	return v, err
}

func viewLeftNode[T any](t Tree[T]) (node[T], Tree[T], bool) {
	switch tt := t.(type) {
	case emptyTree[T]:
		return nil, t, false
	case singleTree[T]:
		return tt.a, Empty[T](), true
	case deepTree[T]:
		if tt.left.n > 1 {
			head, rest := tt.left.dropLeft()
			return head, newDeep[T](rest, tt.mid, tt.right), true
		}

		head := tt.left.c[0]

		if !IsEmpty[T](tt.mid) {
			promoted, newMid, _ := viewLeftNode[T](tt.mid)
			return head, newDeep[T](digitOf(nodeChildren[T](promoted)...), newMid, tt.right), true
		}

		// middle is empty: re-materialize the remaining right digit.
		return head, fromNodes(tt.right.items()), true
	default:
		panic("ftree: unreachable tree variant")
	}
}

func viewRightNode[T any](t Tree[T]) (node[T], Tree[T], bool) {
	switch tt := t.(type) {
	case emptyTree[T]:
		return nil, t, false
	case singleTree[T]:
		return tt.a, Empty[T](), true
	case deepTree[T]:
		if tt.right.n > 1 {
			last, rest := tt.right.dropRight()
			return last, newDeep[T](tt.left, tt.mid, rest), true
		}

		last := tt.right.c[tt.right.n-1]

		if !IsEmpty[T](tt.mid) {
			promoted, newMid, _ := viewRightNode[T](tt.mid)
			return last, newDeep[T](tt.left, newMid, digitOf(nodeChildren[T](promoted)...)), true
		}

		return last, fromNodes(tt.left.items()), true
	default:
		panic("ftree: unreachable tree variant")
	}
}
