package ftree

// SplitAt splits t into a prefix of length i and a suffix starting with
// the element formerly at i, in O(log min(i, n-i)) (§4.1.1). Requested
// indices outside [0, n] clamp: i <= 0 yields (Empty, t); i >= n yields
// (t, Empty).
func SplitAt[T any](t Tree[T], i int) (Tree[T], Tree[T]) {
	n := t.Size()
	if i <= 0 {
		return Empty[T](), t
	}
	if i >= n {
		return t, Empty[T]()
	}
	l, x, r := splitTreeAt(t, i)
	return l, pushLeftNode[T](r, x)
}

// Take returns the prefix of length min(i, n); negative i is clamped to 0.
func Take[T any](t Tree[T], i int) Tree[T] {
	l, _ := SplitAt(t, i)
	return l
}

// Drop returns the suffix after dropping min(i, n) elements from the left;
// negative i is clamped to 0.
func Drop[T any](t Tree[T], i int) Tree[T] {
	_, r := SplitAt(t, i)
	return r
}

// splitTreeAt splits t at offset i (0 <= i < t.Size()) into a prefix tree,
// the node occupying position i, and a suffix tree. It mirrors the
// classical Hinze/Paterson splitTree: probe the left digit, then recurse
// into the middle tree (whose own elements are one-level-deeper branch
// nodes) and break the located branch apart with splitNode, then probe
// the right digit.
func splitTreeAt[T any](t Tree[T], i int) (Tree[T], node[T], Tree[T]) {
	switch tt := t.(type) {
	case singleTree[T]:
		return Empty[T](), tt.a, Empty[T]()
	case deepTree[T]:
		szLeft := tt.left.size()
		if i < szLeft {
			l, x, r := splitDigitAt(i, tt.left)
			return fromNodes(l), x, deepL(r, tt.mid, tt.right)
		}
		i -= szLeft

		szMid := tt.mid.Size()
		if i < szMid {
			ml, xs, mr := splitTreeAt[T](tt.mid, i)
			offset := i - ml.Size()
			l, x, r := splitNode(offset, xs)
			return deepR(tt.left, ml, l), x, deepL(r, mr, tt.right)
		}
		i -= szMid

		l, x, r := splitDigitAt(i, tt.right)
		return deepR(tt.left, tt.mid, l), x, fromNodes(r)
	default:
		panic("ftree: split on empty tree")
	}
}

// splitDigitAt locates the child of d at offset i and returns the nodes to
// its left and right as flat slices.
func splitDigitAt[T any](i int, d digit[T]) (left []node[T], x node[T], right []node[T]) {
	for k := 0; k < d.n; k++ {
		sz := d.c[k].size()
		if i < sz {
			return append([]node[T](nil), d.c[:k]...), d.c[k], append([]node[T](nil), d.c[k+1:d.n]...)
		}
		i -= sz
	}
	panic("ftree: digit offset out of range")
}

// splitNode breaks a branch node's children at offset i, the node-level
// analogue of splitDigitAt.
func splitNode[T any](i int, n node[T]) (left []node[T], x node[T], right []node[T]) {
	children := nodeChildren[T](n)
	for k, c := range children {
		sz := c.size()
		if i < sz {
			return children[:k], c, children[k+1:]
		}
		i -= sz
	}
	panic("ftree: branch offset out of range")
}

// deepL rebuilds a Deep tree given a (possibly empty) flat node list for
// the left digit. An empty list pulls a node from mid to refill the left
// digit, or collapses to a smaller tree if mid is also empty — the same
// "fromNodes helper" rebalancing §4.1.1 describes for split reconstruction.
func deepL[T any](leftNodes []node[T], mid Tree[T], right digit[T]) Tree[T] {
	if len(leftNodes) == 0 {
		if IsEmpty[T](mid) {
			return fromNodes(right.items())
		}
		n, newMid, _ := viewLeftNode[T](mid)
		return newDeep[T](digitOf(nodeChildren[T](n)...), newMid, right)
	}
	return newDeep[T](digitOf(leftNodes...), mid, right)
}

// deepR is the mirror of deepL for the right digit.
func deepR[T any](left digit[T], mid Tree[T], rightNodes []node[T]) Tree[T] {
	if len(rightNodes) == 0 {
		if IsEmpty[T](mid) {
			return fromNodes(left.items())
		}
		n, newMid, _ := viewRightNode[T](mid)
		return newDeep[T](left, newMid, digitOf(nodeChildren[T](n)...))
	}
	return newDeep[T](left, mid, digitOf(rightNodes...))
}
