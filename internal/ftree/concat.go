package ftree

// Concat concatenates a and b in O(log min(|a|, |b|)) (§4.1.1). Empty and
// Single trees are handled as special cases; otherwise the right digit of
// a, the left digit of b, and any middle "carry" nodes are regrouped into
// branch nodes one level up and folded into the recursive concatenation
// of the two middle trees (the classical Hinze/Paterson app3).
func Concat[T any](a, b Tree[T]) Tree[T] {
	return concat3[T](a, nil, b)
}

func concat3[T any](a Tree[T], extra []node[T], b Tree[T]) Tree[T] {
	if IsEmpty[T](a) {
		return prependNodes(extra, b)
	}
	if as, ok := a.(singleTree[T]); ok {
		return pushLeftNode[T](concat3[T](Empty[T](), extra, b), as.a)
	}
	if IsEmpty[T](b) {
		return appendNodes(a, extra)
	}
	if bs, ok := b.(singleTree[T]); ok {
		return pushRightNode[T](concat3[T](a, extra, Empty[T]()), bs.a)
	}

	ad := a.(deepTree[T])
	bd := b.(deepTree[T])

	combined := make([]node[T], 0, ad.right.n+len(extra)+bd.left.n)
	combined = append(combined, ad.right.items()...)
	combined = append(combined, extra...)
	combined = append(combined, bd.left.items()...)

	groups := groupInThrees(combined)
	carry := make([]node[T], len(groups))
	for i, g := range groups {
		carry[i] = nodeFromChildren(g)
	}

	return newDeep[T](ad.left, concat3[T](ad.mid, carry, bd.mid), bd.right)
}

func prependNodes[T any](nodes []node[T], t Tree[T]) Tree[T] {
	for k := len(nodes) - 1; k >= 0; k-- {
		t = pushLeftNode[T](t, nodes[k])
	}
	return t
}

func appendNodes[T any](t Tree[T], nodes []node[T]) Tree[T] {
	for _, n := range nodes {
		t = pushRightNode[T](t, n)
	}
	return t
}
