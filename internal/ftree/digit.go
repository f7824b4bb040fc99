package ftree

// digit is the 1-to-4-child left/right spine of a Deep tree (§3.1). It is
// represented as a small fixed-capacity array plus a count rather than as
// four distinct digit1..digit4 types: every algorithm that consumes a
// digit (push, view, split, concat, fromNodes) already branches on the
// count, and four separate arity types would only multiply those branches
// without adding any compile-time safety the count field doesn't already
// give at the call sites that matter (see DESIGN.md).
type digit[T any] struct {
	sz int
	n  int
	c  [4]node[T]
}

func digitOf[T any](items ...node[T]) digit[T] {
	if len(items) < 1 || len(items) > 4 {
		panic("ftree: digit must have 1..4 children")
	}
	var d digit[T]
	d.n = len(items)
	for i, it := range items {
		d.c[i] = it
		d.sz += it.size()
	}
	return d
}

func (d digit[T]) size() int { return d.sz }

func (d digit[T]) items() []node[T] {
	return append([]node[T](nil), d.c[:d.n]...)
}

// pushLeft prepends a node to the digit. Caller must ensure d.n < 4.
func (d digit[T]) pushLeft(n node[T]) digit[T] {
	var out digit[T]
	out.n = d.n + 1
	out.c[0] = n
	for i := 0; i < d.n; i++ {
		out.c[i+1] = d.c[i]
	}
	out.sz = d.sz + n.size()
	return out
}

// pushRight appends a node to the digit. Caller must ensure d.n < 4.
func (d digit[T]) pushRight(n node[T]) digit[T] {
	var out digit[T]
	out.n = d.n + 1
	for i := 0; i < d.n; i++ {
		out.c[i] = d.c[i]
	}
	out.c[out.n-1] = n
	out.sz = d.sz + n.size()
	return out
}

// dropLeft removes and returns the leftmost item, plus the shrunken digit.
// Caller must ensure d.n > 1 (a digit never shrinks below 1 via this path;
// emptying a digit to 0 is handled by the caller explicitly).
func (d digit[T]) dropLeft() (node[T], digit[T]) {
	var out digit[T]
	out.n = d.n - 1
	for i := 0; i < out.n; i++ {
		out.c[i] = d.c[i+1]
	}
	out.sz = d.sz - d.c[0].size()
	return d.c[0], out
}

// dropRight removes and returns the rightmost item, plus the shrunken digit.
func (d digit[T]) dropRight() (node[T], digit[T]) {
	var out digit[T]
	out.n = d.n - 1
	for i := 0; i < out.n; i++ {
		out.c[i] = d.c[i]
	}
	out.sz = d.sz - d.c[d.n-1].size()
	return d.c[d.n-1], out
}

func (d digit[T]) reversed() digit[T] {
	var out digit[T]
	out.n = d.n
	out.sz = d.sz
	for i := 0; i < d.n; i++ {
		out.c[i] = reverseNode[T](d.c[d.n-1-i])
	}
	return out
}
