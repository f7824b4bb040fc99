package psequence

// Evolver is a single-owner transient wrapper around one current
// PSequence value (§4.4). Every updating method replaces the wrapped
// value; apart from Pop, PopLeft and PopRight, which return the removed
// element, each returns the evolver itself for chaining. There is no hidden transient
// representation underneath — Persistent always returns a fully
// shareable immutable value, exactly the one a pure pipeline of the same
// operations would have produced.
type Evolver[T any] struct {
	cur PSequence[T]
}

// NewEvolver returns an evolver over s.
func NewEvolver[T any](s PSequence[T]) *Evolver[T] {
	return &Evolver[T]{cur: s}
}

// Persistent returns the evolver's current value.
func (e *Evolver[T]) Persistent() PSequence[T] { return e.cur }

// Copy returns an independent evolver over the current value; the
// receiver continues independently.
func (e *Evolver[T]) Copy() *Evolver[T] { return &Evolver[T]{cur: e.cur} }

// Clear replaces the wrapped value with the empty sequence.
func (e *Evolver[T]) Clear() *Evolver[T] {
	e.cur = Empty[T]()
	return e
}

// Len, IsEmpty, and Get are read-only and behave as on the wrapped value.
func (e *Evolver[T]) Len() int          { return e.cur.Len() }
func (e *Evolver[T]) IsEmpty() bool     { return e.cur.IsEmpty() }
func (e *Evolver[T]) Get(i int) (T, error) { return e.cur.Get(i) }

// Set replaces the element at i.
func (e *Evolver[T]) Set(i int, v T) (*Evolver[T], error) {
	next, err := e.cur.Set(i, v)
	if err != nil {
		return e, err
	}
	e.cur = next
	return e, nil
}

// Insert inserts v at position i.
func (e *Evolver[T]) Insert(i int, v T) *Evolver[T] {
	e.cur = e.cur.Insert(i, v)
	return e
}

// Delete removes the element at i.
func (e *Evolver[T]) Delete(i int) (*Evolver[T], error) {
	next, err := e.cur.Delete(i)
	if err != nil {
		return e, err
	}
	e.cur = next
	return e, nil
}

// AppendLeft prepends v (the evolver spelling of PushLeft).
func (e *Evolver[T]) AppendLeft(v T) *Evolver[T] {
	e.cur = e.cur.PushLeft(v)
	return e
}

// AppendRight appends v (the evolver spelling of PushRight).
func (e *Evolver[T]) AppendRight(v T) *Evolver[T] {
	e.cur = e.cur.PushRight(v)
	return e
}

// ExtendLeft prepends every element of xs, preserving xs's order.
func (e *Evolver[T]) ExtendLeft(xs []T) *Evolver[T] {
	e.cur = From(xs).Concat(e.cur)
	return e
}

// ExtendRight appends every element of xs.
func (e *Evolver[T]) ExtendRight(xs []T) *Evolver[T] {
	e.cur = e.cur.Concat(From(xs))
	return e
}

// Reverse reverses the wrapped value in place.
func (e *Evolver[T]) Reverse() *Evolver[T] {
	e.cur = e.cur.Reverse()
	return e
}

// Sort orders the wrapped value by less, per the same contract as
// PSequence.Sort.
func (e *Evolver[T]) Sort(less func(a, b T) bool, reverse bool) *Evolver[T] {
	e.cur = e.cur.Sort(less, reverse)
	return e
}

// Pop removes and returns the element at i, defaulting to the last
// element when i is nil (§4.4 "pop(index=last)").
func (e *Evolver[T]) Pop(i *int) (T, error) {
	idx := e.cur.Len() - 1
	if i != nil {
		idx = *i
	}
	v, err := e.cur.Get(idx)
	if err != nil {
		return v, err
	}
	next, err := e.cur.Delete(idx)
	if err != nil {
		return v, err
	}
	e.cur = next
	return v, nil
}

// PopLeft removes and returns the leftmost element.
func (e *Evolver[T]) PopLeft() (T, error) {
	v, rest, err := e.cur.ViewLeft()
	if err != nil {
		return v, err
	}
	e.cur = rest
	return v, nil
}

// PopRight removes and returns the rightmost element.
func (e *Evolver[T]) PopRight() (T, error) {
	rest, v, err := e.cur.ViewRight()
	if err != nil {
		return v, err
	}
	e.cur = rest
	return v, nil
}
