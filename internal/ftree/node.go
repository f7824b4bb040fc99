// Package ftree implements the size-annotated 2-3 finger tree that backs
// the persistent sequence in package psequence.
//
// Every exported function is pure: it takes a Tree (and, where relevant,
// other arguments) and returns a new Tree, sharing as much structure with
// its input as the algorithm allows. No exported function mutates a node
// reachable from a value the caller already holds.
package ftree

// node is the sum type for finger-tree elements: either a leaf holding one
// user value, or a 2- or 3-child branch one level above its children. The
// three variants are distinct Go types discriminated by type switch, so
// the leaf/branch distinction is a compile-time fact rather than a runtime
// tag field.
//
// A node's children are themselves node[T] values, which lets branches
// nest to arbitrary depth through ordinary Go interface recursion — the
// same self-referential-pointer idiom the package's teacher uses for its
// treap nodes, rather than the nested generic "Tree[Node[T]]" typing trick
// some statically typed finger-tree papers use. The depth-uniformity
// invariant (§3.1 invariant 1) is therefore a runtime/test invariant, not
// one the type system enforces; CheckInvariants walks the tree to verify
// it.
type node[T any] interface {
	size() int
	nodeSeal()
}

// element is a leaf node: one user value, size 1.
type element[T any] struct {
	value T
}

func (element[T]) size() int  { return 1 }
func (element[T]) nodeSeal()  {}

// branch2 is a 2-child interior node.
type branch2[T any] struct {
	sz     int
	c0, c1 node[T]
}

func (b branch2[T]) size() int { return b.sz }
func (branch2[T]) nodeSeal()   {}

// branch3 is a 3-child interior node.
type branch3[T any] struct {
	sz         int
	c0, c1, c2 node[T]
}

func (b branch3[T]) size() int { return b.sz }
func (branch3[T]) nodeSeal()   {}

func newElement[T any](v T) node[T] { return element[T]{value: v} }

func newBranch2[T any](a, b node[T]) node[T] {
	return branch2[T]{sz: a.size() + b.size(), c0: a, c1: b}
}

func newBranch3[T any](a, b, c node[T]) node[T] {
	return branch3[T]{sz: a.size() + b.size() + c.size(), c0: a, c1: b, c2: c}
}

// nodeChildren returns the children of a branch node in order, or nil for
// a leaf. Used by algorithms that need to re-flatten a branch (splitting
// inside a branch, and refilling an emptied digit from a middle-tree
// node).
func nodeChildren[T any](n node[T]) []node[T] {
	switch b := n.(type) {
	case branch2[T]:
		return []node[T]{b.c0, b.c1}
	case branch3[T]:
		return []node[T]{b.c0, b.c1, b.c2}
	default:
		return nil
	}
}

// nodeFromChildren rebuilds a branch node of the same arity as children,
// which must have length 2 or 3.
func nodeFromChildren[T any](children []node[T]) node[T] {
	switch len(children) {
	case 2:
		return newBranch2(children[0], children[1])
	case 3:
		return newBranch3(children[0], children[1], children[2])
	default:
		panic("ftree: nodeFromChildren requires 2 or 3 children")
	}
}

// reverseNode swaps the child order of a node and recursively reverses
// each child. Leaves are returned unchanged.
func reverseNode[T any](n node[T]) node[T] {
	switch b := n.(type) {
	case element[T]:
		return b
	case branch2[T]:
		return newBranch2(reverseNode[T](b.c1), reverseNode[T](b.c0))
	case branch3[T]:
		return newBranch3(reverseNode[T](b.c2), reverseNode[T](b.c1), reverseNode[T](b.c0))
	default:
		panic("ftree: unreachable node variant")
	}
}
