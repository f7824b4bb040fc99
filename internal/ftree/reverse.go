package ftree

// Reverse returns t with its elements in reverse order, in O(n) (§4.1.1).
// Every level swaps child order and reverses each child recursively;
// recursing into mid naturally reverses the deeper levels too, since
// digit.reversed calls reverseNode on each of mid's branch elements.
func Reverse[T any](t Tree[T]) Tree[T] {
	switch tt := t.(type) {
	case emptyTree[T]:
		return t
	case singleTree[T]:
		return singleTree[T]{a: reverseNode[T](tt.a)}
	case deepTree[T]:
		return newDeep[T](tt.right.reversed(), Reverse[T](tt.mid), tt.left.reversed())
	default:
		panic("ftree: unreachable tree variant")
	}
}
