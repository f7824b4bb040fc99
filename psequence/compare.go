package psequence

import "github.com/gaissmai/pcollections/internal/iterseq"

// Equal reports whether s and other hold the same length sequence of
// elements, pairwise equal under eq, short-circuiting on length (§4.2
// "Equality / ordering").
func (s PSequence[T]) Equal(other PSequence[T], eq func(a, b T) bool) bool {
	if s.Len() != other.Len() {
		return false
	}
	return iterseq.EqualBy(s.All(), other.All(), eq)
}

// Compare lexicographically orders s against other using less: the
// first differing element decides; if one is a prefix of the other, the
// shorter one is less.
func (s PSequence[T]) Compare(other PSequence[T], less func(a, b T) bool) int {
	return iterseq.CompareBy(s.All(), other.All(), less)
}
