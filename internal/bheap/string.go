package bheap

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Fprint writes one binomial-tree diagram per forest rank to w, cached
// top first, in the same indented-diagram style as package ftree's
// Fprint. It is a debugging aid only.
func Fprint[K cmp.Ordered, V any, P Polarity[K]](w io.Writer, h Heap[K, V, P]) error {
	bw, ok := w.(stringWriter)
	if !ok {
		bw = &builderAdapter{w}
	}
	if !h.hasTop {
		_, err := bw.WriteString("(empty)\n")
		return err
	}
	if _, err := bw.WriteString(fmt.Sprintf("top %v=%v\n", h.topKey, h.topVal)); err != nil {
		return err
	}
	for e := h.forest; e != nil; e = e.next {
		if _, err := bw.WriteString(fmt.Sprintf("rank %d:\n", e.rank)); err != nil {
			return err
		}
		writeTree(bw, e.tree, "  ")
	}
	return nil
}

type stringWriter interface {
	WriteString(string) (int, error)
}

type builderAdapter struct{ io.Writer }

func (b *builderAdapter) WriteString(s string) (int, error) { return b.Write([]byte(s)) }

func writeTree[K cmp.Ordered, V any](w stringWriter, t *Tree[K, V], pad string) {
	w.WriteString(fmt.Sprintf("%s%v=%v (rank %d)\n", pad, t.key, t.value, t.rank)) //nolint:errcheck
	for c := t.child; c != nil; c = c.sibling {
		writeTree(w, c, pad+"  ")
	}
}

// String renders h with Fprint into a strings.Builder.
func String[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P]) string {
	var b strings.Builder
	_ = Fprint[K, V, P](&b, h)
	return b.String()
}
