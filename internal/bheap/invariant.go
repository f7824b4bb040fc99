package bheap

import (
	"cmp"
	"fmt"
)

// CheckInvariants verifies the five §3.2 invariants: every tree of rank
// r has 2^r nodes and r children of ranks r-1..0 in that order, every
// tree obeys the heap property under pol, no forest root key wins
// against the cached top, and ranks strictly increase along the forest.
func CheckInvariants[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P]) error {
	var pol P

	if !h.hasTop {
		if h.sz != 0 || h.forest != nil {
			return fmt.Errorf("bheap: empty heap carries a non-empty forest or size")
		}
		return nil
	}

	count := 1
	prevRank := -1
	for e := h.forest; e != nil; e = e.next {
		if e.rank <= prevRank {
			return fmt.Errorf("bheap: forest ranks not strictly increasing: %d after %d", e.rank, prevRank)
		}
		prevRank = e.rank

		n, err := checkTree(pol, e.tree, e.rank)
		if err != nil {
			return err
		}
		count += n

		if pol.wins(e.tree.key, h.topKey) {
			return fmt.Errorf("bheap: forest root key %v wins against cached top %v", e.tree.key, h.topKey)
		}
	}

	if count != h.sz {
		return fmt.Errorf("bheap: size %d does not match forest entry count %d", h.sz, count)
	}
	return nil
}

// checkTree verifies t has rank wantRank, exactly 2^wantRank nodes,
// children of strictly decreasing rank wantRank-1..0, and the heap
// property throughout, returning the node count.
func checkTree[K cmp.Ordered, V any](pol Polarity[K], t *Tree[K, V], wantRank int) (int, error) {
	if t.rank != wantRank {
		return 0, fmt.Errorf("bheap: tree rank %d, want %d", t.rank, wantRank)
	}

	kids := children(t)
	if len(kids) != wantRank {
		return 0, fmt.Errorf("bheap: rank-%d tree has %d children, want %d", wantRank, len(kids), wantRank)
	}

	total := 1
	for i, c := range kids {
		wantChildRank := wantRank - 1 - i
		if pol.wins(c.key, t.key) {
			return 0, fmt.Errorf("bheap: child key %v wins against parent key %v", c.key, t.key)
		}
		n, err := checkTree(pol, c, wantChildRank)
		if err != nil {
			return 0, err
		}
		total += n
	}

	want := 1 << uint(wantRank)
	if total != want {
		return 0, fmt.Errorf("bheap: rank-%d tree has %d nodes, want %d", wantRank, total, want)
	}
	return total, nil
}
