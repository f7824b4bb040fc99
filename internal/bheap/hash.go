package bheap

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"sort"
)

// Hash combines polarityTag with, for each distinct key, the sorted
// tuple of values for that key, so that equal heaps hash equal (§4.3.11).
// Values are folded in through fmt.Sprintf rather than a binary codec: no
// library in this module's dependency stack offers a generic structural
// hash over an arbitrary comparable V, and adding one only to serve this
// single call site would outweigh what it buys (see DESIGN.md).
func Hash[K cmp.Ordered, V any, P Polarity[K]](h Heap[K, V, P], valueLess func(V, V) bool) uint64 {
	var pol P
	sum := fnv.New64a()
	fmt.Fprintf(sum, "polarity:%s\n", pol.Tag())

	for _, g := range groupByKey(h) {
		values := append([]V(nil), g.values...)
		if valueLess != nil {
			sort.Slice(values, func(i, j int) bool { return valueLess(values[i], values[j]) })
		}
		fmt.Fprintf(sum, "key:%v values:%v\n", g.key, values)
	}

	return sum.Sum64()
}
