package mesh

import "github.com/Mopolino8/omega-h/arrays"

// bridgeGraph takes a symmetric CSR graph (every edge (a,b) appears
// as both a->b and b->a, no duplicate neighbour entries) and emits
// each unordered edge exactly once, as the lower-indexed endpoint
// first. Spec §4.3: used to turn the vertex-vertex star into the
// canonical edge list, and the element-element dual into the
// canonical interior-face list.
func bridgeGraph(offsets, adj []uint32) [][2]uint32 {
	var out [][2]uint32
	for i := 0; i < len(offsets)-1; i++ {
		for j := offsets[i]; j < offsets[i+1]; j++ {
			if nb := adj[j]; nb > uint32(i) {
				out = append(out, [2]uint32{uint32(i), nb})
			}
		}
	}
	return out
}

// dedupAdjacency collapses a raw, possibly-repeating neighbour list
// (grouped by vertex via rawOffsets/rawAdj) into a compact CSR graph
// with each neighbour appearing once per vertex. Spec §4.3: "duplicate
// pairs may arise [...] and must be removed by an unordered-set pass."
func dedupAdjacency(n int, rawOffsets, rawAdj []uint32) (offsets, adj []uint32) {
	unique := make([][]uint32, n)
	for i := 0; i < n; i++ {
		seen := make(map[uint32]bool, rawOffsets[i+1]-rawOffsets[i])
		for j := rawOffsets[i]; j < rawOffsets[i+1]; j++ {
			nb := rawAdj[j]
			if seen[nb] {
				continue
			}
			seen[nb] = true
			unique[i] = append(unique[i], nb)
		}
	}
	counts := make([]uint32, n)
	for i := 0; i < n; i++ {
		counts[i] = uint32(len(unique[i]))
	}
	offsets = arrays.Exscan(counts)
	adj = make([]uint32, offsets[n])
	for i := 0; i < n; i++ {
		copy(adj[offsets[i]:offsets[i+1]], unique[i])
	}
	return offsets, adj
}
