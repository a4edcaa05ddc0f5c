package mesh

import (
	"github.com/Mopolino8/omega-h/arrays"
	"github.com/Mopolino8/omega-h/tables"
)

// AskStar returns the CSR graph on dimension-`dim` entities where two
// distinct entities are adjacent iff they are both subentities of a
// common `via`-dimension entity (via > dim). Duplicate incidences
// arising from sharing more than one `via`-entity are deduplicated
// (spec §4.4).
func (m *Mesh) AskStar(dim, via int) Star {
	if dim >= via || via > m.dim || dim < 0 {
		panic(ErrDimOutOfRange)
	}
	key := adjKey{dim, via}
	if s, ok := m.star[key]; ok {
		return s
	}
	n := m.Count(dim)
	down := m.AskDown(via, dim)
	width := tables.SubsPerEnt(via, dim)
	nVia := len(down) / width

	rawCounts := make([]uint32, n)
	for e := 0; e < nVia; e++ {
		row := down[e*width : e*width+width]
		for i := 0; i < width; i++ {
			rawCounts[row[i]] += uint32(width - 1)
		}
	}
	rawOffsets := arrays.Exscan(rawCounts)
	rawAdj := make([]uint32, rawOffsets[n])
	cursor := append([]uint32(nil), rawOffsets[:n]...)
	for e := 0; e < nVia; e++ {
		row := down[e*width : e*width+width]
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				if i == j {
					continue
				}
				rawAdj[cursor[row[i]]] = row[j]
				cursor[row[i]]++
			}
		}
	}
	offsets, adj := dedupAdjacency(n, rawOffsets, rawAdj)
	s := Star{Offsets: offsets, Adj: adj}
	m.star[key] = s
	return s
}
