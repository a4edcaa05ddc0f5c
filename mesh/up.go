package mesh

import (
	"github.com/Mopolino8/omega-h/arrays"
	"github.com/Mopolino8/omega-h/tables"
)

// AskUp returns the upward adjacency from dimension `low` entities to
// the dimension `high` entities that contain them (low < high),
// inverting AskDown(high, low). Directions[k] is the local slot that
// Adj[k] occupies within its containing high-entity, e.g. "this is
// edge 2 of that triangle" (spec §4.4).
func (m *Mesh) AskUp(low, high int) Up {
	if low >= high || high > m.dim || low < 0 {
		panic(ErrDimOutOfRange)
	}
	key := adjKey{low, high}
	if u, ok := m.up[key]; ok {
		return u
	}
	down := m.AskDown(high, low)
	width := tables.SubsPerEnt(high, low)
	nLow := m.Count(low)
	nHigh := len(down) / width

	counts := make([]uint32, nLow)
	for i := 0; i < nHigh; i++ {
		for s := 0; s < width; s++ {
			counts[down[i*width+s]]++
		}
	}
	offsets := arrays.Exscan(counts)
	adj := make([]uint32, offsets[nLow])
	dirs := make([]uint32, offsets[nLow])
	cursor := append([]uint32(nil), offsets[:nLow]...)
	for i := 0; i < nHigh; i++ {
		for s := 0; s < width; s++ {
			lo := down[i*width+s]
			adj[cursor[lo]] = uint32(i)
			dirs[cursor[lo]] = uint32(s)
			cursor[lo]++
		}
	}
	u := Up{Offsets: offsets, Adj: adj, Directions: dirs}
	m.up[key] = u
	return u
}
