package mesh

import (
	"github.com/Mopolino8/omega-h/internal/meshlog"
	"github.com/Mopolino8/omega-h/tables"
)

// AskDual returns the flattened top-entity-to-top-entity adjacency
// table (width VertsPerEnt(dim), one slot per facet): slot s of
// element e holds the element sharing e's s-th (dim-1)-facet, or
// NoEntity if that facet is on the mesh boundary (spec §4.3: "two
// D-entities are dual-adjacent iff they share exactly D vertices").
func (m *Mesh) AskDual() []uint32 {
	return m.askDualRaw()
}

func (m *Mesh) askDualRaw() []uint32 {
	if m.dual != nil {
		return m.dual
	}
	d := m.dim
	topVerts := m.down[downKey{d, 0}]
	width := tables.VertsPerEnt(d)
	n := len(topVerts) / width
	facets := tables.AllSubs(d, d-1)
	slots := len(facets) // == width

	// index every facet's sorted vertex tuple -> (owning element, slot)
	type owner struct {
		elem, slot int
	}
	index := make(map[tupleKey]owner, n*slots)
	// resolved records facets already paired off (and removed from
	// index): a key reappearing here means a third element claims a
	// facet that two others already share, a non-manifold mesh spec
	// §4.3 does not admit.
	resolved := make(map[tupleKey]bool, n*slots)
	dual := make([]uint32, n*slots)
	for i := range dual {
		dual[i] = NoEntity
	}

	buf := make([]uint32, width-1)
	for e := 0; e < n; e++ {
		row := topVerts[e*width : e*width+width]
		for s, facet := range facets {
			for k, li := range facet {
				buf[k] = row[li]
			}
			key := makeTupleKey(buf)
			if resolved[key] {
				meshlog.Fatal("mesh: non-manifold facet shared by three or more elements",
					"dim", d, "elem", e, "slot", s)
			}
			if prev, ok := index[key]; ok {
				dual[e*slots+s] = uint32(prev.elem)
				dual[prev.elem*slots+prev.slot] = uint32(e)
				delete(index, key) // a facet is shared by at most two elements
				resolved[key] = true
			} else {
				index[key] = owner{e, s}
			}
		}
	}
	m.dual = dual
	return dual
}
