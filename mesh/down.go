package mesh

import (
	"sort"

	"github.com/Mopolino8/omega-h/arrays"
	"github.com/Mopolino8/omega-h/internal/meshlog"
	"github.com/Mopolino8/omega-h/tables"
)

// tupleKey is a sorted, NoEntity-padded vertex tuple used as a map
// key when matching a subentity's vertex set against the canonical
// entity that owns that same vertex set (spec §3: "derived by
// matching vertex tuples against the vertex-to-l-entity upward
// adjacency").
type tupleKey [4]uint32

func makeTupleKey(ids []uint32) tupleKey {
	var k tupleKey
	for i := range k {
		k[i] = NoEntity
	}
	cp := append([]uint32(nil), ids...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	copy(k[:], cp)
	return k
}

// AskDown returns the flattened downward-adjacency table from
// dimension `high` to dimension `low` (high > low): for low==0, the
// vertex tuple of each high-entity (width VertsPerEnt(high)); for
// low>0, the global index of each of the high-entity's canonical
// l-subentities (width SubsPerEnt(high,low)). Dimensions not yet
// known are derived and cached on first call.
func (m *Mesh) AskDown(high, low int) []uint32 {
	if high <= low || high > m.dim || low < 0 {
		panic(ErrDimOutOfRange)
	}
	key := downKey{high, low}
	if t, ok := m.down[key]; ok {
		return t
	}
	if low == 0 {
		m.ensureEntities(high)
		return m.down[downKey{high, 0}]
	}
	m.ensureEntities(high)
	m.ensureEntities(low)
	t := m.deriveLocalDown(high, low)
	m.down[key] = t
	return t
}

// ensureEntities guarantees down[{dim,0}] and counts[dim] are
// populated, deriving intermediate-dimension entities on first call.
func (m *Mesh) ensureEntities(dim int) {
	if dim == 0 || dim == m.dim {
		if m.counts[0] == -1 {
			panic(ErrEntsNotSet)
		}
		return
	}
	if m.counts[dim] != -1 {
		return
	}
	switch dim {
	case 1:
		m.deriveEdges()
	case 2:
		m.deriveFaces()
	default:
		panic(ErrDimOutOfRange)
	}
}

// deriveEdges builds the canonical edge list (dimension 1) from the
// vertex-vertex star implied by the top-dimension entities: two
// vertices are adjacent iff some top entity contains both (spec §4.3,
// §4.4 Star note: raw incidences are built per top entity, then
// deduplicated, then bridged into one ordered edge per adjacent pair).
func (m *Mesh) deriveEdges() {
	nv := m.counts[0]
	topVerts := m.down[downKey{m.dim, 0}]
	width := tables.VertsPerEnt(m.dim)
	pairCombos := tables.AllSubs(m.dim, 1)
	nTop := len(topVerts) / width

	rawCounts := make([]uint32, nv)
	for e := 0; e < nTop; e++ {
		row := topVerts[e*width : e*width+width]
		for _, combo := range pairCombos {
			a, b := row[combo[0]], row[combo[1]]
			rawCounts[a]++
			rawCounts[b]++
		}
	}
	rawOffsets := arrays.Exscan(rawCounts)
	rawAdj := make([]uint32, rawOffsets[nv])
	cursor := append([]uint32(nil), rawOffsets[:nv]...)
	for e := 0; e < nTop; e++ {
		row := topVerts[e*width : e*width+width]
		for _, combo := range pairCombos {
			a, b := row[combo[0]], row[combo[1]]
			rawAdj[cursor[a]] = b
			cursor[a]++
			rawAdj[cursor[b]] = a
			cursor[b]++
		}
	}
	offsets, adj := dedupAdjacency(nv, rawOffsets, rawAdj)
	pairs := bridgeGraph(offsets, adj)

	edgeVerts := make([]uint32, 0, len(pairs)*2)
	for _, p := range pairs {
		edgeVerts = append(edgeVerts, p[0], p[1])
	}
	m.counts[1] = len(pairs)
	m.down[downKey{1, 0}] = edgeVerts
}

// deriveFaces builds the canonical 2D-face list of a 3D mesh from the
// element-element dual: each interior face is emitted once per
// bridged (lesser, greater) element pair, each boundary face once per
// exposed slot (spec §4.3).
func (m *Mesh) deriveFaces() {
	if m.dim != 3 {
		panic(ErrDimOutOfRange)
	}
	dual := m.askDualRaw()
	nTop := m.counts[m.dim]
	const slots = 4

	rawCounts := make([]uint32, nTop)
	for e := 0; e < nTop; e++ {
		for s := 0; s < slots; s++ {
			if dual[e*slots+s] != NoEntity {
				rawCounts[e]++
			}
		}
	}
	rawOffsets := arrays.Exscan(rawCounts)
	rawAdj := make([]uint32, rawOffsets[nTop])
	cursor := append([]uint32(nil), rawOffsets[:nTop]...)
	for e := 0; e < nTop; e++ {
		for s := 0; s < slots; s++ {
			if nb := dual[e*slots+s]; nb != NoEntity {
				rawAdj[cursor[e]] = nb
				cursor[e]++
			}
		}
	}

	topVerts := m.down[downKey{3, 0}]
	faceCombos := tables.AllSubs(3, 2)

	var faceVerts []uint32
	nFaces := 0
	faceVertsOf := func(e int, s int) []uint32 {
		row := topVerts[e*4 : e*4+4]
		combo := faceCombos[s]
		out := make([]uint32, len(combo))
		for i, li := range combo {
			out[i] = row[li]
		}
		return out
	}

	// interior faces: one per bridged element pair.
	for _, p := range bridgeGraph(rawOffsets, rawAdj) {
		e, nb := int(p[0]), p[1]
		for s := 0; s < slots; s++ {
			if dual[e*slots+s] == nb {
				faceVerts = append(faceVerts, faceVertsOf(e, s)...)
				nFaces++
				break
			}
		}
	}
	// boundary faces: one per exposed slot.
	for e := 0; e < nTop; e++ {
		for s := 0; s < slots; s++ {
			if dual[e*slots+s] == NoEntity {
				faceVerts = append(faceVerts, faceVertsOf(e, s)...)
				nFaces++
			}
		}
	}

	m.counts[2] = nFaces
	m.down[downKey{2, 0}] = faceVerts
}

// deriveLocalDown computes, for each dimension-d entity, the global
// index of each of its canonical l-subentities, by matching sorted
// vertex tuples against the known l-entity list.
func (m *Mesh) deriveLocalDown(d, l int) []uint32 {
	lVerts := m.down[downKey{l, 0}]
	lWidth := tables.VertsPerEnt(l)
	nL := len(lVerts) / lWidth
	index := make(map[tupleKey]uint32, nL)
	for i := 0; i < nL; i++ {
		index[makeTupleKey(lVerts[i*lWidth:i*lWidth+lWidth])] = uint32(i)
	}

	dVerts := m.down[downKey{d, 0}]
	dWidth := tables.VertsPerEnt(d)
	nD := len(dVerts) / dWidth
	combos := tables.AllSubs(d, l)
	out := make([]uint32, nD*len(combos))
	buf := make([]uint32, lWidth)
	for e := 0; e < nD; e++ {
		row := dVerts[e*dWidth : e*dWidth+dWidth]
		for ci, combo := range combos {
			for k, li := range combo {
				buf[k] = row[li]
			}
			id, ok := index[makeTupleKey(buf)]
			if !ok {
				meshlog.Fatal("mesh: subentity vertex tuple has no matching canonical entity",
					"high", d, "low", l, "elem", e)
			}
			out[e*len(combos)+ci] = id
		}
	}
	return out
}
