package swap

import (
	"errors"

	"github.com/Mopolino8/omega-h/arrays"
	"github.com/Mopolino8/omega-h/indset"
	"github.com/Mopolino8/omega-h/mesh"
	"github.com/Mopolino8/omega-h/quality"
	"github.com/Mopolino8/omega-h/tables"
)

// ErrMissingCoordinates is returned when the mesh carries no
// "coordinates" vertex tag.
var ErrMissingCoordinates = errors.New("swap: mesh has no \"coordinates\" vertex tag")

const coordsTag = "coordinates"

// cavity describes one edge's candidate re-triangulation: the
// elements it would remove and the element vertex rows it would add
// in their place.
type cavity struct {
	oldElems []uint32 // element ids to remove
	newRows  [][]uint32
	quality  float64 // worst quality among newRows
}

// minRingSize3D is the smallest 3D edge ring a flip can retriangulate
// (the classic 3-to-2 flip).
const minRingSize3D = 3

// Candidates evaluates every edge's potential swap and returns, per
// edge, whether swapping improves the worst quality in its cavity
// above both the cavity's current worst quality and goodQuality.
// nsliverLayers bounds the 3D ring-neighbour radius a flip may
// consider: the largest ring size tried is minRingSize3D+nsliverLayers,
// so the default of 4 reaches the spec's typical ring-size ceiling of
// 7 and a caller in a hurry can shrink it to cover only the tightest
// slivers.
func Candidates(m *mesh.Mesh, goodQuality float64, nsliverLayers uint8) (marked []bool, goodness []float64, cavities []*cavity, err error) {
	coords, cerr := m.FindTag(0, coordsTag)
	if cerr != nil {
		return nil, nil, nil, ErrMissingCoordinates
	}
	dim := m.Dim()
	n := m.Count(1)
	marked = make([]bool, n)
	goodness = make([]float64, n)
	cavities = make([]*cavity, n)

	up := m.AskUp(1, dim)
	edgeVerts := m.AskDown(1, 0)
	elemVerts := m.AskDown(dim, 0)
	ew := tables.VertsPerEnt(dim)
	maxRing3D := minRingSize3D + int(nsliverLayers)

	for e := 0; e < n; e++ {
		ring := up.Adj[up.Offsets[e]:up.Offsets[e+1]]
		a, b := edgeVerts[e*2], edgeVerts[e*2+1]

		var cav *cavity
		switch {
		case dim == 2 && len(ring) == 2:
			cav = flip2D(elemVerts, ew, ring, a, b)
		case dim == 3 && len(ring) >= minRingSize3D && len(ring) <= maxRing3D:
			cav = flip3D(m, coords.F64Data, elemVerts, ew, ring, a, b)
		default:
			continue
		}
		if cav == nil {
			continue
		}
		cav.quality = minQuality(coords.F64Data, dim, cav.newRows)
		before := minQuality(coords.F64Data, dim, elemRows(elemVerts, ew, ring))
		if cav.quality > before && cav.quality >= goodQuality {
			marked[e] = true
			goodness[e] = cav.quality
			cavities[e] = cav
		}
	}
	return marked, goodness, cavities, nil
}

func elemRows(elemVerts []uint32, ew int, elems []uint32) [][]uint32 {
	rows := make([][]uint32, len(elems))
	for i, el := range elems {
		rows[i] = elemVerts[int(el)*ew : int(el)*ew+ew]
	}
	return rows
}

func minQuality(coords []float64, dim int, rows [][]uint32) float64 {
	min := 1.0
	for _, row := range rows {
		pts := make([][3]float64, len(row))
		for i, v := range row {
			pts[i] = [3]float64{coords[int(v)*3], coords[int(v)*3+1], coords[int(v)*3+2]}
		}
		if q := quality.Element(dim, pts); q < min {
			min = q
		}
	}
	return min
}

// flip2D builds the quadrilateral-diagonal-flip cavity for an edge
// (a,b) shared by exactly two triangles.
func flip2D(elemVerts []uint32, ew int, ring []uint32, a, b uint32) *cavity {
	t1, t2 := ring[0], ring[1]
	c, ok1 := thirdVertex(elemVerts, ew, t1, a, b)
	d, ok2 := thirdVertex(elemVerts, ew, t2, a, b)
	if !ok1 || !ok2 {
		return nil
	}
	newRows := [][]uint32{
		{a, c, d},
		{b, d, c},
	}
	return &cavity{oldElems: []uint32{t1, t2}, newRows: newRows}
}

func thirdVertex(elemVerts []uint32, ew int, elem, a, b uint32) (uint32, bool) {
	row := elemVerts[int(elem)*ew : int(elem)*ew+ew]
	for _, v := range row {
		if v != a && v != b {
			return v, true
		}
	}
	return 0, false
}

// flip3D builds the retriangulation cavity for an edge (a,b) shared by
// r tetrahedra forming a closed ring (r==3 is the classic 3-to-2
// flip), by walking the ring to recover its apex vertices in cyclic
// order, then picking the best-quality fan triangulation of the
// r-sided apex polygon among the r candidate fans (one rooted at each
// apex) — each fan yields 2*(r-2) new tets, matching the general
// edge-collapse-free retriangulation the ring admits.
func flip3D(m *mesh.Mesh, coords []float64, elemVerts []uint32, ew int, ring []uint32, a, b uint32) *cavity {
	apexes, ok := ringApexes(m, ring, a, b)
	r := len(apexes)
	if !ok || r < minRingSize3D {
		return nil
	}
	var best *cavity
	for k := 0; k < r; k++ {
		rows := fanRetriangulation(apexes, k, a, b)
		q := minQuality(coords, 3, rows)
		if best == nil || q > best.quality {
			best = &cavity{oldElems: ring, newRows: rows, quality: q}
		}
	}
	return best
}

// fanRetriangulation triangulates the cyclic apex polygon as a fan
// rooted at apexes[root], producing r-2 polygon triangles, each
// expanded into the two tets {a, triangle...} and {b, triangle...}.
func fanRetriangulation(apexes []uint32, root int, a, b uint32) [][]uint32 {
	r := len(apexes)
	rows := make([][]uint32, 0, 2*(r-2))
	for step := 1; step <= r-2; step++ {
		i := (root + step) % r
		j := (root + step + 1) % r
		p, q := apexes[i], apexes[j]
		rows = append(rows, []uint32{a, apexes[root], p, q}, []uint32{b, apexes[root], p, q})
	}
	return rows
}

// ringApexes returns the cyclically-ordered apex vertices of a closed
// 3D edge ring: tet i is {a, b, apex[i], apex[i+1 mod k]}.
func ringApexes(m *mesh.Mesh, ring []uint32, a, b uint32) ([]uint32, bool) {
	dim := m.Dim()
	elemVerts := m.AskDown(dim, 0)
	ew := tables.VertsPerEnt(dim)
	inRing := make(map[uint32]bool, len(ring))
	for _, t := range ring {
		inRing[t] = true
	}

	// each tet's two non-edge vertices.
	others := make(map[uint32][2]uint32, len(ring))
	for _, t := range ring {
		row := elemVerts[int(t)*ew : int(t)*ew+ew]
		var o [2]uint32
		n := 0
		for _, v := range row {
			if v != a && v != b {
				if n >= 2 {
					return nil, false
				}
				o[n] = v
				n++
			}
		}
		if n != 2 {
			return nil, false
		}
		others[t] = o
	}

	start := ring[0]
	apex0 := others[start][0]
	apex1 := others[start][1]
	apexes := []uint32{apex0, apex1}
	visited := map[uint32]bool{start: true}
	cur := start
	curApex := apex1
	for len(visited) < len(ring) {
		next := uint32(0)
		found := false
		for _, t := range ring {
			if visited[t] || t == cur {
				continue
			}
			o := others[t]
			if o[0] == curApex || o[1] == curApex {
				next = t
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
		visited[next] = true
		o := others[next]
		var nextApex uint32
		if o[0] == curApex {
			nextApex = o[1]
		} else {
			nextApex = o[0]
		}
		if len(apexes) < len(ring) {
			apexes = append(apexes, nextApex)
		}
		cur = next
		curApex = nextApex
	}
	if curApex != apex0 {
		return nil, false // open ring (boundary edge): not handled
	}
	return apexes, true
}

// Select resolves marked edges into a non-conflicting subset: no two
// edges that share an element may both be swapped in the same pass.
func Select(m *mesh.Mesh, marked []bool, goodness []float64) []bool {
	dim := m.Dim()
	star := m.AskStar(1, dim)
	n := m.Count(1)
	return indset.Select(n, star.Offsets, star.Adj, marked, goodness)
}

// Apply rebuilds the mesh with every selected edge's cavity replaced.
// Elements untouched by any selected swap pass through unchanged;
// every new element in a flipped cavity inherits the tag values of
// the cavity's first original element.
func Apply(m *mesh.Mesh, selected []bool, cavities []*cavity) (*mesh.Mesh, error) {
	dim := m.Dim()
	nElems := m.Count(dim)
	removed := make([]bool, nElems)
	var activeCavities []*cavity
	for e, sel := range selected {
		if !sel {
			continue
		}
		cav := cavities[e]
		for _, old := range cav.oldElems {
			removed[old] = true
		}
		activeCavities = append(activeCavities, cav)
	}

	elemVerts := m.AskDown(dim, 0)
	ew := tables.VertsPerEnt(dim)

	keptCounts := make([]uint32, nElems)
	for e := 0; e < nElems; e++ {
		if !removed[e] {
			keptCounts[e] = 1
		}
	}
	keptOffsets := arrays.Exscan(keptCounts)
	nKept := int(keptOffsets[nElems])

	sourceElem := make([]int, nKept, nKept+len(activeCavities)*2)
	for e := 0; e < nElems; e++ {
		if !removed[e] {
			sourceElem[int(keptOffsets[e])] = e
		}
	}
	outElems := append([]uint32(nil), arrays.Subset(elemVerts, nElems, ew, keptOffsets)...)
	for _, cav := range activeCavities {
		for _, row := range cav.newRows {
			outElems = append(outElems, row...)
			sourceElem = append(sourceElem, int(cav.oldElems[0]))
		}
	}

	out, err := mesh.New(dim)
	if err != nil {
		return nil, err
	}
	if err := out.SetEnts(m.Count(0), outElems); err != nil {
		return nil, err
	}
	for i := 0; i < m.CountTags(0); i++ {
		tag := m.GetTag(0, i)
		if tag.Kind == mesh.F64 {
			if err := out.AddTagF64(0, tag.Name, tag.Ncomps, tag.F64Data); err != nil {
				return nil, err
			}
		} else {
			if err := out.AddTagU32(0, tag.Name, tag.Ncomps, tag.U32Data); err != nil {
				return nil, err
			}
		}
	}
	for i := 0; i < m.CountTags(dim); i++ {
		tag := m.GetTag(dim, i)
		if tag.Kind == mesh.U32 {
			data := make([]uint32, len(sourceElem)*tag.Ncomps)
			for i2, src := range sourceElem {
				copy(data[i2*tag.Ncomps:(i2+1)*tag.Ncomps], tag.U32Data[src*tag.Ncomps:(src+1)*tag.Ncomps])
			}
			if err := out.AddTagU32(dim, tag.Name, tag.Ncomps, data); err != nil {
				return nil, err
			}
		} else {
			data := make([]float64, len(sourceElem)*tag.Ncomps)
			for i2, src := range sourceElem {
				copy(data[i2*tag.Ncomps:(i2+1)*tag.Ncomps], tag.F64Data[src*tag.Ncomps:(src+1)*tag.Ncomps])
			}
			if err := out.AddTagF64(dim, tag.Name, tag.Ncomps, data); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
