package coarsen

import (
	"errors"
	"math"

	"github.com/Mopolino8/omega-h/arrays"
	"github.com/Mopolino8/omega-h/indset"
	"github.com/Mopolino8/omega-h/mesh"
	"github.com/Mopolino8/omega-h/quality"
	"github.com/Mopolino8/omega-h/tables"
)

var (
	ErrMissingCoordinates    = errors.New("coarsen: mesh has no \"coordinates\" vertex tag")
	ErrMissingClassification = errors.New("coarsen: mesh has no \"class_dim\"/\"class_id\" vertex tags")
)

const coordsTag = "coordinates"

// Plan is one vertex's best outbound collapse: the vertex the plan is
// indexed by is removed and Survivor takes its place, with Quality the
// worst score any untouched ring element would have afterwards.
type Plan struct {
	Survivor uint32
	Quality  float64
	has      bool
}

// Candidates computes, for every vertex, the best outbound collapse
// among its incident edges shorter than floor (spec §8's
// size_ratio_floor applied to the local target size), subject to the
// classification rule and a minimum post-collapse quality.
func Candidates(m *mesh.Mesh, floor, goodQuality float64) ([]Plan, error) {
	coords, err := m.FindTag(0, coordsTag)
	if err != nil {
		return nil, ErrMissingCoordinates
	}
	classDim, err := m.FindTag(0, "class_dim")
	if err != nil {
		return nil, ErrMissingClassification
	}
	classID, err := m.FindTag(0, "class_id")
	if err != nil {
		return nil, ErrMissingClassification
	}

	dim := m.Dim()
	nv := m.Count(0)
	star := m.AskStar(0, 1) // vertex-vertex graph via shared edges
	vertUp := m.AskUp(0, dim)
	elemVerts := m.AskDown(dim, 0)
	ew := tables.VertsPerEnt(dim)

	plans := make([]Plan, nv)
	for v := 0; v < nv; v++ {
		best := Plan{}
		for j := star.Offsets[v]; j < star.Offsets[v+1]; j++ {
			u := star.Adj[j]
			if dist(coords.F64Data, v, int(u)) >= floor {
				continue
			}
			if !quality.CanCollapse(classDim.U32Data[u], classID.U32Data[u], classDim.U32Data[v], classID.U32Data[v]) {
				continue
			}
			q := ringQuality(coords.F64Data, vertUp, elemVerts, ew, dim, uint32(v), u)
			if q < goodQuality {
				continue
			}
			if !best.has || q > best.Quality {
				best = Plan{Survivor: u, Quality: q, has: true}
			}
		}
		plans[v] = best
	}
	return plans, nil
}

func dist(coords []float64, a, b int) float64 {
	var sum float64
	for k := 0; k < 3; k++ {
		d := coords[a*3+k] - coords[b*3+k]
		sum += d * d
	}
	if sum <= 0 {
		return 0
	}
	return math.Sqrt(sum)
}

// ringQuality returns the worst quality score among the elements that
// contain `victim` but not `survivor`, after moving victim's position
// to survivor's. Elements containing both vanish on collapse and are
// excluded from this check (spec §4.8).
func ringQuality(coords []float64, up mesh.Up, elemVerts []uint32, ew, dim int, victim, survivor uint32) float64 {
	min := 1.0
	for j := up.Offsets[victim]; j < up.Offsets[victim+1]; j++ {
		elem := up.Adj[j]
		row := elemVerts[int(elem)*ew : int(elem)*ew+ew]
		straddles := false
		for _, v := range row {
			if v == survivor {
				straddles = true
				break
			}
		}
		if straddles {
			continue
		}
		pts := make([][3]float64, ew)
		for i, v := range row {
			id := v
			if id == victim {
				id = survivor
			}
			pts[i] = [3]float64{coords[int(id)*3], coords[int(id)*3+1], coords[int(id)*3+2]}
		}
		if q := quality.Element(dim, pts); q < min {
			min = q
		}
	}
	return min
}

// Select resolves candidate plans into a non-conflicting removal set:
// no two adjacent vertices may both be removed in the same pass.
func Select(m *mesh.Mesh, plans []Plan) []bool {
	nv := m.Count(0)
	filter := make([]bool, nv)
	goodness := make([]float64, nv)
	for v, p := range plans {
		filter[v] = p.has
		goodness[v] = p.Quality
	}
	star := m.AskStar(0, 1)
	return indset.Select(nv, star.Offsets, star.Adj, filter, goodness)
}

// Apply rebuilds the mesh with every selected vertex removed, every
// element's vertex ids remapped to survivors, and every element that
// straddled a collapsed edge (and so degenerates) dropped.
func Apply(m *mesh.Mesh, plans []Plan, selected []bool) (*mesh.Mesh, error) {
	dim := m.Dim()
	nv := m.Count(0)

	survivorOf := make([]uint32, nv)
	for v := range survivorOf {
		survivorOf[v] = uint32(v)
	}
	for v, sel := range selected {
		if sel {
			survivorOf[v] = plans[v].Survivor
		}
	}
	// resolve chains (a removed vertex whose survivor is also removed).
	// A survivor is always adjacent to its victim, so indset's
	// adjacency constraint already rules this out; this loop is a
	// defensive fixed point.
	for {
		changed := false
		for v, sel := range selected {
			if sel && selected[survivorOf[v]] {
				survivorOf[v] = survivorOf[survivorOf[v]]
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	keptVertCounts := make([]uint32, nv)
	for v := 0; v < nv; v++ {
		if !selected[v] {
			keptVertCounts[v] = 1
		}
	}
	vertOffsets := arrays.Exscan(keptVertCounts)
	nKept := int(vertOffsets[nv])
	newIndex := make([]int, nv)
	for v := 0; v < nv; v++ {
		if selected[v] {
			newIndex[v] = -1
		} else {
			newIndex[v] = int(vertOffsets[v])
		}
	}

	elemVerts := m.AskDown(dim, 0)
	nElems := m.Count(dim)
	ew := tables.VertsPerEnt(dim)

	var outElems []uint32
	keptElem := make([]bool, nElems)
	for e := 0; e < nElems; e++ {
		row := elemVerts[e*ew : e*ew+ew]
		mapped := make([]uint32, ew)
		degenerate := false
		for i, v := range row {
			s := v
			if selected[v] {
				s = survivorOf[v]
			}
			mapped[i] = uint32(newIndex[s])
		}
		for i := 0; i < ew && !degenerate; i++ {
			for j := i + 1; j < ew; j++ {
				if mapped[i] == mapped[j] {
					degenerate = true
					break
				}
			}
		}
		if degenerate {
			continue
		}
		keptElem[e] = true
		outElems = append(outElems, mapped...)
	}

	out, err := mesh.New(dim)
	if err != nil {
		return nil, err
	}
	if err := out.SetEnts(nKept, outElems); err != nil {
		return nil, err
	}
	if err := rebuildVertexTags(m, out, nv, vertOffsets); err != nil {
		return nil, err
	}
	droppedCounts := make([]uint32, nElems)
	for e, keep := range keptElem {
		if !keep {
			droppedCounts[e] = 1
		}
	}
	elemOffsets := arrays.NegateOffsets(arrays.Exscan(droppedCounts), nElems)
	if err := rebuildElementTags(m, out, dim, nElems, elemOffsets); err != nil {
		return nil, err
	}
	return out, nil
}

func rebuildVertexTags(m, out *mesh.Mesh, nv int, vertOffsets []uint32) error {
	for i := 0; i < m.CountTags(0); i++ {
		tag := m.GetTag(0, i)
		var err error
		switch tag.Kind {
		case mesh.F64:
			err = out.AddTagF64(0, tag.Name, tag.Ncomps, arrays.SubsetF64(tag.F64Data, nv, tag.Ncomps, vertOffsets))
		case mesh.U32:
			err = out.AddTagU32(0, tag.Name, tag.Ncomps, arrays.Subset(tag.U32Data, nv, tag.Ncomps, vertOffsets))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func rebuildElementTags(m, out *mesh.Mesh, dim, nElems int, elemOffsets []uint32) error {
	for i := 0; i < m.CountTags(dim); i++ {
		tag := m.GetTag(dim, i)
		var err error
		switch tag.Kind {
		case mesh.U32:
			err = out.AddTagU32(dim, tag.Name, tag.Ncomps, arrays.Subset(tag.U32Data, nElems, tag.Ncomps, elemOffsets))
		case mesh.F64:
			err = out.AddTagF64(dim, tag.Name, tag.Ncomps, arrays.SubsetF64(tag.F64Data, nElems, tag.Ncomps, elemOffsets))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
