package refine

import (
	"errors"
	"math"

	"github.com/Mopolino8/omega-h/arrays"
	"github.com/Mopolino8/omega-h/indset"
	"github.com/Mopolino8/omega-h/internal/meshlog"
	"github.com/Mopolino8/omega-h/mesh"
	"github.com/Mopolino8/omega-h/quality"
	"github.com/Mopolino8/omega-h/tables"
)

// ErrMissingCoordinates is returned when the mesh carries no
// "coordinates" vertex tag; refine needs edge lengths, which need
// vertex positions.
var ErrMissingCoordinates = errors.New("refine: mesh has no \"coordinates\" vertex tag")

const coordsTag = "coordinates"

// Candidates marks every edge whose length exceeds targetSize (spec
// §4.7's refine trigger: length/target > 1), and returns per-edge
// lengths alongside the mask for use as the independent set's
// goodness function (longer edges are split first).
func Candidates(m *mesh.Mesh, targetSize float64) (marked []bool, lengths []float64, err error) {
	coords, cerr := m.FindTag(0, coordsTag)
	if cerr != nil {
		return nil, nil, ErrMissingCoordinates
	}
	edgeVerts := m.AskDown(1, 0)
	n := m.Count(1)
	marked = make([]bool, n)
	lengths = make([]float64, n)
	for e := 0; e < n; e++ {
		a, b := edgeVerts[e*2], edgeVerts[e*2+1]
		lengths[e] = dist(coords.F64Data, int(a), int(b))
		marked[e] = lengths[e] > targetSize
	}
	return marked, lengths, nil
}

func dist(coords []float64, a, b int) float64 {
	var sum float64
	for k := 0; k < 3; k++ {
		d := coords[a*3+k] - coords[b*3+k]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Select narrows candidates down to the non-conflicting subset that
// will actually be split: a candidate is rejected outright if either
// child element it would produce scores below goodQuality, and the
// survivors are resolved into an independent set over the "these two
// edges share an element" graph.
func Select(m *mesh.Mesh, marked []bool, lengths []float64, goodQuality float64) []bool {
	coords, err := m.FindTag(0, coordsTag)
	if err != nil {
		panic(ErrMissingCoordinates)
	}
	n := m.Count(1)
	filtered := make([]bool, n)
	copy(filtered, marked)

	dim := m.Dim()
	edgeVerts := m.AskDown(1, 0)
	up := m.AskUp(1, dim)
	elemVerts := m.AskDown(dim, 0)
	ew := tables.VertsPerEnt(dim)

	for e := 0; e < n; e++ {
		if !filtered[e] {
			continue
		}
		a, b := edgeVerts[e*2], edgeVerts[e*2+1]
		mid := midpoint(coords.F64Data, int(a), int(b))
		ok := true
		for j := up.Offsets[e]; j < up.Offsets[e+1] && ok; j++ {
			elem := up.Adj[j]
			row := elemVerts[int(elem)*ew : int(elem)*ew+ew]
			for _, endpoint := range [2]uint32{a, b} {
				childCoords := childElementCoords(coords.F64Data, row, dim, endpoint, mid)
				if quality.Element(dim, childCoords) < goodQuality {
					ok = false
					break
				}
			}
		}
		if !ok {
			meshlog.Reject("refine: candidate rejected on child quality", "edge", e, "good_quality", goodQuality)
			filtered[e] = false
		}
	}

	star := m.AskStar(1, dim)
	selected := indset.Select(n, star.Offsets, star.Adj, filtered, lengths)
	return selected
}

func midpoint(coords []float64, a, b int) [3]float64 {
	var mid [3]float64
	for k := 0; k < 3; k++ {
		mid[k] = 0.5 * (coords[a*3+k] + coords[b*3+k])
	}
	return mid
}

// childElementCoords builds the coordinate list of the element that
// results from replacing `endpoint` with `mid` in `row`.
func childElementCoords(coords []float64, row []uint32, dim int, endpoint uint32, mid [3]float64) [][3]float64 {
	out := make([][3]float64, len(row))
	for i, v := range row {
		if v == endpoint {
			out[i] = mid
		} else {
			out[i] = [3]float64{coords[int(v)*3], coords[int(v)*3+1], coords[int(v)*3+2]}
		}
	}
	return out
}

// Apply rebuilds the mesh with one new midpoint vertex per selected
// edge and every touched element bisected around it. Elements that
// touch no selected edge pass through with their vertex ids and
// element tags unchanged.
func Apply(m *mesh.Mesh, selected []bool) (*mesh.Mesh, error) {
	dim := m.Dim()
	nOldVerts := m.Count(0)
	edgeVerts := m.AskDown(1, 0)
	nEdges := m.Count(1)

	selCounts := make([]uint32, nEdges)
	for e := 0; e < nEdges; e++ {
		if selected[e] {
			selCounts[e] = 1
		}
	}
	newVertOffsets := arrays.Exscan(selCounts)
	nNew := int(newVertOffsets[nEdges])
	newVertOf := make([]int, nEdges)
	for e := 0; e < nEdges; e++ {
		if selected[e] {
			newVertOf[e] = nOldVerts + int(newVertOffsets[e])
		} else {
			newVertOf[e] = -1
		}
	}

	elemVerts := m.AskDown(dim, 0)
	nElems := m.Count(dim)
	ew := tables.VertsPerEnt(dim)
	elemEdges := m.AskDown(dim, 1)
	localPairs := tables.AllSubs(dim, 1)
	eew := len(localPairs)

	var outElems []uint32
	for e := 0; e < nElems; e++ {
		row := elemVerts[e*ew : e*ew+ew]
		splitSlot := -1
		var splitEdge uint32
		for s := 0; s < eew; s++ {
			ge := elemEdges[e*eew+s]
			if selected[ge] {
				splitSlot = s
				splitEdge = ge
				break
			}
		}
		if splitSlot == -1 {
			outElems = append(outElems, row...)
			continue
		}
		la, lb := localPairs[splitSlot][0], localPairs[splitSlot][1]
		newV := uint32(newVertOf[splitEdge])
		child1 := append([]uint32(nil), row...)
		child1[la] = newV
		child2 := append([]uint32(nil), row...)
		child2[lb] = newV
		outElems = append(outElems, child1...)
		outElems = append(outElems, child2...)
	}

	out, err := mesh.New(dim)
	if err != nil {
		return nil, err
	}
	if err := out.SetEnts(nOldVerts+nNew, outElems); err != nil {
		return nil, err
	}

	if err := rebuildVertexTags(m, out, selected, newVertOf, edgeVerts, nOldVerts); err != nil {
		return nil, err
	}
	if err := rebuildElementTags(m, out, dim, elemEdges, selected, eew); err != nil {
		return nil, err
	}
	return out, nil
}

func rebuildVertexTags(m, out *mesh.Mesh, selected []bool, newVertOf []int, edgeVerts []uint32, nOldVerts int) error {
	nEdges := len(selected)
	for i := 0; i < m.CountTags(0); i++ {
		tag := m.GetTag(0, i)
		switch tag.Kind {
		case mesh.F64:
			data := make([]float64, (nOldVerts+countTrue(selected))*tag.Ncomps)
			copy(data, tag.F64Data)
			for e := 0; e < nEdges; e++ {
				if !selected[e] {
					continue
				}
				a, b := edgeVerts[e*2], edgeVerts[e*2+1]
				nv := newVertOf[e]
				for c := 0; c < tag.Ncomps; c++ {
					data[nv*tag.Ncomps+c] = 0.5 * (tag.F64Data[int(a)*tag.Ncomps+c] + tag.F64Data[int(b)*tag.Ncomps+c])
				}
			}
			if err := out.AddTagF64(0, tag.Name, tag.Ncomps, data); err != nil {
				return err
			}
		case mesh.U32:
			data := make([]uint32, (nOldVerts+countTrue(selected))*tag.Ncomps)
			copy(data, tag.U32Data)
			if tag.Name == "class_dim" || tag.Name == "class_id" {
				continue // handled jointly below
			}
			for e := 0; e < nEdges; e++ {
				if !selected[e] {
					continue
				}
				a := edgeVerts[e*2]
				nv := newVertOf[e]
				copy(data[nv*tag.Ncomps:nv*tag.Ncomps+tag.Ncomps], tag.U32Data[int(a)*tag.Ncomps:int(a)*tag.Ncomps+tag.Ncomps])
			}
			if err := out.AddTagU32(0, tag.Name, tag.Ncomps, data); err != nil {
				return err
			}
		}
	}
	return rebuildClassification(m, out, selected, newVertOf, edgeVerts, nOldVerts)
}

// rebuildClassification special-cases the (class_dim, class_id) pair
// of tags, if present: a new midpoint vertex is classified on the
// lowest-dimension geometric model entity of its two parents, per
// spec §4.1's split-classification rule (quality.SplitClassification).
func rebuildClassification(m, out *mesh.Mesh, selected []bool, newVertOf []int, edgeVerts []uint32, nOldVerts int) error {
	classDim, errA := m.FindTag(0, "class_dim")
	classID, errB := m.FindTag(0, "class_id")
	if errA != nil || errB != nil {
		return nil
	}
	total := nOldVerts + countTrue(selected)
	outDim := make([]uint32, total)
	outID := make([]uint32, total)
	copy(outDim, classDim.U32Data)
	copy(outID, classID.U32Data)
	for e, nv := range newVertOf {
		if nv < 0 {
			continue
		}
		a, b := edgeVerts[e*2], edgeVerts[e*2+1]
		d, id := quality.SplitClassification(
			[]uint32{classDim.U32Data[a], classDim.U32Data[b]},
			[]uint32{classID.U32Data[a], classID.U32Data[b]},
		)
		outDim[nv] = d
		outID[nv] = id
	}
	if err := out.AddTagU32(0, "class_dim", 1, outDim); err != nil {
		return err
	}
	return out.AddTagU32(0, "class_id", 1, outID)
}

func rebuildElementTags(m, out *mesh.Mesh, dim int, elemEdges []uint32, selected []bool, eew int) error {
	nElems := m.Count(dim)
	reps := make([]uint32, nElems)
	for e := 0; e < nElems; e++ {
		reps[e] = 1
		for s := 0; s < eew; s++ {
			if selected[elemEdges[e*eew+s]] {
				reps[e] = 2
				break
			}
		}
	}
	offsets := arrays.Exscan(reps)

	for i := 0; i < m.CountTags(dim); i++ {
		tag := m.GetTag(dim, i)
		var err error
		switch tag.Kind {
		case mesh.U32:
			err = out.AddTagU32(dim, tag.Name, tag.Ncomps, arrays.Expand(tag.U32Data, nElems, tag.Ncomps, offsets))
		case mesh.F64:
			err = out.AddTagF64(dim, tag.Name, tag.Ncomps, arrays.ExpandF64(tag.F64Data, nElems, tag.Ncomps, offsets))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
