package swap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mopolino8/omega-h/mesh"
	"github.com/Mopolino8/omega-h/swap"
)

// a trapezoid A(0,0) B(4,0) C(3,2) D(0,2), initially split along the
// worse diagonal B-D so the only legal 2D swap strictly improves the
// cavity's worst quality.
func trapezoidSplitOnWorseDiagonal(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetEnts(4, []uint32{0, 1, 3, 2, 3, 1}))
	coords := []float64{
		0, 0, 0,
		4, 0, 0,
		3, 2, 0,
		0, 2, 0,
	}
	require.NoError(t, m.AddTagF64(0, "coordinates", 3, coords))
	return m
}

func TestCandidatesMarksImprovingFlip(t *testing.T) {
	m := trapezoidSplitOnWorseDiagonal(t)
	marked, goodness, cavities, err := swap.Candidates(m, 0.0, 4)
	require.NoError(t, err)

	nMarked := 0
	for e, v := range marked {
		if v {
			nMarked++
			require.NotNil(t, cavities[e])
			require.Greater(t, goodness[e], 0.0)
		}
	}
	require.Equal(t, 1, nMarked, "only the shared diagonal edge is swappable")
}

// edgeWheelRingFour builds four tets sharing a central edge (a,b)
// along the z-axis, fanned around four ring vertices at 0, 1, 180,
// 270 degrees. The 0-1 degree and 1-180 degree wedges are both
// razor-thin, so two of the original tets are slivers. Every fan of
// the four apexes keeps one thin tet over the close pair p0,p1, but
// the best fan's worst tet is still less degenerate than the worst
// original tet — a ring of size 4, one step past the classic 3-to-2
// flip.
func edgeWheelRingFour(t *testing.T) (*mesh.Mesh, uint32) {
	t.Helper()
	m, err := mesh.New(3)
	require.NoError(t, err)
	// vertices: 0=a, 1=b, 2=p0(0 deg), 3=p1(1 deg), 4=p2(180 deg), 5=p3(270 deg)
	require.NoError(t, m.SetEnts(6, []uint32{
		0, 1, 2, 3,
		0, 1, 3, 4,
		0, 1, 4, 5,
		0, 1, 5, 2,
	}))
	const deg1 = 0.017453293
	coords := []float64{
		0, 0, 1, // a
		0, 0, -1, // b
		1, 0, 0, // p0
		math.Cos(deg1), math.Sin(deg1), 0, // p1
		-1, 0, 0, // p2
		0, -1, 0, // p3
	}
	require.NoError(t, m.AddTagF64(0, "coordinates", 3, coords))

	edgeVerts := m.AskDown(1, 0)
	for e := 0; e < m.Count(1); e++ {
		va, vb := edgeVerts[e*2], edgeVerts[e*2+1]
		if (va == 0 && vb == 1) || (va == 1 && vb == 0) {
			return m, uint32(e)
		}
	}
	t.Fatal("central edge (a,b) not found")
	return nil, 0
}

func TestCandidatesHandlesRingSizeFour(t *testing.T) {
	m, edge := edgeWheelRingFour(t)
	marked, goodness, cavities, err := swap.Candidates(m, 0.0, 4)
	require.NoError(t, err)

	require.NotNil(t, cavities[edge], "a ring of 4 tets must produce a retriangulation cavity")
	require.True(t, marked[edge], "the best fan's worst tet beats the worst original tet")
	require.Greater(t, goodness[edge], 0.0)
}

func TestApplyRetriangulatesRingSizeFour(t *testing.T) {
	m, edge := edgeWheelRingFour(t)
	marked, goodness, cavities, err := swap.Candidates(m, 0.0, 4)
	require.NoError(t, err)

	selected := swap.Select(m, marked, goodness)
	require.True(t, selected[edge])
	out, err := swap.Apply(m, selected, cavities)
	require.NoError(t, err)

	require.Equal(t, 6, out.Count(0))
	require.Equal(t, 4, out.Count(3))
	edgeVerts := out.AskDown(1, 0)
	for e := 0; e < out.Count(1); e++ {
		va, vb := edgeVerts[e*2], edgeVerts[e*2+1]
		require.False(t, (va == 0 && vb == 1) || (va == 1 && vb == 0), "the central edge must be gone after the flip")
	}
}

func TestApplyFlipsTheDiagonal(t *testing.T) {
	m := trapezoidSplitOnWorseDiagonal(t)
	marked, goodness, cavities, err := swap.Candidates(m, 0.0, 4)
	require.NoError(t, err)

	selected := swap.Select(m, marked, goodness)
	out, err := swap.Apply(m, selected, cavities)
	require.NoError(t, err)

	require.Equal(t, 4, out.Count(0))
	require.Equal(t, 2, out.Count(2))
	// the new diagonal connects vertices 0 and 2 (A-C), not 1 and 3.
	edges := out.AskDown(1, 0)
	found02 := false
	for e := 0; e < out.Count(1); e++ {
		a, b := edges[e*2], edges[e*2+1]
		if (a == 0 && b == 2) || (a == 2 && b == 0) {
			found02 = true
		}
	}
	require.True(t, found02)
}
