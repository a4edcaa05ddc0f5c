package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mopolino8/omega-h/mesh"
)

// unitSquare builds the two-triangle unit square used throughout
// spec §8's scenarios: vertices (0,0) (1,0) (1,1) (0,1), split along
// the (0,2) diagonal.
func unitSquare(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetEnts(4, []uint32{0, 1, 2, 0, 2, 3}))
	return m
}

func TestDeriveEdgesFromUnitSquare(t *testing.T) {
	m := unitSquare(t)
	require.Equal(t, 5, m.Count(1))
	edges := m.AskDown(1, 0)
	require.Equal(t, []uint32{0, 1, 0, 2, 0, 3, 1, 2, 2, 3}, edges)
}

func TestTriangleToEdgeLocalIndices(t *testing.T) {
	m := unitSquare(t)
	down := m.AskDown(2, 1)
	require.Equal(t, []uint32{0, 1, 3, 1, 2, 4}, down)
}

func TestVertexUpToTriangles(t *testing.T) {
	m := unitSquare(t)
	up := m.AskUp(0, 2)
	// vertex 0 is in both triangles, vertex 2 is in both, 1 and 3 in one each.
	require.EqualValues(t, []uint32{0, 2, 3, 5, 6}, up.Offsets)
	require.ElementsMatch(t, []uint32{0, 1}, up.Adj[up.Offsets[0]:up.Offsets[1]])
	require.ElementsMatch(t, []uint32{0}, up.Adj[up.Offsets[1]:up.Offsets[2]])
	require.ElementsMatch(t, []uint32{0, 1}, up.Adj[up.Offsets[2]:up.Offsets[3]])
	require.ElementsMatch(t, []uint32{1}, up.Adj[up.Offsets[3]:up.Offsets[4]])
}

func TestVertexStarViaTriangles(t *testing.T) {
	m := unitSquare(t)
	star := m.AskStar(0, 2)
	deg := func(v int) int { return int(star.Offsets[v+1] - star.Offsets[v]) }
	require.Equal(t, 3, deg(0))
	require.Equal(t, 2, deg(1))
	require.Equal(t, 3, deg(2))
	require.Equal(t, 2, deg(3))
}

func TestTriangleDualAcrossDiagonal(t *testing.T) {
	m := unitSquare(t)
	dual := m.AskDual()
	// triangle 0's facets are its edges in canonical order: (0,1) (0,2) (1,2).
	// the (0,2) facet is shared with triangle 1.
	require.Equal(t, mesh.NoEntity, dual[0*3+0])
	require.EqualValues(t, 1, dual[0*3+1])
	require.Equal(t, mesh.NoEntity, dual[0*3+2])
	require.EqualValues(t, 0, dual[1*3+0])
}

// unitTet builds a single regular-shaped tetrahedron, dimension 3.
func unitTet(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(3)
	require.NoError(t, err)
	require.NoError(t, m.SetEnts(4, []uint32{0, 1, 2, 3}))
	return m
}

func TestTetDerivesSixEdgesAndFourFaces(t *testing.T) {
	m := unitTet(t)
	require.Equal(t, 6, m.Count(1))
	require.Equal(t, 4, m.Count(2))
}

func TestTetAllFacesAreBoundary(t *testing.T) {
	m := unitTet(t)
	dual := m.AskDual()
	for _, d := range dual {
		require.Equal(t, mesh.NoEntity, d)
	}
}

func TestAskDualFatalsOnNonManifoldFacet(t *testing.T) {
	m, err := mesh.New(2)
	require.NoError(t, err)
	// three triangles all sharing the edge (0,2): not manifold.
	require.NoError(t, m.SetEnts(5, []uint32{0, 1, 2, 0, 2, 3, 0, 2, 4}))
	require.Panics(t, func() { m.AskDual() })
}

func TestTetElementToEdgeLocalIndices(t *testing.T) {
	m := unitTet(t)
	down := m.AskDown(3, 1)
	require.Len(t, down, 6)
	seen := make(map[uint32]bool)
	for _, e := range down {
		seen[e] = true
	}
	require.Len(t, seen, 6) // a single tet uses each of the 6 edges exactly once
}

func TestTagsRoundTrip(t *testing.T) {
	m := unitSquare(t)
	coords := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	require.NoError(t, m.AddTagF64(0, "coordinates", 2, coords))
	require.Equal(t, 1, m.CountTags(0))

	tag, err := m.FindTag(0, "coordinates")
	require.NoError(t, err)
	require.Equal(t, mesh.F64, tag.Kind)
	require.Equal(t, coords, tag.F64Data)

	require.ErrorIs(t, m.RemoveTag(0, "missing"), mesh.ErrTagNotFound)
	require.NoError(t, m.RemoveTag(0, "coordinates"))
	require.Equal(t, 0, m.CountTags(0))
}
