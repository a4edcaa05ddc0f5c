package coarsen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mopolino8/omega-h/coarsen"
	"github.com/Mopolino8/omega-h/mesh"
)

// a single thin triangle where edge (0,2) is far shorter than the
// other two, and every vertex shares the same trivial classification
// so the collapse-direction rule never blocks a candidate.
func thinTriangle(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetEnts(3, []uint32{0, 1, 2}))
	coords := []float64{
		0, 0, 0,
		1, 0, 0,
		0, 0.01, 0,
	}
	require.NoError(t, m.AddTagF64(0, "coordinates", 3, coords))
	require.NoError(t, m.AddTagU32(0, "class_dim", 1, []uint32{2, 2, 2}))
	require.NoError(t, m.AddTagU32(0, "class_id", 1, []uint32{0, 0, 0}))
	return m
}

func TestCandidatesOnlyShortEdge(t *testing.T) {
	m := thinTriangle(t)
	plans, err := coarsen.Candidates(m, 0.1, 0.0)
	require.NoError(t, err)
	require.Len(t, plans, 3)

	require.EqualValues(t, 2, plans[0].Survivor)
	require.EqualValues(t, 0, plans[2].Survivor)
}

func TestSelectAndApplyCollapsesTheSliver(t *testing.T) {
	m := thinTriangle(t)
	plans, err := coarsen.Candidates(m, 0.1, 0.0)
	require.NoError(t, err)

	selected := coarsen.Select(m, plans)
	nSel := 0
	for _, s := range selected {
		if s {
			nSel++
		}
	}
	require.Equal(t, 1, nSel, "vertices 0 and 2 are mutually adjacent, only one may collapse")
	require.True(t, selected[0], "lower index wins an exact quality tie")

	out, err := coarsen.Apply(m, plans, selected)
	require.NoError(t, err)
	require.Equal(t, 2, out.Count(0))
	require.Equal(t, 0, out.Count(2), "the sole triangle straddled the collapsed edge and must be dropped")
}
