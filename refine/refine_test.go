package refine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mopolino8/omega-h/mesh"
	"github.com/Mopolino8/omega-h/refine"
)

// a single skinny triangle with two long edges sharing the only
// element, so the independent set must pick exactly one.
func skinnyTriangle(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetEnts(3, []uint32{0, 1, 2}))
	coords := []float64{
		0, 0, 0,
		3, 0, 0,
		0, 1, 0,
	}
	require.NoError(t, m.AddTagF64(0, "coordinates", 3, coords))
	return m
}

func TestCandidatesMarksLongEdgesOnly(t *testing.T) {
	m := skinnyTriangle(t)
	marked, lengths, err := refine.Candidates(m, 1.5)
	require.NoError(t, err)
	require.Len(t, marked, 3)

	nMarked := 0
	for i, v := range marked {
		if v {
			nMarked++
			require.Greater(t, lengths[i], 1.5)
		}
	}
	require.Equal(t, 2, nMarked) // only the two edges longer than 1.5
}

func TestSelectPicksOneEdgePerElement(t *testing.T) {
	m := skinnyTriangle(t)
	marked, lengths, err := refine.Candidates(m, 1.5)
	require.NoError(t, err)

	selected := refine.Select(m, marked, lengths, 0.0)
	n := 0
	for _, v := range selected {
		if v {
			n++
		}
	}
	require.Equal(t, 1, n, "both candidates share the only triangle, at most one may be selected")
}

func TestApplyBisectsSelectedEdge(t *testing.T) {
	m := skinnyTriangle(t)
	marked, lengths, err := refine.Candidates(m, 1.5)
	require.NoError(t, err)
	selected := refine.Select(m, marked, lengths, 0.0)

	out, err := refine.Apply(m, selected)
	require.NoError(t, err)
	require.Equal(t, 4, out.Count(0))
	require.Equal(t, 2, out.Count(2))

	coords, err := out.FindTag(0, "coordinates")
	require.NoError(t, err)
	require.Len(t, coords.F64Data, 4*3)
}
