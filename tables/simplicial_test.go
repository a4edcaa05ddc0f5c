package tables_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mopolino8/omega-h/tables"
)

func TestVertsAndSubsPerEnt(t *testing.T) {
	assert.Equal(t, 2, tables.VertsPerEnt(1))
	assert.Equal(t, 3, tables.VertsPerEnt(2))
	assert.Equal(t, 4, tables.VertsPerEnt(3))

	assert.Equal(t, 3, tables.SubsPerEnt(2, 0)) // triangle vertices
	assert.Equal(t, 3, tables.SubsPerEnt(2, 1)) // triangle edges
	assert.Equal(t, 4, tables.SubsPerEnt(3, 0)) // tet vertices
	assert.Equal(t, 6, tables.SubsPerEnt(3, 1)) // tet edges
	assert.Equal(t, 4, tables.SubsPerEnt(3, 2)) // tet faces
}

func TestCanonicalOrderTetEdges(t *testing.T) {
	// lexicographic 2-combinations of {0,1,2,3}
	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for i, w := range want {
		got0 := tables.CanonicalOrder(3, 1, i, 0)
		got1 := tables.CanonicalOrder(3, 1, i, 1)
		require.Equal(t, w[0], got0, "edge %d vertex 0", i)
		require.Equal(t, w[1], got1, "edge %d vertex 1", i)
	}
}

func TestOppositeTriangle(t *testing.T) {
	// face i of a triangle excludes exactly one vertex; Opposite(2,i)
	// must not appear among CanonicalOrder(2,1,i,*).
	for i := 0; i < 3; i++ {
		opp := tables.Opposite(2, i)
		for k := 0; k < 2; k++ {
			assert.NotEqual(t, opp, tables.CanonicalOrder(2, 1, i, k))
		}
	}
}

func TestRegularCoordsUnitEdges(t *testing.T) {
	for _, d := range []int{1, 2, 3} {
		coords := tables.RegularCoords(d)
		for i := 0; i < len(coords); i++ {
			for j := i + 1; j < len(coords); j++ {
				dist := dist3(coords[i], coords[j])
				assert.InDelta(t, 1.0, dist, 1e-9, "d=%d edge (%d,%d)", d, i, j)
			}
		}
	}
}

func dist3(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
