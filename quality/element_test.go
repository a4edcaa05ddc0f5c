package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mopolino8/omega-h/quality"
	"github.com/Mopolino8/omega-h/tables"
)

func TestElementRegularSimplicesScoreOne(t *testing.T) {
	for _, d := range []int{2, 3} {
		coords := tables.RegularCoords(d)
		q := quality.Element(d, coords)
		assert.InDelta(t, 1.0, q, 1e-9, "dim=%d", d)
	}
}

func TestElementEdgeAlwaysOne(t *testing.T) {
	coords := [][3]float64{{0, 0, 0}, {5, 0, 0}}
	assert.Equal(t, 1.0, quality.Element(1, coords))
}

func TestElementDegenerateTriangleScoresZero(t *testing.T) {
	// Three collinear points: zero area.
	coords := [][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	assert.Equal(t, 0.0, quality.Element(2, coords))
}

func TestElementSliverTetScoresLow(t *testing.T) {
	// A very flat tet: three base points plus an apex nearly in-plane.
	coords := [][3]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0.3, 0.3, 1e-4},
	}
	q := quality.Element(3, coords)
	assert.Less(t, q, 0.05)
}

func TestElementNonRegularTriangleBelowOne(t *testing.T) {
	coords := [][3]float64{{0, 0, 0}, {2, 0, 0}, {0.1, 0.2, 0}}
	q := quality.Element(2, coords)
	assert.Greater(t, q, 0.0)
	assert.Less(t, q, 1.0)
}
