package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mopolino8/omega-h/quality"
)

func TestCanCollapse(t *testing.T) {
	// surviving vertex on a lower-dim feature than the removed vertex: OK.
	assert.True(t, quality.CanCollapse(1, 0, 2, 0))
	// same dim, same id: OK.
	assert.True(t, quality.CanCollapse(1, 5, 1, 5))
	// same dim, different id: forbidden (would jump model entities).
	assert.False(t, quality.CanCollapse(1, 5, 1, 6))
	// surviving vertex on a higher-dim feature: forbidden.
	assert.False(t, quality.CanCollapse(2, 0, 1, 0))
}

func TestSplitClassificationMinDimLowestIndexTie(t *testing.T) {
	dim, id := quality.SplitClassification(
		[]uint32{3, 1, 1, 2},
		[]uint32{9, 7, 8, 6},
	)
	assert.EqualValues(t, 1, dim)
	assert.EqualValues(t, 7, id) // first vertex attaining the minimum
}
