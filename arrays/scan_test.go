package arrays_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mopolino8/omega-h/arrays"
)

func TestExscanUnscanRoundTrip(t *testing.T) {
	a := []uint32{2, 0, 3, 1}
	b := arrays.Exscan(a)
	require.Equal(t, []uint32{0, 2, 2, 5, 6}, b)

	back := arrays.Unscan(b, len(a))
	assert.Equal(t, a, back)
}

func TestNegateOffsets(t *testing.T) {
	// select indices 1 and 3 (step 1), others step 0
	gen := []uint32{0, 0, 1, 1, 2}
	neg := arrays.NegateOffsets(gen, 4)
	// complementary selection keeps indices 0 and 2
	require.Equal(t, []uint32{0, 1, 1, 2, 2}, neg)
}

func TestLinear(t *testing.T) {
	assert.Equal(t, []uint32{0, 1, 2, 3}, arrays.Linear(3))
}

func TestMaxSum(t *testing.T) {
	a := []uint32{4, 1, 9, 2}
	assert.EqualValues(t, 9, arrays.Max(a))
	assert.EqualValues(t, 16, arrays.Sum(a))
	assert.EqualValues(t, 0, arrays.Max(nil))
}
