package arrays_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mopolino8/omega-h/arrays"
)

func TestExpandSubsetRoundTrip(t *testing.T) {
	a := []uint32{10, 20, 30}
	offsets := []uint32{0, 1, 1, 2} // row1 dropped, rows0 and 2 kept 1:1
	expanded := arrays.Expand(a, 3, 1, offsets)
	require.Equal(t, []uint32{10, 30}, expanded)

	// Subset with the same step-by-1 offsets is the identity on those rows.
	wide := []uint32{10, 20, 30}
	sub := arrays.Subset(wide, 3, 1, offsets)
	assert.Equal(t, []uint32{10, 30}, sub)
}

func TestExpandWidth(t *testing.T) {
	a := []uint32{1, 2, 3, 4} // 2 rows, width 2
	offsets := []uint32{0, 2, 3}
	out := arrays.Expand(a, 2, 2, offsets)
	require.Equal(t, []uint32{1, 2, 1, 2, 3, 4}, out)
}

func TestShuffleUnshuffle(t *testing.T) {
	a := []uint32{1, 2, 3}
	outOfIn := []uint32{2, 0, 1}
	shuffled := arrays.Shuffle(a, 3, 1, outOfIn)
	require.Equal(t, []uint32{2, 3, 1}, shuffled)

	back := arrays.Unshuffle(shuffled, 3, 1, outOfIn)
	assert.Equal(t, a, back)
}
