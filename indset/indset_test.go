package indset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mopolino8/omega-h/indset"
)

// path graph 0-1-2-3, uniform goodness, all filtered in.
func pathGraph() (offsets, adj []uint32) {
	offsets = []uint32{0, 1, 3, 5, 6}
	adj = []uint32{1, 0, 2, 1, 3, 2}
	return
}

func TestSelectDeterministicTieBreak(t *testing.T) {
	offsets, adj := pathGraph()
	filter := []bool{true, true, true, true}
	goodness := []float64{1, 1, 1, 1}

	got := indset.Select(4, offsets, adj, filter, goodness)
	require.Equal(t, []bool{true, false, true, false}, got)
}

func TestSelectRespectsFilter(t *testing.T) {
	offsets, adj := pathGraph()
	filter := []bool{false, true, true, true}
	goodness := []float64{1, 1, 1, 1}

	got := indset.Select(4, offsets, adj, filter, goodness)
	assert.False(t, got[0])
	// with vertex 0 filtered out, vertex 1 competes only with 2 and wins
	// the tie by lower index; 3 enters once 2 is excluded. No two
	// selected vertices may be adjacent in the graph.
	for i, v := range got {
		if v {
			for j := offsets[i]; j < offsets[i+1]; j++ {
				if got[adj[j]] {
					t.Fatalf("adjacent set entries %d and %d both true: %v", i, adj[j], got)
				}
			}
		}
	}
}

func TestSelectGoodnessWins(t *testing.T) {
	offsets, adj := pathGraph()
	filter := []bool{true, true, true, true}
	goodness := []float64{1, 9, 1, 1}

	got := indset.Select(4, offsets, adj, filter, goodness)
	assert.True(t, got[1]) // vertex 1 dominates both neighbours
	assert.False(t, got[0])
	assert.False(t, got[2])
}
