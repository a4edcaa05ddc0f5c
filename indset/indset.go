package indset

import (
	"errors"

	"github.com/Mopolino8/omega-h/internal/meshlog"
)

// ErrNoConvergence indicates the fixed-point relaxation did not settle
// within maxRounds. Spec §4.6 states this cannot happen on a finite
// graph under the tie-break rule; reaching it means a caller passed an
// inconsistent graph (e.g. goodness with exact duplicate values and a
// cyclic tie) or a bug in this package.
var ErrNoConvergence = errors.New("indset: did not converge within round cap")

const maxRounds = 100

type state uint8

const (
	notInSet state = iota
	inSet
	unknown
)

// Select returns a boolean mask of length n marking a maximal
// independent subset S of the CSR graph (offsets, adj) such that:
//
//   - filter[v] == false implies v is never in S;
//   - no two vertices of S are adjacent;
//   - every v in S beats every neighbour u that was still undecided
//     when v entered S (higher goodness wins, equal goodness the
//     lower index wins); neighbours already excluded are not compared.
//
// If the relaxation does not settle within 100 rounds (spec §4.6),
// Select reports it through meshlog.Fatal, which logs the violation
// and panics with its message; per the spec this is an invariant
// violation that cannot occur on a finite graph.
func Select(n int, offsets, adj []uint32, filter []bool, goodness []float64) []bool {
	cur := make([]state, n)
	for i := 0; i < n; i++ {
		if filter[i] {
			cur[i] = unknown
		} else {
			cur[i] = notInSet
		}
	}

	for round := 0; round < maxRounds; round++ {
		next := make([]state, n)
		copy(next, cur)
		anyUnknown := false
		for i := 0; i < n; i++ {
			if cur[i] != unknown {
				continue
			}
			next[i] = relax(i, offsets, adj, goodness, cur)
			if next[i] == unknown {
				anyUnknown = true
			}
		}
		cur = next
		if !anyUnknown {
			out := make([]bool, n)
			for i := 0; i < n; i++ {
				out[i] = cur[i] == inSet
			}
			return out
		}
	}

	meshlog.Fatal("indset: relaxation exceeded round cap", "max_rounds", maxRounds, "n", n)
	panic(ErrNoConvergence) // unreachable: meshlog.Fatal panics, kept for clarity at the call site
}

// relax computes vertex i's next state from the previous round's
// state of its neighbours, per spec §4.6's at_vert rule.
func relax(i int, offsets, adj []uint32, goodness []float64, prev []state) state {
	first, end := offsets[i], offsets[i+1]
	for j := first; j < end; j++ {
		if prev[adj[j]] == inSet {
			return notInSet
		}
	}
	myG := goodness[i]
	for j := first; j < end; j++ {
		u := adj[j]
		if prev[u] == notInSet {
			continue
		}
		og := goodness[u]
		if myG == og && int(u) < i {
			return unknown
		}
		if myG < og {
			return unknown
		}
	}
	return inSet
}
