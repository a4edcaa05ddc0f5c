package adapt

import (
	"github.com/Mopolino8/omega-h/coarsen"
	"github.com/Mopolino8/omega-h/internal/meshlog"
	"github.com/Mopolino8/omega-h/mesh"
	"github.com/Mopolino8/omega-h/refine"
	"github.com/Mopolino8/omega-h/swap"
)

// Run repeats refine, coarsen, then swap passes against m until a
// full iteration changes nothing or cfg.MaxPasses is reached. It
// returns the final mesh and whether the loop converged (stopped
// because nothing changed, rather than hitting the pass ceiling).
func Run(m *mesh.Mesh, cfg Config) (*mesh.Mesh, bool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	floor := cfg.SizeRatioFloor * cfg.TargetSize

	cur := m
	for pass := 0; pass < cfg.MaxPasses; pass++ {
		changed := false

		if next, did, err := refinePass(cur, cfg); err != nil {
			return nil, false, err
		} else if did {
			cur = next
			changed = true
		}

		if next, did, err := coarsenPass(cur, floor, cfg); err != nil {
			return nil, false, err
		} else if did {
			cur = next
			changed = true
		}

		if next, did, err := swapPass(cur, cfg); err != nil {
			return nil, false, err
		} else if did {
			cur = next
			changed = true
		}

		meshlog.Pass("adapt: pass complete", "pass", pass, "changed", changed,
			"nverts", cur.Count(0), "nelems", cur.Count(cur.Dim()))

		if !changed {
			return cur, true, nil
		}
	}
	return cur, false, nil
}

func refinePass(m *mesh.Mesh, cfg Config) (*mesh.Mesh, bool, error) {
	marked, lengths, err := refine.Candidates(m, cfg.TargetSize)
	if err != nil {
		return nil, false, err
	}
	selected := refine.Select(m, marked, lengths, cfg.GoodQuality)
	if !anyTrue(selected) {
		return m, false, nil
	}
	out, err := refine.Apply(m, selected)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func coarsenPass(m *mesh.Mesh, floor float64, cfg Config) (*mesh.Mesh, bool, error) {
	plans, err := coarsen.Candidates(m, floor, cfg.GoodQuality)
	if err != nil {
		return nil, false, err
	}
	selected := coarsen.Select(m, plans)
	if !anyTrue(selected) {
		return m, false, nil
	}
	out, err := coarsen.Apply(m, plans, selected)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func swapPass(m *mesh.Mesh, cfg Config) (*mesh.Mesh, bool, error) {
	marked, goodness, cavities, err := swap.Candidates(m, cfg.GoodQuality, cfg.NsliverLayers)
	if err != nil {
		return nil, false, err
	}
	selected := swap.Select(m, marked, goodness)
	if !anyTrue(selected) {
		return m, false, nil
	}
	out, err := swap.Apply(m, selected, cavities)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func anyTrue(bs []bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}
	return false
}
