// Command meshadapt runs one adaptation to convergence against a
// built-in demo mesh and reports the resulting vertex/element counts.
// It exists to exercise internal/meshcfg, adapt.Run, and
// internal/meshlog end to end; a real deployment would swap the
// built-in mesh for a collab.MeshReader/MeshWriter pair.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Mopolino8/omega-h/adapt"
	"github.com/Mopolino8/omega-h/internal/meshcfg"
	"github.com/Mopolino8/omega-h/internal/meshlog"
	"github.com/Mopolino8/omega-h/internal/meshtest"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML adapt.Config (target_size, size_ratio_floor, good_quality, nsliver_layers, max_passes)")
	targetSize := flag.Float64("target-size", 0, "target edge length, used when -config is not given")
	gridN := flag.Int("n", 8, "grid resolution of the built-in demo mesh")
	jsonLog := flag.Bool("json", false, "emit JSON log lines instead of console output")
	verbose := flag.Bool("v", false, "log candidate rejections at debug level")
	flag.Parse()

	meshlog.SetOutput(os.Stderr, *jsonLog)
	if *verbose {
		meshlog.SetLevel(zerolog.DebugLevel)
	} else {
		meshlog.SetLevel(zerolog.InfoLevel)
	}

	var cfg adapt.Config
	var err error
	switch {
	case *configPath != "":
		cfg, err = meshcfg.Load(*configPath)
	case *targetSize > 0:
		cfg = adapt.DefaultConfig(*targetSize)
	default:
		err = fmt.Errorf("meshadapt: one of -config or -target-size is required")
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "meshadapt:", err)
		os.Exit(1)
	}

	m := meshtest.RightTriangulatedSquare(*gridN)
	meshlog.Pass("meshadapt: starting", "nverts", m.Count(0), "nelems", m.Count(2), "target_size", cfg.TargetSize)

	out, converged, err := adapt.Run(m, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "meshadapt:", err)
		os.Exit(1)
	}

	meshlog.Pass("meshadapt: finished", "converged", converged, "nverts", out.Count(0), "nelems", out.Count(2))
	if !converged {
		os.Exit(2)
	}
}
