// Package meshcfg loads an adapt.Config from a YAML file, the way the
// lvlath teacher repo's examples load run configuration: a thin
// struct tagged for the marshaller, with defaults filled in for
// omitted fields after parse, then validated.
package meshcfg

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Mopolino8/omega-h/adapt"
)

// File is the on-disk shape of an adaptation config. Every field
// except target_size is optional and falls back to
// adapt.DefaultConfig's value; target_size has no default, so a file
// that omits it fails validation.
type File struct {
	TargetSize     float64  `yaml:"target_size"`
	SizeRatioFloor *float64 `yaml:"size_ratio_floor"`
	GoodQuality    *float64 `yaml:"good_quality"`
	NsliverLayers  *uint8   `yaml:"nsliver_layers"`
	MaxPasses      *int     `yaml:"max_passes"`
}

// Load reads and parses path into an adapt.Config, applying defaults
// for any field the file omits, then validates the result.
func Load(path string) (adapt.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return adapt.Config{}, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return adapt.Config{}, err
	}
	cfg := adapt.DefaultConfig(f.TargetSize)
	if f.SizeRatioFloor != nil {
		cfg.SizeRatioFloor = *f.SizeRatioFloor
	}
	if f.GoodQuality != nil {
		cfg.GoodQuality = *f.GoodQuality
	}
	if f.NsliverLayers != nil {
		cfg.NsliverLayers = *f.NsliverLayers
	}
	if f.MaxPasses != nil {
		cfg.MaxPasses = *f.MaxPasses
	}
	if err := cfg.Validate(); err != nil {
		return adapt.Config{}, err
	}
	return cfg, nil
}
