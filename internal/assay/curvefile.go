// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assay

import (
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"
)

// CurveFile is the on-disk library of named calibration curves. The
// technician records a standard series once (externally) and keys the
// resulting slope/intercept here instead of retyping them every run.
type CurveFile struct {
	Curves map[string]CurveEntry `yaml:"curves"`
}

// CurveEntry stores one calibration curve with its provenance and unit.
type CurveEntry struct {
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`

	// Standard names the reference compound the curve was prepared
	// against (e.g. "gallic acid").
	Standard string `yaml:"standard,omitempty"`

	// Unit overrides the configured unit label for results computed
	// with this curve (e.g. "mg CE/g sample" for a catechin curve).
	Unit string `yaml:"unit,omitempty"`
}

// ReadCurveFile loads a curve library from path.
func ReadCurveFile(path string) (*CurveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading curve file: %w", err)
	}
	var cf CurveFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing curve file %s: %w", path, err)
	}
	return &cf, nil
}

// Lookup returns the named curve. Names are exact, case-sensitive keys.
// A stored curve with a zero slope is rejected here rather than at
// calculation time so the user learns which library entry is broken.
func (cf *CurveFile) Lookup(name string) (Curve, CurveEntry, error) {
	entry, ok := cf.Curves[name]
	if !ok {
		return Curve{}, CurveEntry{}, fmt.Errorf("curve %q not found (have: %v)", name, cf.Names())
	}
	if entry.Slope == 0 {
		return Curve{}, CurveEntry{}, fmt.Errorf("curve %q has a zero slope", name)
	}
	return Curve{Slope: entry.Slope, Intercept: entry.Intercept}, entry, nil
}

// Names returns the curve names in sorted order.
func (cf *CurveFile) Names() []string {
	names := make([]string, 0, len(cf.Curves))
	for name := range cf.Curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// starterCurves seeds a new library with the two reference standards
// every phytochemistry bench uses. The slopes are placeholders the
// technician replaces with values from their own standard series.
var starterCurves = CurveFile{
	Curves: map[string]CurveEntry{
		"gallic-acid": {
			Slope:     0.0052,
			Intercept: 0.0310,
			Standard:  "gallic acid",
			Unit:      "mg GAE/g sample",
		},
		"quercetin": {
			Slope:     0.0048,
			Intercept: 0.0270,
			Standard:  "quercetin",
			Unit:      "mg QE/g sample",
		},
	},
}

// WriteStarterFile creates a template curve library at path. It refuses
// to overwrite an existing file: a populated library holds hand-entered
// standards that must not be clobbered.
func WriteStarterFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("curve file %s already exists", path)
	}

	data, err := yaml.Marshal(&starterCurves)
	if err != nil {
		return fmt.Errorf("marshaling starter curves: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
