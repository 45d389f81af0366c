// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration structs shared between the CLI and
// the assay packages.
package types

// Default unit labels for the two equivalents-based assays. A curve in
// the curve library may carry its own label (e.g. catechin equivalents),
// which takes precedence.
const (
	DefaultTPCUnit = "mg GAE/g sample"
	DefaultTFCUnit = "mg QE/g sample"
)

// DefaultPrecision is the number of decimal places used when printing
// results, per the lab reporting convention.
const DefaultPrecision = 2

// DisplayConfig holds output formatting settings.
type DisplayConfig struct {
	// Precision is the number of decimal places for printed results (default 2).
	Precision int `json:"precision" yaml:"precision"`
}

// EquivalentsConfig holds settings for one equivalents-based assay (TPC or TFC).
type EquivalentsConfig struct {
	// Unit is the label appended to printed results
	// (e.g. "mg GAE/g sample").
	Unit string `json:"unit" yaml:"unit"`
}

// Config groups all settings for the assay CLI.
type Config struct {
	Display DisplayConfig `json:"display" yaml:"display"`

	// CurvesFile is the path to the YAML calibration-curve library
	// (default "curves.yaml").
	CurvesFile string `json:"curves_file" yaml:"curves_file"`

	TPC EquivalentsConfig `json:"tpc" yaml:"tpc"`
	TFC EquivalentsConfig `json:"tfc" yaml:"tfc"`
}

// WithDefaults returns a copy of c with zero-valued fields replaced by
// the documented defaults.
func (c Config) WithDefaults() Config {
	if c.Display.Precision <= 0 {
		c.Display.Precision = DefaultPrecision
	}
	if c.CurvesFile == "" {
		c.CurvesFile = "curves.yaml"
	}
	if c.TPC.Unit == "" {
		c.TPC.Unit = DefaultTPCUnit
	}
	if c.TFC.Unit == "" {
		c.TFC.Unit = DefaultTFCUnit
	}
	return c
}
