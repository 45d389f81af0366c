package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/assay-engine/internal/assay"
)

// addEquivalentsFlags registers the flag set shared by tpc and tfc.
func addEquivalentsFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("absorbance", 0, "sample absorbance reading")
	cmd.Flags().Float64("slope", 0, "calibration-curve slope")
	cmd.Flags().Float64("intercept", 0, "calibration-curve intercept")
	cmd.Flags().String("curve", "", "named curve from the curve library (alternative to --slope/--intercept)")
	cmd.Flags().Float64("dilution", 1, "dilution factor applied before measurement")
	cmd.Flags().Float64("extract-conc", 0, "extract concentration (mg/mL, prepared from 1 g of sample)")
	cmd.Flags().Bool("json", false, "output result as JSON")
	cmd.MarkFlagRequired("absorbance")
	cmd.MarkFlagRequired("extract-conc")
}

// resolveCurve picks the calibration curve for a tpc/tfc invocation:
// --curve looks the name up in the curve library (and lets the entry
// override the unit label); otherwise --slope/--intercept are used
// directly.
func resolveCurve(cmd *cobra.Command, curvesFile, defaultUnit string) (assay.Curve, string, error) {
	name, _ := cmd.Flags().GetString("curve")
	if name != "" {
		cf, err := assay.ReadCurveFile(curvesFile)
		if err != nil {
			return assay.Curve{}, "", err
		}
		curve, entry, err := cf.Lookup(name)
		if err != nil {
			return assay.Curve{}, "", err
		}
		unit := defaultUnit
		if entry.Unit != "" {
			unit = entry.Unit
		}
		return curve, unit, nil
	}

	slope, _ := cmd.Flags().GetFloat64("slope")
	intercept, _ := cmd.Flags().GetFloat64("intercept")
	return assay.Curve{Slope: slope, Intercept: intercept}, defaultUnit, nil
}

// runEquivalents executes one equivalents-based assay (tpc or tfc).
func runEquivalents(cmd *cobra.Command, name, defaultUnit string,
	calc func(float64, assay.Curve, float64, float64) (float64, error)) error {

	cfg := loadConfig()
	curve, unit, err := resolveCurve(cmd, cfg.CurvesFile, defaultUnit)
	if err != nil {
		return err
	}

	absorbance, _ := cmd.Flags().GetFloat64("absorbance")
	dilution, _ := cmd.Flags().GetFloat64("dilution")
	extractConc, _ := cmd.Flags().GetFloat64("extract-conc")

	result, err := calc(absorbance, curve, dilution, extractConc)
	if err != nil {
		return err
	}
	return printResult(cmd, name, result, unit)
}
