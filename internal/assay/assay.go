// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assay implements the four phytochemistry formulas: extraction
// yield, DPPH radical scavenging, total phenolic content (TPC), and total
// flavonoid content (TFC). Every function is pure and stateless: it
// validates its inputs, computes a closed-form result, and returns. The
// package never logs or touches I/O; callers own presentation.
//
// See docs/ARCHITECTURE § Formula Library.
package assay

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error taxonomy for the formula
// library. Every validation failure wraps it, so callers distinguish
// domain errors from anything else with one errors.Is check.
var ErrInvalidArgument = errors.New("invalid argument")

// Curve is a linear absorbance-to-concentration calibration:
// concentration (mg/mL) = (absorbance - Intercept) / Slope.
// Slope and Intercept come from an external standard series; this
// package never fits them.
type Curve struct {
	Slope     float64
	Intercept float64
}

// ExtractionYield returns the extraction yield percentage,
// (massExtract / massSample) * 100, both masses in grams.
//
// The result is not clamped: negative or >100% values are returned
// as-is, since they indicate a weighing problem the analyst must judge.
func ExtractionYield(massExtract, massSample float64) (float64, error) {
	if massSample == 0 {
		return 0, fmt.Errorf("%w: sample mass must be non-zero", ErrInvalidArgument)
	}
	return massExtract / massSample * 100, nil
}

// DPPHScavenging returns the DPPH radical-scavenging percentage,
// ((aControl - aSample) / aControl) * 100, from the control and sample
// absorbance readings.
//
// A sample absorbance above the control yields a negative percentage
// (pro-oxidant or measurement-error behavior); it is returned unclamped.
func DPPHScavenging(aControl, aSample float64) (float64, error) {
	if aControl == 0 {
		return 0, fmt.Errorf("%w: control absorbance must be non-zero", ErrInvalidArgument)
	}
	return (aControl - aSample) / aControl * 100, nil
}

// TPC returns the total phenolic content in mg gallic-acid equivalents
// per g of sample.
//
// extractConc is the extract concentration in mg/mL under the standard
// convention: mg of extract originally derived from 1 g of sample,
// dissolved per mL of solvent. That 1-g convention is what lets the
// final step convert mg equivalents per mg extract into mg equivalents
// per g sample with a single *1000.
func TPC(absorbance float64, curve Curve, dilutionFactor, extractConc float64) (float64, error) {
	return equivalentsPerGram(absorbance, curve, dilutionFactor, extractConc)
}

// TFC returns the total flavonoid content in mg quercetin equivalents
// per g of sample. The arithmetic is identical to TPC; only the reagent
// standard (and therefore the unit label) differs. extractConc follows
// the same 1-g convention documented on TPC.
func TFC(absorbance float64, curve Curve, dilutionFactor, extractConc float64) (float64, error) {
	return equivalentsPerGram(absorbance, curve, dilutionFactor, extractConc)
}

// equivalentsPerGram is the shared calibration-curve pipeline behind TPC
// and TFC. Keeping one routine guarantees the two assays cannot drift
// apart.
//
// Steps: absorbance → concentration via the curve, correct for dilution,
// normalize per mg of extract, then scale to per g of sample.
func equivalentsPerGram(absorbance float64, curve Curve, dilutionFactor, extractConc float64) (float64, error) {
	if curve.Slope == 0 {
		return 0, fmt.Errorf("%w: calibration slope must be non-zero", ErrInvalidArgument)
	}
	if extractConc == 0 {
		return 0, fmt.Errorf("%w: extract concentration must be non-zero", ErrInvalidArgument)
	}

	conc := (absorbance - curve.Intercept) / curve.Slope // mg/mL
	conc *= dilutionFactor
	perMgExtract := conc / extractConc
	return perMgExtract * 1000, nil // 1000 mg extract per g sample
}
