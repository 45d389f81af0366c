// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assay

import (
	"errors"
	"testing"
)

// --- ExtractionYield ---

func TestExtractionYield(t *testing.T) {
	tests := []struct {
		name        string
		massExtract float64
		massSample  float64
		want        float64
	}{
		{"typical extraction", 1.5, 8, 18.75},
		{"full recovery", 5, 5, 100},
		{"zero extract is zero yield", 0, 5, 0},
		{"over 100 percent passes through", 10, 8, 125},
		{"negative extract passes through", -1, 4, -25},
		{"fractional masses", 0.375, 1.5, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractionYield(tt.massExtract, tt.massSample)
			if err != nil {
				t.Fatalf("ExtractionYield() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractionYield() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractionYieldZeroSampleMass(t *testing.T) {
	for _, massExtract := range []float64{0, 1.5, -3} {
		_, err := ExtractionYield(massExtract, 0)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ExtractionYield(%v, 0) error = %v, want ErrInvalidArgument", massExtract, err)
		}
	}
}

// --- DPPHScavenging ---

func TestDPPHScavenging(t *testing.T) {
	tests := []struct {
		name     string
		aControl float64
		aSample  float64
		want     float64
	}{
		{"typical scavenging", 0.5, 0.125, 75},
		{"sample equals control", 0.65, 0.65, 0},
		{"complete scavenging", 0.9, 0, 100},
		{"pro-oxidant goes negative", 0.5, 0.75, -50},
		{"negative control reading", -0.5, -0.125, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DPPHScavenging(tt.aControl, tt.aSample)
			if err != nil {
				t.Fatalf("DPPHScavenging() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DPPHScavenging() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDPPHScavengingZeroControl(t *testing.T) {
	for _, aSample := range []float64{0, 0.3, -0.3} {
		_, err := DPPHScavenging(0, aSample)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("DPPHScavenging(0, %v) error = %v, want ErrInvalidArgument", aSample, err)
		}
	}
}

// --- TPC / TFC ---

func TestTPCReferenceScenario(t *testing.T) {
	// (0.5 - 0.02) / 0.01 = 48 mg/mL; *10 dilution = 480;
	// / 10 mg/mL extract = 48 mg GAE per mg extract; *1000 = 48000.
	got, err := TPC(0.5, Curve{Slope: 0.01, Intercept: 0.02}, 10, 10)
	if err != nil {
		t.Fatalf("TPC() error = %v", err)
	}
	if got != 48000.0 {
		t.Errorf("TPC() = %v, want 48000.0", got)
	}
}

func TestTPCUndiluted(t *testing.T) {
	got, err := TPC(0.5, Curve{Slope: 0.01, Intercept: 0.02}, 1, 10)
	if err != nil {
		t.Fatalf("TPC() error = %v", err)
	}
	if got != 4800.0 {
		t.Errorf("TPC() = %v, want 4800.0", got)
	}
}

func TestTPCValidation(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		conc  float64
	}{
		{"zero slope", Curve{Slope: 0, Intercept: 0.02}, 10},
		{"zero concentration", Curve{Slope: 0.01, Intercept: 0.02}, 0},
		{"both zero", Curve{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TPC(0.5, tt.curve, 10, tt.conc)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("TPC() error = %v, want ErrInvalidArgument", err)
			}
			_, err = TFC(0.5, tt.curve, 10, tt.conc)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("TFC() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

// TFC is the same pipeline as TPC down to the bit: only the reagent
// standard behind the curve differs.
func TestTFCMatchesTPC(t *testing.T) {
	cases := []struct {
		absorbance float64
		curve      Curve
		dilution   float64
		conc       float64
	}{
		{0.5, Curve{Slope: 0.01, Intercept: 0.02}, 10, 10},
		{0.273, Curve{Slope: 0.0048, Intercept: 0.027}, 5, 2},
		{-0.1, Curve{Slope: 0.003, Intercept: 0.04}, 1, 8},
	}
	for _, c := range cases {
		tpc, err := TPC(c.absorbance, c.curve, c.dilution, c.conc)
		if err != nil {
			t.Fatalf("TPC() error = %v", err)
		}
		tfc, err := TFC(c.absorbance, c.curve, c.dilution, c.conc)
		if err != nil {
			t.Fatalf("TFC() error = %v", err)
		}
		if tpc != tfc {
			t.Errorf("TPC = %v, TFC = %v; want identical results", tpc, tfc)
		}
	}
}

// Every formula is a pure function: the same inputs produce bit-identical
// outputs on every call.
func TestFormulasAreDeterministic(t *testing.T) {
	y1, _ := ExtractionYield(1.7, 8.3)
	y2, _ := ExtractionYield(1.7, 8.3)
	if y1 != y2 {
		t.Errorf("ExtractionYield not deterministic: %v != %v", y1, y2)
	}

	d1, _ := DPPHScavenging(0.81, 0.33)
	d2, _ := DPPHScavenging(0.81, 0.33)
	if d1 != d2 {
		t.Errorf("DPPHScavenging not deterministic: %v != %v", d1, d2)
	}

	curve := Curve{Slope: 0.0052, Intercept: 0.031}
	p1, _ := TPC(0.444, curve, 2, 4)
	p2, _ := TPC(0.444, curve, 2, 4)
	if p1 != p2 {
		t.Errorf("TPC not deterministic: %v != %v", p1, p2)
	}
}
