// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "empty config gets all defaults",
			in:   Config{},
			want: Config{
				Display:    DisplayConfig{Precision: 2},
				CurvesFile: "curves.yaml",
				TPC:        EquivalentsConfig{Unit: DefaultTPCUnit},
				TFC:        EquivalentsConfig{Unit: DefaultTFCUnit},
			},
		},
		{
			name: "explicit values survive",
			in: Config{
				Display:    DisplayConfig{Precision: 4},
				CurvesFile: "lab/curves.yaml",
				TPC:        EquivalentsConfig{Unit: "mg CE/g sample"},
				TFC:        EquivalentsConfig{Unit: "mg RE/g sample"},
			},
			want: Config{
				Display:    DisplayConfig{Precision: 4},
				CurvesFile: "lab/curves.yaml",
				TPC:        EquivalentsConfig{Unit: "mg CE/g sample"},
				TFC:        EquivalentsConfig{Unit: "mg RE/g sample"},
			},
		},
		{
			name: "negative precision falls back to default",
			in:   Config{Display: DisplayConfig{Precision: -1}},
			want: Config{
				Display:    DisplayConfig{Precision: 2},
				CurvesFile: "curves.yaml",
				TPC:        EquivalentsConfig{Unit: DefaultTPCUnit},
				TFC:        EquivalentsConfig{Unit: DefaultTFCUnit},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.WithDefaults(); got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
