package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// assayResult is the JSON shape emitted with --json.
type assayResult struct {
	Assay string  `json:"assay"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// printResult writes one computed value to stdout, either as plain text
// at the configured precision or as JSON when --json is set.
func printResult(cmd *cobra.Command, name string, value float64, unit string) error {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assayResult{Assay: name, Value: value, Unit: unit})
	}

	cfg := loadConfig()
	fmt.Printf("%.*f %s\n", cfg.Display.Precision, value, unit)
	return nil
}
