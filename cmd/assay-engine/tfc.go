package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/assay-engine/internal/assay"
)

var tfcCmd = &cobra.Command{
	Use:   "tfc",
	Short: "Compute total flavonoid content (mg QE/g sample)",
	Long: `Tfc computes the total flavonoid content of an extract from an
aluminum-chloride assay absorbance reading and a quercetin (or catechin)
calibration curve. The arithmetic is identical to tpc; only the reagent
standard and the reported unit differ.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		return runEquivalents(cmd, "tfc", cfg.TFC.Unit, assay.TFC)
	},
}

func init() {
	addEquivalentsFlags(tfcCmd)
	rootCmd.AddCommand(tfcCmd)
}
