package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/assay-engine/internal/assay"
)

var tpcCmd = &cobra.Command{
	Use:   "tpc",
	Short: "Compute total phenolic content (mg GAE/g sample)",
	Long: `Tpc computes the total phenolic content of an extract from a
Folin-Ciocalteu absorbance reading and a gallic-acid calibration curve.

The extract concentration follows the standard bench convention: mg of
extract, originally derived from 1 g of sample, dissolved per mL of
solvent. The result is reported in mg gallic-acid equivalents per g of
sample.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		return runEquivalents(cmd, "tpc", cfg.TPC.Unit, assay.TPC)
	},
}

func init() {
	addEquivalentsFlags(tpcCmd)
	rootCmd.AddCommand(tpcCmd)
}
