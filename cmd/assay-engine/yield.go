package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/assay-engine/internal/assay"
)

var yieldCmd = &cobra.Command{
	Use:   "yield",
	Short: "Compute extraction yield from extract and sample masses",
	Long: `Yield computes the extraction yield percentage:
(extract mass / sample mass) * 100. Values below 0% or above 100%
are reported as-is; they usually indicate a weighing problem.`,
	RunE: runYield,
}

func runYield(cmd *cobra.Command, args []string) error {
	massExtract, _ := cmd.Flags().GetFloat64("extract-mass")
	massSample, _ := cmd.Flags().GetFloat64("sample-mass")

	result, err := assay.ExtractionYield(massExtract, massSample)
	if err != nil {
		return err
	}
	return printResult(cmd, "extraction_yield", result, "%")
}

func init() {
	yieldCmd.Flags().Float64("extract-mass", 0, "mass of the dried extract (g)")
	yieldCmd.Flags().Float64("sample-mass", 0, "mass of the starting plant sample (g)")
	yieldCmd.Flags().Bool("json", false, "output result as JSON")
	yieldCmd.MarkFlagRequired("extract-mass")
	yieldCmd.MarkFlagRequired("sample-mass")

	rootCmd.AddCommand(yieldCmd)
}
