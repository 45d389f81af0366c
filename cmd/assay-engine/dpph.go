package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/assay-engine/internal/assay"
)

var dpphCmd = &cobra.Command{
	Use:   "dpph",
	Short: "Compute DPPH radical-scavenging percentage",
	Long: `Dpph computes the DPPH radical-scavenging percentage from the
control and sample absorbance readings:
((control - sample) / control) * 100.

A sample absorbance above the control produces a negative percentage
(pro-oxidant behavior or a measurement error); it is reported as-is.`,
	RunE: runDPPH,
}

func runDPPH(cmd *cobra.Command, args []string) error {
	aControl, _ := cmd.Flags().GetFloat64("control")
	aSample, _ := cmd.Flags().GetFloat64("sample")

	result, err := assay.DPPHScavenging(aControl, aSample)
	if err != nil {
		return err
	}
	return printResult(cmd, "dpph_scavenging", result, "%")
}

func init() {
	dpphCmd.Flags().Float64("control", 0, "control absorbance reading")
	dpphCmd.Flags().Float64("sample", 0, "sample absorbance reading")
	dpphCmd.Flags().Bool("json", false, "output result as JSON")
	dpphCmd.MarkFlagRequired("control")
	dpphCmd.MarkFlagRequired("sample")

	rootCmd.AddCommand(dpphCmd)
}
