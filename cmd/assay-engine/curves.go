package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/assay-engine/internal/assay"
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Manage the calibration-curve library",
	Long: `Curves manages the YAML library of named calibration curves.
Each entry stores the slope and intercept of a standard series measured
externally, plus the standard compound and unit label. The library is
input shorthand for tpc/tfc; assay-engine never fits curves itself.`,
}

// --- list subcommand ---

var curvesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the curves in the library",
	RunE:  runCurvesList,
}

func runCurvesList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cf, err := assay.ReadCurveFile(cfg.CurvesFile)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cf.Curves)
	}

	if len(cf.Curves) == 0 {
		fmt.Println("No curves defined.")
		return nil
	}

	fmt.Printf("%-16s  %-10s  %-10s  %-14s  %s\n",
		"Name", "Slope", "Intercept", "Standard", "Unit")
	fmt.Println(strings.Repeat("-", 70))
	for _, name := range cf.Names() {
		entry := cf.Curves[name]
		fmt.Printf("%-16s  %-10g  %-10g  %-14s  %s\n",
			name, entry.Slope, entry.Intercept, entry.Standard, entry.Unit)
	}
	return nil
}

// --- init subcommand ---

var curvesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter curve library",
	Long: `Init writes a template curve library with gallic-acid and
quercetin entries. The slopes and intercepts are placeholders: replace
them with values from your own standard series. An existing library is
never overwritten.`,
	RunE: runCurvesInit,
}

func runCurvesInit(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if err := assay.WriteStarterFile(cfg.CurvesFile); err != nil {
		return err
	}
	fmt.Printf("Wrote starter curve library to %s\n", cfg.CurvesFile)
	return nil
}

func init() {
	curvesListCmd.Flags().Bool("json", false, "output curves as JSON")

	curvesCmd.AddCommand(curvesListCmd)
	curvesCmd.AddCommand(curvesInitCmd)
	rootCmd.AddCommand(curvesCmd)
}
