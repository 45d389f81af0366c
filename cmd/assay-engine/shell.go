package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/assay-engine/internal/assay"
	"github.com/pdiddy/assay-engine/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive assay session",
	Long: `Shell starts an interactive session: pick an assay from a menu,
type the measurements at the prompts, and read the result. Invalid
numbers re-prompt, and a failed calculation (zero sample mass, zero
control absorbance, zero slope or concentration) reports an error and
returns to the menu instead of exiting.

If the curve library is present, tpc and tfc calculations can pick a
calibration curve by name.`,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	opts := shell.Options{
		Precision: cfg.Display.Precision,
		TPCUnit:   cfg.TPC.Unit,
		TFCUnit:   cfg.TFC.Unit,
	}

	// A missing or unreadable curve library is not an error here; the
	// session falls back to prompting for slope and intercept.
	if cf, err := assay.ReadCurveFile(cfg.CurvesFile); err == nil {
		opts.Curves = cf
	}

	return shell.New(os.Stdin, os.Stdout, opts).Run()
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
