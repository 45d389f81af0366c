// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the assay-engine CLI.
// See docs/ARCHITECTURE § Command Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/assay-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the assay-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "assay-engine",
	Short: "Phytochemistry assay calculator",
	Long: `assay-engine computes routine phytochemistry metrics from
spectrophotometric measurements: extraction yield, DPPH radical
scavenging, total phenolic content (TPC), and total flavonoid
content (TFC).

Each assay is a subcommand taking its measurements as flags, or run
"assay-engine shell" for an interactive session at the bench.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./assay-engine.yaml or ~/.config/assay-engine/config.yaml)")
	rootCmd.PersistentFlags().String("curves-file", "", "calibration-curve library (default: curves.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("assay-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "assay-engine"))
		}
	}

	viper.SetEnvPrefix("ASSAY_ENGINE")
	viper.AutomaticEnv()
	viper.BindPFlag("curves_file", rootCmd.PersistentFlags().Lookup("curves-file"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration from viper with
// defaults applied.
func loadConfig() types.Config {
	cfg := types.Config{
		Display: types.DisplayConfig{
			Precision: viper.GetInt("display.precision"),
		},
		CurvesFile: viper.GetString("curves_file"),
		TPC:        types.EquivalentsConfig{Unit: viper.GetString("tpc.unit")},
		TFC:        types.EquivalentsConfig{Unit: viper.GetString("tfc.unit")},
	}
	return cfg.WithDefaults()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
