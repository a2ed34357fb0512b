// ABOUTME: CLI command loading the preset catalogs.
// ABOUTME: Safe to rerun; existing presets are left alone.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load preset exercises, workouts, and measurements",
	Long: `Load the preset catalogs: a barbell strength program, a cardio mix,
and common body measurements.

Presets have fixed ids, so rerunning seed never duplicates them and never
overwrites your edits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := seed.Load(store); err != nil {
			return fmt.Errorf("failed to load presets: %w", err)
		}
		color.Green("✓ Presets loaded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
