// ABOUTME: CLI commands for destructive maintenance and recovery.
// ABOUTME: Clearing record types, wiping the database, and snapshot repair.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear <target>",
	Short: "Delete stored data in bulk",
	Long: `Delete stored data in bulk. Requires --yes.

TARGETS:

  workout | exercise | measurement   Records of one type, definitions and results
  logs                               Every log entry
  settings                           Reset settings to defaults
  all                                Everything; settings are re-seeded

EXAMPLES:

  fittrack clear measurement --yes
  fittrack clear all --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return fmt.Errorf("refusing to delete without --yes")
		}

		target := args[0]
		switch {
		case models.IsValidRecordType(target):
			if err := store.ClearRecordsByType(models.RecordType(target)); err != nil {
				return fmt.Errorf("failed to clear %s records: %w", target, err)
			}
			color.Green("✓ Cleared %s records", target)
		case target == "logs":
			if err := store.ClearLogs(); err != nil {
				return fmt.Errorf("failed to clear logs: %w", err)
			}
			color.Green("✓ Cleared logs")
		case target == "settings":
			if err := store.ClearSettings(); err != nil {
				return fmt.Errorf("failed to reset settings: %w", err)
			}
			color.Green("✓ Settings reset to defaults")
		case target == "all":
			if err := store.ClearAll(); err != nil {
				return fmt.Errorf("failed to clear data: %w", err)
			}
			color.Green("✓ Cleared all data")
		default:
			return fmt.Errorf("unknown clear target: %s", target)
		}
		return nil
	},
}

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Rebuild every previous-result snapshot",
	Long: `Rebuild the previous-result snapshot on every definition from its
logged results. Normally the snapshots maintain themselves; repair exists
for recovery after a bad import or manual database surgery.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.UpdateAllPreviousData(); err != nil {
			return fmt.Errorf("repair failed: %w", err)
		}
		if _, err := store.AddLog(models.LevelInfo, "Previous snapshots rebuilt", nil); err != nil {
			return err
		}
		color.Green("✓ Previous snapshots rebuilt")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm the deletion")
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(repairCmd)
}
