// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Handles store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/storage"
)

var (
	cfg     *config.Config
	store   *storage.Store
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Local-first fitness tracker",
	Long: `Fittrack is a CLI tool for tracking workouts, exercises, and body
measurements. All data lives in a local SQLite database.

RECORD MODEL:

  Core records   definitions: workouts, exercises, measurements
  Sub records    results logged against a core record

  Every core record carries a snapshot of its most recent result, so the
  dashboard always shows where you left off.

QUICK START:

  $ fittrack seed                          # Load preset catalogs
  $ fittrack dashboard                     # See what you can track
  $ fittrack session start <workout-id>    # Start a workout
  $ fittrack session finish                # Keep the results
  $ fittrack log <measurement-id> 82.5     # Log a measurement

CREATING YOUR OWN RECORDS:

  $ fittrack add exercise "Goblet Squat" --inputs "Reps,Weight (lbs)" --sets
  $ fittrack add workout "Leg Day" --exercises id1,id2,id3
  $ fittrack add measurement "Neck" --input Inches

DATA MANAGEMENT:

  $ fittrack list workout                  # List workout definitions
  $ fittrack list workout --results        # List workout results
  $ fittrack export records.json           # Export everything
  $ fittrack import records.json           # Import, skipping invalid records
  $ fittrack delete core <id>              # Delete a definition and its results

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  The database lives in the XDG data directory by default
  (~/.local/share/fittrack/fittrack.db). Override with --data-dir or the
  config file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "config" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		// Retention sweep runs on every startup; expired logs are an
		// accounting detail, so failures only get logged.
		if n, err := store.DeleteExpiredLogs(); err == nil && n > 0 {
			_, _ = store.AddLog(models.LevelInfo, "Expired logs deleted", map[string]any{"count": n})
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
}
