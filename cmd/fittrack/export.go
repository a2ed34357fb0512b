// ABOUTME: CLI commands for exporting and importing records.
// ABOUTME: JSON backup files; import tolerates partially invalid data.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/storage"
)

// backup is the JSON document written by export and read by import.
type backup struct {
	CoreRecords []*models.CoreRecord `json:"coreRecords"`
	SubRecords  []*models.SubRecord  `json:"subRecords"`
	Settings    []models.Setting     `json:"settings,omitempty"`
}

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all records as JSON",
	Long: `Export every record and setting as a JSON backup.

Writes to stdout unless a file argument or --output is given.

EXAMPLES:

  fittrack export                  # Print JSON to stdout
  fittrack export backup.json      # Save to file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cores, err := store.GetAllCoreRecords()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		subs, err := store.GetAllSubRecords()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		settings, err := store.GetSettings()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		data, err := json.MarshalIndent(backup{
			CoreRecords: cores,
			SubRecords:  subs,
			Settings:    settings,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		out := exportOutput
		if out == "" && len(args) == 1 {
			out = args[0]
		}
		if out != "" {
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", out)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import records from a JSON backup",
	Long: `Import records from a previously exported JSON backup.

Valid records are imported even when others are invalid or already present;
the rejects are reported at the end. Settings in the backup are restored
key by key.

EXAMPLES:

  fittrack import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var b backup
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("invalid backup file: %w", err)
		}

		cores := make([]models.Record, len(b.CoreRecords))
		for i, r := range b.CoreRecords {
			cores[i] = r
		}
		subs := make([]models.Record, len(b.SubRecords))
		for i, r := range b.SubRecords {
			subs[i] = r
		}

		accepted := 0
		var rejected []string
		for _, batch := range []struct {
			group   models.RecordGroup
			records []models.Record
		}{
			{models.GroupCore, cores},
			{models.GroupSub, subs},
		} {
			if len(batch.records) == 0 {
				continue
			}
			err := store.ImportRecords(batch.group, batch.records)
			var partial *storage.PartialImportError
			switch {
			case errors.As(err, &partial):
				accepted += partial.Accepted
				for _, id := range partial.RejectedIDs {
					rejected = append(rejected, id.String())
				}
			case err != nil:
				return fmt.Errorf("import failed: %w", err)
			default:
				accepted += len(batch.records)
			}
		}

		for _, s := range b.Settings {
			if !models.IsValidSettingKey(string(s.Key)) {
				rejected = append(rejected, string(s.Key))
				continue
			}
			if err := store.SetSetting(s.Key, s.Value); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
		}

		color.Green("✓ Imported %d record(s)", accepted)
		if len(rejected) > 0 {
			color.Yellow("Skipped %d invalid or duplicate entr(ies):", len(rejected))
			for _, id := range rejected {
				fmt.Printf("  %s\n", id)
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
