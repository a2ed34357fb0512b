// ABOUTME: CLI command for deleting records.
// ABOUTME: Deleting a core record cascades to its results.
package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/storage"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <group> <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a record by group and id",
	Long: `Delete one record.

The group is "core" (definitions) or "sub" (results). Deleting a core record
also deletes every result logged against it. Deleting a sub record refreshes
the owning definition's previous-result snapshot.

EXAMPLES:

  fittrack delete core 50c1fc75-0975-45f8-8177-ff4988b00de2
  fittrack delete sub <result-id>`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidRecordGroup(args[0]) {
			return fmt.Errorf("unknown record group: %s", args[0])
		}
		id, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid record id: %s", args[1])
		}

		deleted, err := store.DeleteRecord(models.RecordGroup(args[0]), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("record not found: %s", args[1])
			}
			return fmt.Errorf("failed to delete record: %w", err)
		}

		if core, ok := deleted.(*models.CoreRecord); ok {
			fmt.Printf("Deleted %s %q and its results\n", core.Type, core.Name)
		} else {
			fmt.Printf("Deleted result %s\n", shortID(id.String()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
