// ABOUTME: CLI command rendering the dashboard.
// ABOUTME: One table per record type, active and favorited records first.
package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/catalog"
	"github.com/fittrack/fittrack/internal/models"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show enabled records with their previous results",
	Long: `Show every enabled record grouped by type.

Within each type, an active record sorts first, then favorited records, then
the rest by name. Each row includes the most recent result, so the dashboard
is the quickest way to see where you left off.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dashboard, err := store.GetDashboard()
		if err != nil {
			return fmt.Errorf("failed to build dashboard: %w", err)
		}

		for _, recordType := range catalog.DashboardTypes() {
			records := dashboard[recordType]
			label, err := catalog.LabelFor(models.GroupCore, recordType, catalog.Plural)
			if err != nil {
				return err
			}

			fmt.Println(label)
			if len(records) == 0 {
				fmt.Println("  (none)")
				continue
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Flags", "Previous"})
			for _, r := range records {
				t.AppendRow(table.Row{
					shortID(r.ID.String()),
					r.Name,
					coreFlags(r),
					formatPrevious(r),
				})
			}
			t.Render()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
