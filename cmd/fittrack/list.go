// ABOUTME: CLI commands for listing records.
// ABOUTME: Renders core definitions and sub results as tables.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
)

var listResults bool

var listCmd = &cobra.Command{
	Use:     "list <type>",
	Aliases: []string{"ls", "l"},
	Short:   "List records by type",
	Long: `List records of one type.

Core records (definitions) sort by name; pass --results to list sub records
(logged results) instead, newest first.

EXAMPLES:

  fittrack list workout                # Workout definitions
  fittrack list exercise               # Exercise definitions
  fittrack list measurement --results  # Logged measurements`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidRecordType(args[0]) {
			return fmt.Errorf("unknown record type: %s", args[0])
		}
		recordType := models.RecordType(args[0])

		if listResults {
			return listSubRecords(cmd, recordType)
		}
		return listCoreRecords(cmd, recordType)
	},
}

func listCoreRecords(cmd *cobra.Command, recordType models.RecordType) error {
	records, err := store.GetCoreRecords(recordType)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No records found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Flags", "Detail", "Previous"})

	for _, r := range records {
		t.AppendRow(table.Row{
			shortID(r.ID.String()),
			r.Name,
			coreFlags(r),
			coreDetail(r),
			formatPrevious(r),
		})
	}
	t.Render()
	return nil
}

func listSubRecords(cmd *cobra.Command, recordType models.RecordType) error {
	records, err := store.GetSubRecords(recordType)
	if err != nil {
		return fmt.Errorf("failed to list results: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	faint := color.New(color.Faint)
	for _, r := range records {
		note := ""
		if r.Note != "" {
			note = faint.Sprintf(" (%s)", truncate(r.Note, 40))
		}
		fmt.Printf("%s %s %s %s%s\n",
			faint.Sprint(shortID(r.ID.String())),
			faint.Sprint(formatMillis(r.CreatedTimestamp)),
			padRight(shortID(r.CoreID.String()), 10),
			subSummary(r),
			note)
	}
	return nil
}

func coreFlags(r *models.CoreRecord) string {
	var flags []string
	if r.Active {
		flags = append(flags, "active")
	}
	if r.Favorited {
		flags = append(flags, "fav")
	}
	if !r.Enabled {
		flags = append(flags, "disabled")
	}
	return strings.Join(flags, ",")
}

func coreDetail(r *models.CoreRecord) string {
	switch r.Type {
	case models.TypeWorkout:
		return fmt.Sprintf("%d exercise(s)", len(r.ExerciseIDs))
	case models.TypeExercise:
		if len(r.ExerciseInputs) == 0 {
			return "instructional"
		}
		inputs := make([]string, len(r.ExerciseInputs))
		for i, in := range r.ExerciseInputs {
			inputs[i] = string(in)
		}
		return strings.Join(inputs, ", ")
	case models.TypeMeasurement:
		return string(r.MeasurementInput)
	}
	return ""
}

func formatPrevious(r *models.CoreRecord) string {
	p := r.Previous
	if p == nil {
		return ""
	}
	when := formatMillis(p.CreatedTimestamp)
	switch {
	case p.WorkoutDuration != "":
		return fmt.Sprintf("%s (%s)", p.WorkoutDuration, when)
	case len(p.ExerciseSets) > 0:
		return fmt.Sprintf("%d set(s) (%s)", len(p.ExerciseSets), when)
	case p.BodyWeight != nil:
		return fmt.Sprintf("%.1f lbs (%s)", *p.BodyWeight, when)
	case p.Percent != nil:
		return fmt.Sprintf("%.1f%% (%s)", *p.Percent, when)
	case p.Inches != nil:
		return fmt.Sprintf("%.1f in (%s)", *p.Inches, when)
	case p.Lbs != nil:
		return fmt.Sprintf("%.1f lbs (%s)", *p.Lbs, when)
	case p.Number != nil:
		return fmt.Sprintf("%.1f (%s)", *p.Number, when)
	}
	return when
}

func subSummary(r *models.SubRecord) string {
	switch r.Type {
	case models.TypeWorkout:
		if r.FinishedTimestamp != nil {
			return "duration " + models.FormatDuration(*r.FinishedTimestamp-r.CreatedTimestamp)
		}
		return "in progress"
	case models.TypeExercise:
		return fmt.Sprintf("%d set(s)", len(r.ExerciseSets))
	case models.TypeMeasurement:
		if _, v := r.MeasurementValue(); v != nil {
			return fmt.Sprintf("%.2f", *v)
		}
	}
	return ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().BoolVarP(&listResults, "results", "r", false, "list logged results instead of definitions")
	rootCmd.AddCommand(listCmd)
}
