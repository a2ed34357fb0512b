// ABOUTME: CLI command for logging a measurement result.
// ABOUTME: Resolves the measurement's input kind to the right value field.
package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
)

var logNote string

var logCmd = &cobra.Command{
	Use:   "log <measurement-id> <value>",
	Short: "Log a measurement result",
	Long: `Log a measurement result against a measurement definition.

The value is stored in the field matching the measurement's input kind, so
a Body Weight measurement gets a bodyweight value, a Percentage measurement
gets a percent value, and so on.

EXAMPLES:

  fittrack log 43e3fc4e-b419-468c-9888-b5e072d81dfb 182.4
  fittrack log <waist-id> 34.5 --note "post-holiday"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		coreID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid measurement id: %s", args[0])
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		rec, err := store.GetRecord(models.GroupCore, coreID)
		if err != nil {
			return fmt.Errorf("measurement not found: %s", args[0])
		}
		core, ok := rec.(*models.CoreRecord)
		if !ok || core.Type != models.TypeMeasurement {
			return fmt.Errorf("record %s is not a measurement", args[0])
		}

		result := models.NewSubRecord(models.TypeMeasurement, core.ID).WithNote(logNote)
		switch core.MeasurementInput {
		case models.InputBodyWeight:
			result.BodyWeight = &value
		case models.InputPercent:
			result.Percent = &value
		case models.InputInches:
			result.Inches = &value
		case models.InputLbs:
			result.Lbs = &value
		case models.InputNumber:
			result.Number = &value
		}

		if err := store.AddRecord(models.GroupSub, models.TypeMeasurement, result); err != nil {
			return fmt.Errorf("failed to log measurement: %w", err)
		}

		fmt.Printf("Logged %s: %.2f\n", core.Name, value)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logNote, "note", "", "optional note")
	rootCmd.AddCommand(logCmd)
}
