// ABOUTME: CLI commands for creating core records.
// ABOUTME: Covers exercises, workouts, and measurements.
package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
)

var (
	addDesc         string
	addInputs       string
	addMultipleSets bool
	addExercises    string
	addMeasureInput string
	addFavorited    bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a workout, exercise, or measurement",
}

var addExerciseCmd = &cobra.Command{
	Use:   "exercise <name>",
	Short: "Create an exercise definition",
	Long: `Create an exercise definition.

INPUTS:

  Use --inputs with a comma-separated list of the values you want to track
  per set:

    Reps, Weight (lbs), Distance (miles), Duration (minutes), Watts,
    Speed (mph), Resistance, Incline, Calories Burned

  An exercise with no inputs is instructional-only (stretches, warm-ups).

EXAMPLES:

  fittrack add exercise "Goblet Squat" --inputs "Reps,Weight (lbs)" --sets
  fittrack add exercise "Rowing Machine" --inputs "Duration (minutes),Calories Burned"
  fittrack add exercise "Hip Flexor Stretch"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var inputs []models.ExerciseInput
		if addInputs != "" {
			for _, raw := range strings.Split(addInputs, ",") {
				raw = strings.TrimSpace(raw)
				if !models.IsValidExerciseInput(raw) {
					return fmt.Errorf("unknown exercise input: %s", raw)
				}
				inputs = append(inputs, models.ExerciseInput(raw))
			}
		}

		exercise := models.NewExercise(args[0], inputs).WithDesc(addDesc)
		exercise.MultipleSets = addMultipleSets
		exercise.Favorited = addFavorited

		if err := store.AddRecord(models.GroupCore, models.TypeExercise, exercise); err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		fmt.Printf("Created exercise %q (ID: %s)\n", exercise.Name, exercise.ID)
		return nil
	},
}

var addWorkoutCmd = &cobra.Command{
	Use:   "workout <name>",
	Short: "Create a workout definition",
	Long: `Create a workout definition from an ordered list of exercise ids.

The order of --exercises is the order the session walks through them.

EXAMPLES:

  fittrack add workout "Leg Day" --exercises id1,id2,id3
  fittrack add workout "Quick Cardio" --exercises id4 --desc "20 minutes max"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addExercises == "" {
			return fmt.Errorf("--exercises is required")
		}

		var ids []uuid.UUID
		for _, raw := range strings.Split(addExercises, ",") {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				return fmt.Errorf("invalid exercise id: %s", raw)
			}
			ids = append(ids, id)
		}

		workout := models.NewWorkout(args[0], ids).WithDesc(addDesc)
		workout.Favorited = addFavorited
		if err := store.AddRecord(models.GroupCore, models.TypeWorkout, workout); err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		fmt.Printf("Created workout %q with %d exercise(s) (ID: %s)\n", workout.Name, len(ids), workout.ID)
		return nil
	},
}

var addMeasurementCmd = &cobra.Command{
	Use:   "measurement <name>",
	Short: "Create a measurement definition",
	Long: `Create a measurement definition.

INPUT KINDS:

  Body Weight (lbs)   bounded to 1-1000
  Percentage          bounded to 0-100
  Inches              girth measurements
  Lbs                 non-bodyweight loads
  Number              anything else

EXAMPLES:

  fittrack add measurement "Neck" --input Inches
  fittrack add measurement "Resting Heart Rate" --input Number`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMeasurementInput(addMeasureInput) {
			return fmt.Errorf("unknown measurement input: %s", addMeasureInput)
		}

		measurement := models.NewMeasurement(args[0], models.MeasurementInput(addMeasureInput)).WithDesc(addDesc)
		measurement.Favorited = addFavorited

		if err := store.AddRecord(models.GroupCore, models.TypeMeasurement, measurement); err != nil {
			return fmt.Errorf("failed to create measurement: %w", err)
		}

		fmt.Printf("Created measurement %q (ID: %s)\n", measurement.Name, measurement.ID)
		return nil
	},
}

func init() {
	addCmd.PersistentFlags().StringVarP(&addDesc, "desc", "d", "", "description")
	addCmd.PersistentFlags().BoolVar(&addFavorited, "favorite", false, "mark as favorited")

	addExerciseCmd.Flags().StringVarP(&addInputs, "inputs", "i", "", "comma-separated exercise inputs")
	addExerciseCmd.Flags().BoolVar(&addMultipleSets, "sets", false, "performed in multiple sets")

	addWorkoutCmd.Flags().StringVarP(&addExercises, "exercises", "e", "", "comma-separated exercise ids (ordered)")

	addMeasurementCmd.Flags().StringVarP(&addMeasureInput, "input", "i", "", "measurement input kind")

	addCmd.AddCommand(addExerciseCmd)
	addCmd.AddCommand(addWorkoutCmd)
	addCmd.AddCommand(addMeasurementCmd)
	rootCmd.AddCommand(addCmd)
}
