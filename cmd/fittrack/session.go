// ABOUTME: CLI commands for the workout session lifecycle.
// ABOUTME: Start, finish, discard, and inspect the in-progress session.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/catalog"
	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/storage"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the in-progress workout session",
	Long: `Manage the in-progress workout session.

Only one session can be in progress at a time. Starting a session creates a
pending result for the workout and each of its exercises; finishing keeps
those results, discarding throws them away.

LIFECYCLE:

  fittrack session start <workout-id>   # Begin a workout
  fittrack session status               # Show the pending results
  fittrack session finish               # Keep the results
  fittrack session discard              # Throw the results away`,
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <workout-id>",
	Short: "Start a workout session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid workout id: %s", args[0])
		}

		rec, err := store.GetRecord(models.GroupCore, id)
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}
		workout, ok := rec.(*models.CoreRecord)
		if !ok || workout.Type != models.TypeWorkout {
			return fmt.Errorf("record %s is not a workout", args[0])
		}

		if err := store.BeginWorkout(workout); err != nil {
			if errors.Is(err, storage.ErrSessionAlreadyActive) {
				return fmt.Errorf("a session is already in progress; finish or discard it first")
			}
			return fmt.Errorf("failed to start session: %w", err)
		}

		fmt.Printf("Started workout %q with %d exercise(s)\n", workout.Name, len(workout.ExerciseIDs))
		return nil
	},
}

var sessionFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the session and keep its results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.KeepActiveRecords(); err != nil {
			return fmt.Errorf("failed to finish session: %w", err)
		}
		fmt.Println("Workout finished. Results kept.")
		return nil
	},
}

var sessionDiscardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Abandon the session, discarding its results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DiscardActiveRecords(); err != nil {
			return fmt.Errorf("failed to discard session: %w", err)
		}
		fmt.Println("Workout discarded. No results kept.")
		return nil
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the in-progress session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cores, err := store.GetActiveRecords()
		if err != nil {
			return fmt.Errorf("failed to get active records: %w", err)
		}
		if len(cores) == 0 {
			fmt.Println("No session in progress.")
			return nil
		}

		subs, err := store.GetActiveSubRecords()
		if err != nil {
			return fmt.Errorf("failed to get active results: %w", err)
		}

		faint := color.New(color.Faint)
		for _, c := range cores {
			if c.Type == models.TypeWorkout {
				fmt.Printf("Workout %q %s\n", c.Name, faint.Sprint(shortID(c.ID.String())))
			}
		}
		for _, s := range subs {
			if s.Type != models.TypeExercise {
				continue
			}
			fmt.Printf("  exercise %s: %d set(s) pending\n",
				faint.Sprint(shortID(s.CoreID.String())), len(s.ExerciseSets))
		}
		return nil
	},
}

var sessionRecordCmd = &cobra.Command{
	Use:   "record <exercise-id> <set>...",
	Short: "Record set values for an exercise in the session",
	Long: `Record set values against a pending exercise result.

Each positional argument is one set, written as comma-separated field=value
pairs. Field names match the exercise's declared inputs: reps, weightLbs,
distanceMiles, durationMinutes, watts, speedMph, resistance, incline,
calories.

EXAMPLES:

  fittrack session record <squat-id> reps=5,weightLbs=185 reps=5,weightLbs=185
  fittrack session record <treadmill-id> distanceMiles=3.1,durationMinutes=28`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		sets, err := parseSets(args[1:])
		if err != nil {
			return err
		}

		subs, err := store.GetActiveSubRecords()
		if err != nil {
			return fmt.Errorf("failed to get active results: %w", err)
		}
		var result *models.SubRecord
		for _, s := range subs {
			if s.Type == models.TypeExercise && s.CoreID == exerciseID {
				result = s
				break
			}
		}
		if result == nil {
			return fmt.Errorf("no pending result for exercise %s; is a session in progress?", args[0])
		}

		result.ExerciseSets = sets
		if err := store.PutRecord(models.GroupSub, models.TypeExercise, result); err != nil {
			return fmt.Errorf("failed to record sets: %w", err)
		}

		fmt.Printf("Recorded %d set(s)\n", len(sets))
		return nil
	},
}

func parseSets(args []string) ([]models.ExerciseSet, error) {
	sets := make([]models.ExerciseSet, 0, len(args))
	for _, arg := range args {
		var set models.ExerciseSet
		for _, pair := range strings.Split(arg, ",") {
			field, raw, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid set value %q (want field=value)", pair)
			}
			label, err := catalog.InputForField(models.Field(field))
			if err != nil {
				return nil, fmt.Errorf("unknown set field: %s", field)
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %s", field, raw)
			}
			set.SetValue(models.ExerciseInput(label), value)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func init() {
	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionFinishCmd)
	sessionCmd.AddCommand(sessionDiscardCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionRecordCmd)
	rootCmd.AddCommand(sessionCmd)
}
