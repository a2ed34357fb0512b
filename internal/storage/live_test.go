// ABOUTME: Tests for live queries and the dashboard partitioning.
// ABOUTME: Uses short timeouts; emissions may coalesce but never reorder.
package storage

import (
	"context"
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/models"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("channel closed unexpectedly")
		}
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for emission")
	}
	panic("unreachable")
}

func TestLiveCoreRecordsEmitsInitialAndChanges(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := store.LiveCoreRecords(ctx, models.TypeExercise)

	initial := receive(t, ch)
	if len(initial) != 0 {
		t.Fatalf("expected empty initial emission, got %d", len(initial))
	}

	addExercise(t, store, "Squat")

	next := receive(t, ch)
	if len(next) != 1 || next[0].Name != "Squat" {
		t.Errorf("expected the new exercise, got %+v", next)
	}
}

func TestLiveQueryClosesOnCancel(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	ch := store.LiveSettings(ctx)
	receive(t, ch)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A buffered emission may race the cancel; the next read must
			// observe the close.
			if _, ok := <-ch; ok {
				t.Error("channel still open after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Error("channel not closed after cancel")
	}
}

func TestLiveSubRecordsExcludesActive(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	squat := addExercise(t, store, "Squat", models.InputReps)
	workout := addWorkout(t, store, "Strength A", squat.ID)

	ch := store.LiveSubRecords(ctx, models.TypeExercise)
	initial := receive(t, ch)
	if len(initial) != 0 {
		t.Fatalf("expected empty initial emission, got %d", len(initial))
	}

	// An in-progress session creates active placeholders; the feed must not
	// surface them, so commit and expect exactly one emission with the result.
	if err := store.BeginWorkout(workout); err != nil {
		t.Fatalf("BeginWorkout failed: %v", err)
	}
	if err := store.KeepActiveRecords(); err != nil {
		t.Fatalf("KeepActiveRecords failed: %v", err)
	}

	next := receive(t, ch)
	if len(next) != 1 {
		t.Fatalf("expected 1 result, got %d", len(next))
	}
	if next[0].Active {
		t.Error("emitted result still flagged active")
	}
}

func TestGetDashboardPartitioning(t *testing.T) {
	store := setupTestStore(t)

	plain := addExercise(t, store, "Curl")
	fav := models.NewExercise("Bench Press", nil)
	fav.Favorited = true
	if err := store.AddRecord(models.GroupCore, models.TypeExercise, fav); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}
	disabled := models.NewExercise("Retired", nil)
	disabled.Enabled = false
	if err := store.AddRecord(models.GroupCore, models.TypeExercise, disabled); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}
	active := addExercise(t, store, "Squat")
	workout := addWorkout(t, store, "Strength A", active.ID)
	if err := store.BeginWorkout(workout); err != nil {
		t.Fatalf("BeginWorkout failed: %v", err)
	}

	dashboard, err := store.GetDashboard()
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}

	exercises := dashboard[models.TypeExercise]
	if len(exercises) != 3 {
		t.Fatalf("expected 3 enabled exercises, got %d", len(exercises))
	}
	if exercises[0].ID != active.ID {
		t.Errorf("active record should sort first, got %q", exercises[0].Name)
	}
	if exercises[1].ID != fav.ID {
		t.Errorf("favorited record should sort second, got %q", exercises[1].Name)
	}
	if exercises[2].ID != plain.ID {
		t.Errorf("plain record should sort last, got %q", exercises[2].Name)
	}

	workouts := dashboard[models.TypeWorkout]
	if len(workouts) != 1 || workouts[0].ID != workout.ID {
		t.Errorf("workout bucket wrong: %+v", workouts)
	}
	if got := dashboard[models.TypeMeasurement]; len(got) != 0 {
		t.Errorf("expected empty measurement bucket, got %d", len(got))
	}
}
