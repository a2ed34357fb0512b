// ABOUTME: Tests for preset catalog loading.
// ABOUTME: Validates counts, referential integrity, and reimport idempotence.
package seed

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/storage"
)

func setupTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	if err := store.InitSettings(); err != nil {
		t.Fatalf("failed to init settings: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoad(t *testing.T) {
	store := setupTestStore(t)

	if err := Load(store); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	exercises, err := store.GetCoreRecords(models.TypeExercise)
	if err != nil {
		t.Fatalf("GetCoreRecords failed: %v", err)
	}
	if len(exercises) != len(Exercises()) {
		t.Errorf("expected %d exercises, got %d", len(Exercises()), len(exercises))
	}

	workouts, _ := store.GetCoreRecords(models.TypeWorkout)
	if len(workouts) != len(Workouts()) {
		t.Errorf("expected %d workouts, got %d", len(Workouts()), len(workouts))
	}

	measurements, _ := store.GetCoreRecords(models.TypeMeasurement)
	if len(measurements) != len(Measurements()) {
		t.Errorf("expected %d measurements, got %d", len(Measurements()), len(measurements))
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	if err := Load(store); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	if err := Load(store); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	cores, err := store.GetAllCoreRecords()
	if err != nil {
		t.Fatalf("GetAllCoreRecords failed: %v", err)
	}
	want := len(Exercises()) + len(Workouts()) + len(Measurements())
	if len(cores) != want {
		t.Errorf("reimport duplicated records: got %d, want %d", len(cores), want)
	}
}

func TestWorkoutsReferenceSeededExercises(t *testing.T) {
	known := make(map[uuid.UUID]bool)
	for _, rec := range Exercises() {
		known[rec.RecordID()] = true
	}

	for _, rec := range Workouts() {
		w := rec.(*models.CoreRecord)
		if len(w.ExerciseIDs) == 0 {
			t.Errorf("workout %q references no exercises", w.Name)
		}
		for _, id := range w.ExerciseIDs {
			if !known[id] {
				t.Errorf("workout %q references unknown exercise %s", w.Name, id)
			}
		}
	}
}

func TestSeededWorkoutsCanBegin(t *testing.T) {
	store := setupTestStore(t)
	if err := Load(store); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	workouts, err := store.GetCoreRecords(models.TypeWorkout)
	if err != nil {
		t.Fatalf("GetCoreRecords failed: %v", err)
	}
	if err := store.BeginWorkout(workouts[0]); err != nil {
		t.Fatalf("BeginWorkout on seeded workout failed: %v", err)
	}
	if err := store.DiscardActiveRecords(); err != nil {
		t.Fatalf("DiscardActiveRecords failed: %v", err)
	}
}
