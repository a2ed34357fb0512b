// ABOUTME: Shared test helpers for store tests.
// ABOUTME: Provides setupTestStore and common record fixtures.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	if err := store.InitSettings(); err != nil {
		t.Fatalf("failed to init settings: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func addExercise(t *testing.T, s *Store, name string, inputs ...models.ExerciseInput) *models.CoreRecord {
	t.Helper()
	e := models.NewExercise(name, inputs)
	if err := s.AddRecord(models.GroupCore, models.TypeExercise, e); err != nil {
		t.Fatalf("failed to add exercise %q: %v", name, err)
	}
	return e
}

func addWorkout(t *testing.T, s *Store, name string, exerciseIDs ...uuid.UUID) *models.CoreRecord {
	t.Helper()
	w := models.NewWorkout(name, exerciseIDs)
	if err := s.AddRecord(models.GroupCore, models.TypeWorkout, w); err != nil {
		t.Fatalf("failed to add workout %q: %v", name, err)
	}
	return w
}

func addMeasurement(t *testing.T, s *Store, name string, input models.MeasurementInput) *models.CoreRecord {
	t.Helper()
	m := models.NewMeasurement(name, input)
	if err := s.AddRecord(models.GroupCore, models.TypeMeasurement, m); err != nil {
		t.Fatalf("failed to add measurement %q: %v", name, err)
	}
	return m
}

// addMeasurementResult logs a bodyweight-style value at an explicit timestamp
// so ordering assertions are deterministic.
func addMeasurementResult(t *testing.T, s *Store, coreID uuid.UUID, value float64, ts int64) *models.SubRecord {
	t.Helper()
	r := models.NewSubRecord(models.TypeMeasurement, coreID)
	r.CreatedTimestamp = ts
	r.Inches = &value
	if err := s.AddRecord(models.GroupSub, models.TypeMeasurement, r); err != nil {
		t.Fatalf("failed to add measurement result: %v", err)
	}
	return r
}
