// ABOUTME: Tests for record validators.
// ABOUTME: Covers normalization, bounds, and cross-field invariants.
package schema

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack/internal/models"
)

func validWorkout() *models.CoreRecord {
	return models.NewWorkout("Leg Day", []uuid.UUID{uuid.New()})
}

func validExercise() *models.CoreRecord {
	return models.NewExercise("Squat", []models.ExerciseInput{models.InputReps, models.InputWeight})
}

func validMeasurement() *models.CoreRecord {
	return models.NewMeasurement("Body Weight", models.InputBodyWeight)
}

func TestValidateWorkout(t *testing.T) {
	if err := ValidateWorkout(validWorkout()); err != nil {
		t.Fatalf("valid workout rejected: %v", err)
	}
}

func TestValidateWorkoutTrimsText(t *testing.T) {
	w := validWorkout()
	w.Name = "  Leg Day  "
	w.Desc = " heavy "
	if err := ValidateWorkout(w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Name != "Leg Day" {
		t.Errorf("name not trimmed: %q", w.Name)
	}
	if w.Desc != "heavy" {
		t.Errorf("desc not trimmed: %q", w.Desc)
	}

	// Re-validating an already-valid record changes nothing.
	if err := ValidateWorkout(w); err != nil {
		t.Fatalf("revalidation failed: %v", err)
	}
	if w.Name != "Leg Day" {
		t.Errorf("revalidation changed name: %q", w.Name)
	}
}

func TestNameBoundsCountRunes(t *testing.T) {
	// A 50-rune multibyte name fits the bound even though it is 100 bytes.
	w := validWorkout()
	w.Name = strings.Repeat("å", MaxNameLen)
	if err := ValidateWorkout(w); err != nil {
		t.Fatalf("50-rune name rejected: %v", err)
	}

	w = validWorkout()
	w.Name = strings.Repeat("å", MaxNameLen+1)
	if err := ValidateWorkout(w); err == nil || !err.Has("name") {
		t.Errorf("expected 51-rune name rejection, got %v", err)
	}
}

func TestValidateWorkoutRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CoreRecord)
		path   string
	}{
		{"nil id", func(w *models.CoreRecord) { w.ID = uuid.Nil }, "id"},
		{"zero timestamp", func(w *models.CoreRecord) { w.CreatedTimestamp = 0 }, "createdTimestamp"},
		{"empty name", func(w *models.CoreRecord) { w.Name = "   " }, "name"},
		{"long name", func(w *models.CoreRecord) { w.Name = strings.Repeat("x", 51) }, "name"},
		{"long desc", func(w *models.CoreRecord) { w.Desc = strings.Repeat("x", 501) }, "desc"},
		{"no exercises", func(w *models.CoreRecord) { w.ExerciseIDs = nil }, "exerciseIds"},
		{"nil exercise id", func(w *models.CoreRecord) { w.ExerciseIDs = []uuid.UUID{uuid.Nil} }, "exerciseIds"},
		{"foreign field", func(w *models.CoreRecord) { w.MeasurementInput = models.InputNumber }, "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWorkout()
			tt.mutate(w)
			err := ValidateWorkout(w)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !err.Has(tt.path) {
				t.Errorf("expected a violation at %q, got %v", tt.path, err)
			}
		})
	}
}

func TestValidateExercise(t *testing.T) {
	if err := ValidateExercise(validExercise()); err != nil {
		t.Fatalf("valid exercise rejected: %v", err)
	}

	// Instructional-only: no inputs is fine.
	if err := ValidateExercise(models.NewExercise("Stretch", nil)); err != nil {
		t.Fatalf("instructional exercise rejected: %v", err)
	}

	bad := validExercise()
	bad.ExerciseInputs = []models.ExerciseInput{"Bogus"}
	if err := ValidateExercise(bad); err == nil || !err.Has("exerciseInputs") {
		t.Errorf("expected unknown input rejection, got %v", err)
	}

	foreign := validExercise()
	foreign.ExerciseIDs = []uuid.UUID{uuid.New()}
	if err := ValidateExercise(foreign); err == nil || !err.Has("type") {
		t.Errorf("expected foreign field rejection, got %v", err)
	}
}

func TestValidateMeasurement(t *testing.T) {
	if err := ValidateMeasurement(validMeasurement()); err != nil {
		t.Fatalf("valid measurement rejected: %v", err)
	}

	bad := validMeasurement()
	bad.MeasurementInput = "Bogus"
	if err := ValidateMeasurement(bad); err == nil || !err.Has("measurementInput") {
		t.Errorf("expected unknown input rejection, got %v", err)
	}
}

func TestValidateWrongVariant(t *testing.T) {
	sub := models.NewSubRecord(models.TypeWorkout, uuid.New())
	if err := ValidateWorkout(sub); err == nil || !err.Has("record") {
		t.Errorf("expected variant rejection, got %v", err)
	}

	if err := ValidateWorkoutResult(validWorkout()); err == nil || !err.Has("record") {
		t.Errorf("expected variant rejection, got %v", err)
	}
}

func TestValidateWrongType(t *testing.T) {
	w := validWorkout()
	if err := ValidateExercise(w); err == nil || !err.Has("type") {
		t.Errorf("expected type rejection, got %v", err)
	}
}

func TestValidateWorkoutResult(t *testing.T) {
	r := models.NewSubRecord(models.TypeWorkout, uuid.New())
	if err := ValidateWorkoutResult(r); err != nil {
		t.Fatalf("valid workout result rejected: %v", err)
	}

	finished := r.CreatedTimestamp + 60000
	r.FinishedTimestamp = &finished
	if err := ValidateWorkoutResult(r); err != nil {
		t.Fatalf("finished workout result rejected: %v", err)
	}

	early := r.CreatedTimestamp - 1
	r.FinishedTimestamp = &early
	if err := ValidateWorkoutResult(r); err == nil || !err.Has("finishedTimestamp") {
		t.Errorf("expected finishedTimestamp rejection, got %v", err)
	}
}

func TestValidateExerciseResult(t *testing.T) {
	r := models.NewSubRecord(models.TypeExercise, uuid.New())
	reps := 5.0
	r.ExerciseSets = []models.ExerciseSet{{Reps: &reps}}
	if err := ValidateExerciseResult(r); err != nil {
		t.Fatalf("valid exercise result rejected: %v", err)
	}
}

func TestValidateExerciseResultEmptySet(t *testing.T) {
	r := models.NewSubRecord(models.TypeExercise, uuid.New())
	r.ExerciseSets = []models.ExerciseSet{{}}
	if err := ValidateExerciseResult(r); err == nil || !err.Has("exerciseSets") {
		t.Errorf("expected empty set rejection, got %v", err)
	}

	// A pending in-progress result may hold placeholder sets.
	r.Active = true
	if err := ValidateExerciseResult(r); err != nil {
		t.Errorf("active placeholder rejected: %v", err)
	}
}

func TestValidateMeasurementResult(t *testing.T) {
	v := 82.5
	r := models.NewSubRecord(models.TypeMeasurement, uuid.New())
	r.BodyWeight = &v
	if err := ValidateMeasurementResult(r); err != nil {
		t.Fatalf("valid measurement result rejected: %v", err)
	}
}

func TestValidateMeasurementResultExactlyOneValue(t *testing.T) {
	none := models.NewSubRecord(models.TypeMeasurement, uuid.New())
	if err := ValidateMeasurementResult(none); err == nil || !err.Has("measurement") {
		t.Errorf("expected no-value rejection, got %v", err)
	}

	a, b := 82.5, 15.0
	two := models.NewSubRecord(models.TypeMeasurement, uuid.New())
	two.BodyWeight = &a
	two.Percent = &b
	if err := ValidateMeasurementResult(two); err == nil || !err.Has("measurement") {
		t.Errorf("expected two-value rejection, got %v", err)
	}
}

func TestValidateMeasurementResultBounds(t *testing.T) {
	over := 1001.0
	r := models.NewSubRecord(models.TypeMeasurement, uuid.New())
	r.BodyWeight = &over
	if err := ValidateMeasurementResult(r); err == nil || !err.Has("bodyWeight") {
		t.Errorf("expected bodyWeight bound rejection, got %v", err)
	}

	pct := 100.5
	r2 := models.NewSubRecord(models.TypeMeasurement, uuid.New())
	r2.Percent = &pct
	if err := ValidateMeasurementResult(r2); err == nil || !err.Has("percent") {
		t.Errorf("expected percent bound rejection, got %v", err)
	}

	// Boundary values pass.
	edge := 100.0
	r3 := models.NewSubRecord(models.TypeMeasurement, uuid.New())
	r3.Percent = &edge
	if err := ValidateMeasurementResult(r3); err != nil {
		t.Errorf("boundary percent rejected: %v", err)
	}
}

func TestTryValidate(t *testing.T) {
	ok, verr := TryValidate(ValidateWorkout, validWorkout())
	if !ok || verr != nil {
		t.Errorf("expected success, got ok=%v err=%v", ok, verr)
	}

	bad := validWorkout()
	bad.Name = ""
	ok, verr = TryValidate(ValidateWorkout, bad)
	if ok || verr == nil {
		t.Error("expected failure for invalid record")
	}

	ok, verr = TryValidate(ValidateWorkout, nil)
	if ok || verr == nil {
		t.Error("expected failure for nil record")
	}
}
