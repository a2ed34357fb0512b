// ABOUTME: Per-(group,type) record validators with strict and safe modes.
// ABOUTME: Normalizes (trims) text fields, then checks bounds and cross-field invariants.
package schema

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack/internal/models"
)

// Text bounds applied after trimming, counted in runes.
const (
	MinNameLen = 1
	MaxNameLen = 50
	MaxTextLen = 500
)

// MaxSafeNumber bounds generic numeric fields to the IEEE-754 safe-integer
// range, matching the persisted JSON representation.
const MaxSafeNumber = float64(1<<53 - 1)

// Validator validates and normalizes one record variant. Normalization
// (trimming) happens in place, so validating an already-valid record twice
// is a no-op.
type Validator func(models.Record) *ValidationError

// TryValidate runs a validator without ever raising; used by bulk import to
// keep valid records while collecting rejects.
func TryValidate(v Validator, rec models.Record) (bool, *ValidationError) {
	if rec == nil {
		e := &ValidationError{}
		e.add("record", "missing")
		return false, e
	}
	if err := v(rec); err != nil {
		return false, err
	}
	return true, nil
}

// ValidateWorkout validates a workout core record.
func ValidateWorkout(rec models.Record) *ValidationError {
	e := &ValidationError{}
	r := coreOf(rec, models.TypeWorkout, e)
	if r == nil {
		return e
	}
	if len(r.ExerciseIDs) < 1 {
		e.add("exerciseIds", "must reference at least 1 exercise")
	}
	for i, id := range r.ExerciseIDs {
		if id == uuid.Nil {
			e.add("exerciseIds", indexed("exerciseIds", i)+" must be a valid id")
		}
	}
	if len(r.ExerciseInputs) > 0 || r.MeasurementInput != "" {
		e.add("type", "workout must not carry exercise or measurement fields")
	}
	return e.orNil()
}

// ValidateExercise validates an exercise core record. An empty input list is
// valid: the exercise is instructional-only.
func ValidateExercise(rec models.Record) *ValidationError {
	e := &ValidationError{}
	r := coreOf(rec, models.TypeExercise, e)
	if r == nil {
		return e
	}
	for _, in := range r.ExerciseInputs {
		if !models.IsValidExerciseInput(string(in)) {
			e.add("exerciseInputs", "unknown input kind: "+string(in))
		}
	}
	if len(r.ExerciseIDs) > 0 || r.MeasurementInput != "" {
		e.add("type", "exercise must not carry workout or measurement fields")
	}
	return e.orNil()
}

// ValidateMeasurement validates a measurement core record.
func ValidateMeasurement(rec models.Record) *ValidationError {
	e := &ValidationError{}
	r := coreOf(rec, models.TypeMeasurement, e)
	if r == nil {
		return e
	}
	if !models.IsValidMeasurementInput(string(r.MeasurementInput)) {
		e.add("measurementInput", "unknown measurement input: "+string(r.MeasurementInput))
	}
	if len(r.ExerciseIDs) > 0 || len(r.ExerciseInputs) > 0 {
		e.add("type", "measurement must not carry workout or exercise fields")
	}
	return e.orNil()
}

// ValidateWorkoutResult validates a workout sub record.
func ValidateWorkoutResult(rec models.Record) *ValidationError {
	e := &ValidationError{}
	r := subOf(rec, models.TypeWorkout, e)
	if r == nil {
		return e
	}
	for i, id := range r.ExerciseResultIDs {
		if id == uuid.Nil {
			e.add("exerciseResultIds", indexed("exerciseResultIds", i)+" must be a valid id")
		}
	}
	if r.FinishedTimestamp != nil && *r.FinishedTimestamp < r.CreatedTimestamp {
		e.add("finishedTimestamp", "must not precede createdTimestamp")
	}
	if len(r.ExerciseSets) > 0 || hasMeasurementValue(r) {
		e.add("type", "workout result must not carry exercise or measurement fields")
	}
	return e.orNil()
}

// ValidateExerciseResult validates an exercise sub record. Every set must
// record at least one value, except while the result is active: an
// in-progress session holds placeholder sets that are filled in before the
// session commits.
func ValidateExerciseResult(rec models.Record) *ValidationError {
	e := &ValidationError{}
	r := subOf(rec, models.TypeExercise, e)
	if r == nil {
		return e
	}
	for i, set := range r.ExerciseSets {
		populated := set.PopulatedInputs()
		if len(populated) == 0 && !r.Active {
			e.add("exerciseSets", indexed("exerciseSets", i)+" must record at least one value")
		}
		for _, in := range populated {
			if v := set.Value(in); v != nil && (*v < -MaxSafeNumber || *v > MaxSafeNumber) {
				e.add("exerciseSets", indexed("exerciseSets", i)+" value out of range for "+string(in))
			}
		}
	}
	if r.FinishedTimestamp != nil || len(r.ExerciseResultIDs) > 0 || hasMeasurementValue(r) {
		e.add("type", "exercise result must not carry workout or measurement fields")
	}
	return e.orNil()
}

// ValidateMeasurementResult validates a measurement sub record: exactly one
// of the five value fields must be populated.
func ValidateMeasurementResult(rec models.Record) *ValidationError {
	e := &ValidationError{}
	r := subOf(rec, models.TypeMeasurement, e)
	if r == nil {
		return e
	}
	count := 0
	for _, v := range []*float64{r.BodyWeight, r.Percent, r.Inches, r.Lbs, r.Number} {
		if v != nil {
			count++
		}
	}
	if count != 1 {
		e.add("measurement", "exactly one measurement value field must be populated")
	}
	if r.BodyWeight != nil && (*r.BodyWeight < 1 || *r.BodyWeight > 1000) {
		e.add("bodyWeight", "must be between 1 and 1000")
	}
	if r.Percent != nil && (*r.Percent < 0 || *r.Percent > 100) {
		e.add("percent", "must be between 0 and 100")
	}
	for path, v := range map[string]*float64{"inches": r.Inches, "lbs": r.Lbs, "number": r.Number} {
		if v != nil && (*v < -MaxSafeNumber || *v > MaxSafeNumber) {
			e.add(path, "value out of range")
		}
	}
	if len(r.ExerciseSets) > 0 || r.FinishedTimestamp != nil || len(r.ExerciseResultIDs) > 0 {
		e.add("type", "measurement result must not carry workout or exercise fields")
	}
	return e.orNil()
}

// coreOf normalizes and checks the shared core fields, returning nil if the
// record is not a core record of the expected type.
func coreOf(rec models.Record, want models.RecordType, e *ValidationError) *models.CoreRecord {
	r, ok := rec.(*models.CoreRecord)
	if !ok {
		e.add("record", "expected a core record")
		return nil
	}
	if r.Type != want {
		e.add("type", "expected "+string(want))
		return nil
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Desc = strings.TrimSpace(r.Desc)
	if r.ID == uuid.Nil {
		e.add("id", "must be a valid id")
	}
	if r.CreatedTimestamp <= 0 {
		e.add("createdTimestamp", "must be a positive epoch millisecond value")
	}
	if n := utf8.RuneCountInString(r.Name); n < MinNameLen || n > MaxNameLen {
		e.add("name", "length must be within bounds")
	}
	if utf8.RuneCountInString(r.Desc) > MaxTextLen {
		e.add("desc", "too long")
	}
	return r
}

// subOf normalizes and checks the shared sub fields.
func subOf(rec models.Record, want models.RecordType, e *ValidationError) *models.SubRecord {
	r, ok := rec.(*models.SubRecord)
	if !ok {
		e.add("record", "expected a sub record")
		return nil
	}
	if r.Type != want {
		e.add("type", "expected "+string(want))
		return nil
	}
	r.Note = strings.TrimSpace(r.Note)
	if r.ID == uuid.Nil {
		e.add("id", "must be a valid id")
	}
	if r.CoreID == uuid.Nil {
		e.add("coreId", "must be a valid id")
	}
	if r.CreatedTimestamp <= 0 {
		e.add("createdTimestamp", "must be a positive epoch millisecond value")
	}
	if utf8.RuneCountInString(r.Note) > MaxTextLen {
		e.add("note", "too long")
	}
	return r
}

func hasMeasurementValue(r *models.SubRecord) bool {
	_, v := r.MeasurementValue()
	return v != nil
}

func indexed(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
