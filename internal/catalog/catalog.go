// ABOUTME: Static registry mapping (group, type) pairs to schema and labels.
// ABOUTME: Also holds the exhaustive input-kind <-> value-field mapping.
package catalog

import (
	"errors"
	"fmt"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/schema"
)

// ErrUnknownRecordKind is returned when no registry entry matches a
// (group, type) pair. With a well-formed type enum this is a programmer
// error, not a runtime condition.
var ErrUnknownRecordKind = errors.New("catalog: unknown record kind")

// ErrUnmappedKind is returned when an input kind or value field has no
// mapping. Any kind added to the enums must add a mapping here.
var ErrUnmappedKind = errors.New("catalog: unmapped kind")

// LabelStyle selects the singular or plural human label.
type LabelStyle string

const (
	Singular LabelStyle = "singular"
	Plural   LabelStyle = "plural"
)

// Props describes one record kind: its schema validator and human labels.
type Props struct {
	Group    models.RecordGroup
	Type     models.RecordType
	Singular string
	Plural   string
	Schema   schema.Validator
}

// recordProps is the immutable registry covering every record kind.
var recordProps = []Props{
	{models.GroupCore, models.TypeWorkout, "Workout", "Workouts", schema.ValidateWorkout},
	{models.GroupSub, models.TypeWorkout, "Workout Result", "Workout Results", schema.ValidateWorkoutResult},
	{models.GroupCore, models.TypeExercise, "Exercise", "Exercises", schema.ValidateExercise},
	{models.GroupSub, models.TypeExercise, "Exercise Result", "Exercise Results", schema.ValidateExerciseResult},
	{models.GroupCore, models.TypeMeasurement, "Measurement", "Measurements", schema.ValidateMeasurement},
	{models.GroupSub, models.TypeMeasurement, "Measurement Result", "Measurement Results", schema.ValidateMeasurementResult},
}

// PropsFor returns the registry entry for a (group, type) pair.
func PropsFor(group models.RecordGroup, recordType models.RecordType) (Props, error) {
	for _, p := range recordProps {
		if p.Group == group && p.Type == recordType {
			return p, nil
		}
	}
	return Props{}, fmt.Errorf("%w: %s/%s", ErrUnknownRecordKind, group, recordType)
}

// SchemaFor returns the validator for a (group, type) pair.
func SchemaFor(group models.RecordGroup, recordType models.RecordType) (schema.Validator, error) {
	p, err := PropsFor(group, recordType)
	if err != nil {
		return nil, err
	}
	return p.Schema, nil
}

// LabelFor returns the human label for a (group, type) pair.
func LabelFor(group models.RecordGroup, recordType models.RecordType, style LabelStyle) (string, error) {
	p, err := PropsFor(group, recordType)
	if err != nil {
		return "", err
	}
	if style == Plural {
		return p.Plural, nil
	}
	return p.Singular, nil
}

// FieldForExerciseInput maps an exercise input kind to the value field it
// occupies in a result record.
func FieldForExerciseInput(in models.ExerciseInput) (models.Field, error) {
	switch in {
	case models.InputReps:
		return models.FieldReps, nil
	case models.InputWeight:
		return models.FieldWeight, nil
	case models.InputDistance:
		return models.FieldDistance, nil
	case models.InputDuration:
		return models.FieldDuration, nil
	case models.InputWatts:
		return models.FieldWatts, nil
	case models.InputSpeed:
		return models.FieldSpeed, nil
	case models.InputResistance:
		return models.FieldResistance, nil
	case models.InputIncline:
		return models.FieldIncline, nil
	case models.InputCalories:
		return models.FieldCalories, nil
	}
	return "", fmt.Errorf("%w: no field mapped for input %q", ErrUnmappedKind, in)
}

// FieldForMeasurementInput maps a measurement input kind to the value field
// it occupies in a result record.
func FieldForMeasurementInput(in models.MeasurementInput) (models.Field, error) {
	switch in {
	case models.InputBodyWeight:
		return models.FieldBodyWeight, nil
	case models.InputPercent:
		return models.FieldPercent, nil
	case models.InputInches:
		return models.FieldInches, nil
	case models.InputLbs:
		return models.FieldLbs, nil
	case models.InputNumber:
		return models.FieldNumber, nil
	}
	return "", fmt.Errorf("%w: no field mapped for input %q", ErrUnmappedKind, in)
}

// InputForField maps a value field back to the display label of the input
// kind that records into it.
func InputForField(f models.Field) (string, error) {
	switch f {
	case models.FieldReps:
		return string(models.InputReps), nil
	case models.FieldWeight:
		return string(models.InputWeight), nil
	case models.FieldDistance:
		return string(models.InputDistance), nil
	case models.FieldDuration:
		return string(models.InputDuration), nil
	case models.FieldWatts:
		return string(models.InputWatts), nil
	case models.FieldSpeed:
		return string(models.InputSpeed), nil
	case models.FieldResistance:
		return string(models.InputResistance), nil
	case models.FieldIncline:
		return string(models.InputIncline), nil
	case models.FieldCalories:
		return string(models.InputCalories), nil
	case models.FieldBodyWeight:
		return string(models.InputBodyWeight), nil
	case models.FieldPercent:
		return string(models.InputPercent), nil
	case models.FieldInches:
		return string(models.InputInches), nil
	case models.FieldLbs:
		return string(models.InputLbs), nil
	case models.FieldNumber:
		return string(models.InputNumber), nil
	}
	return "", fmt.Errorf("%w: no input mapped for field %q", ErrUnmappedKind, f)
}

// DashboardTypes returns the record types shown on the dashboard, in
// registry order.
func DashboardTypes() []models.RecordType {
	var types []models.RecordType
	for _, p := range recordProps {
		if p.Group == models.GroupCore {
			types = append(types, p.Type)
		}
	}
	return types
}
