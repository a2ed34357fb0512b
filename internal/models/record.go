// ABOUTME: Core and sub record structs persisted by the record store.
// ABOUTME: Core records are catalog entries; sub records are logged results.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is implemented by both persisted record variants so the store can
// dispatch generically on (group, type).
type Record interface {
	RecordID() uuid.UUID
	RecordType() RecordType
	RecordGroup() RecordGroup
}

// CoreRecord is a user-authored catalog entry: a workout, exercise, or
// measurement definition. Type-specific fields are populated according to
// Type and left zero otherwise.
type CoreRecord struct {
	Type             RecordType `json:"type"`
	ID               uuid.UUID  `json:"id"`
	CreatedTimestamp int64      `json:"createdTimestamp"`
	Name             string     `json:"name"`
	Desc             string     `json:"desc"`
	Enabled          bool       `json:"enabled"`
	Favorited        bool       `json:"favorited"`
	Active           bool       `json:"active"`
	Previous         *Previous  `json:"previous,omitempty"`

	// Workout
	ExerciseIDs []uuid.UUID `json:"exerciseIds,omitempty"`

	// Exercise
	ExerciseInputs []ExerciseInput `json:"exerciseInputs,omitempty"`
	MultipleSets   bool            `json:"multipleSets,omitempty"`

	// Measurement
	MeasurementInput MeasurementInput `json:"measurementInput,omitempty"`
}

func (r *CoreRecord) RecordID() uuid.UUID      { return r.ID }
func (r *CoreRecord) RecordType() RecordType   { return r.Type }
func (r *CoreRecord) RecordGroup() RecordGroup { return GroupCore }

// SubRecord is a time-stamped result logged against exactly one core record.
type SubRecord struct {
	Type             RecordType `json:"type"`
	ID               uuid.UUID  `json:"id"`
	CoreID           uuid.UUID  `json:"coreId"`
	CreatedTimestamp int64      `json:"createdTimestamp"`
	Note             string     `json:"note"`
	Active           bool       `json:"active"`

	// Workout result
	FinishedTimestamp *int64      `json:"finishedTimestamp,omitempty"`
	ExerciseResultIDs []uuid.UUID `json:"exerciseResultIds,omitempty"`

	// Exercise result
	ExerciseSets []ExerciseSet `json:"exerciseSets,omitempty"`

	// Measurement result (exactly one populated)
	BodyWeight *float64 `json:"bodyWeight,omitempty"`
	Percent    *float64 `json:"percent,omitempty"`
	Inches     *float64 `json:"inches,omitempty"`
	Lbs        *float64 `json:"lbs,omitempty"`
	Number     *float64 `json:"number,omitempty"`
}

func (r *SubRecord) RecordID() uuid.UUID      { return r.ID }
func (r *SubRecord) RecordType() RecordType   { return r.Type }
func (r *SubRecord) RecordGroup() RecordGroup { return GroupSub }

// MeasurementValue returns the populated measurement value field, if any.
func (r *SubRecord) MeasurementValue() (Field, *float64) {
	switch {
	case r.BodyWeight != nil:
		return FieldBodyWeight, r.BodyWeight
	case r.Percent != nil:
		return FieldPercent, r.Percent
	case r.Inches != nil:
		return FieldInches, r.Inches
	case r.Lbs != nil:
		return FieldLbs, r.Lbs
	case r.Number != nil:
		return FieldNumber, r.Number
	}
	return "", nil
}

// ExerciseSet records one set of an exercise result. Only the fields for the
// parent exercise's declared input kinds are populated.
type ExerciseSet struct {
	Reps            *float64 `json:"reps,omitempty"`
	WeightLbs       *float64 `json:"weightLbs,omitempty"`
	DistanceMiles   *float64 `json:"distanceMiles,omitempty"`
	DurationMinutes *float64 `json:"durationMinutes,omitempty"`
	Watts           *float64 `json:"watts,omitempty"`
	SpeedMph        *float64 `json:"speedMph,omitempty"`
	Resistance      *float64 `json:"resistance,omitempty"`
	Incline         *float64 `json:"incline,omitempty"`
	Calories        *float64 `json:"calories,omitempty"`
}

// Value returns the recorded value for an input kind, or nil.
func (s ExerciseSet) Value(in ExerciseInput) *float64 {
	switch in {
	case InputReps:
		return s.Reps
	case InputWeight:
		return s.WeightLbs
	case InputDistance:
		return s.DistanceMiles
	case InputDuration:
		return s.DurationMinutes
	case InputWatts:
		return s.Watts
	case InputSpeed:
		return s.SpeedMph
	case InputResistance:
		return s.Resistance
	case InputIncline:
		return s.Incline
	case InputCalories:
		return s.Calories
	}
	return nil
}

// SetValue records a value for an input kind. Unknown kinds are ignored.
func (s *ExerciseSet) SetValue(in ExerciseInput, v float64) {
	switch in {
	case InputReps:
		s.Reps = &v
	case InputWeight:
		s.WeightLbs = &v
	case InputDistance:
		s.DistanceMiles = &v
	case InputDuration:
		s.DurationMinutes = &v
	case InputWatts:
		s.Watts = &v
	case InputSpeed:
		s.SpeedMph = &v
	case InputResistance:
		s.Resistance = &v
	case InputIncline:
		s.Incline = &v
	case InputCalories:
		s.Calories = &v
	}
}

// PopulatedInputs returns the input kinds with a recorded value, in the
// canonical input-kind order.
func (s ExerciseSet) PopulatedInputs() []ExerciseInput {
	var inputs []ExerciseInput
	for _, in := range AllExerciseInputs {
		if s.Value(in) != nil {
			inputs = append(inputs, in)
		}
	}
	return inputs
}

// Previous is a denormalized snapshot of the most recent result for a core
// record. It is pure cache: recomputable at any time from the sub records.
type Previous struct {
	CreatedTimestamp int64  `json:"createdTimestamp,omitempty"`
	Note             string `json:"note,omitempty"`

	// Workout: formatted session duration, only when the result finished.
	WorkoutDuration string `json:"workoutDuration,omitempty"`

	// Exercise: the raw sets, verbatim.
	ExerciseSets []ExerciseSet `json:"exerciseSets,omitempty"`

	// Measurement
	BodyWeight *float64 `json:"bodyWeight,omitempty"`
	Percent    *float64 `json:"percent,omitempty"`
	Inches     *float64 `json:"inches,omitempty"`
	Lbs        *float64 `json:"lbs,omitempty"`
	Number     *float64 `json:"number,omitempty"`
}

// NewWorkout creates a workout core record with generated UUID and current
// timestamp.
func NewWorkout(name string, exerciseIDs []uuid.UUID) *CoreRecord {
	return &CoreRecord{
		Type:             TypeWorkout,
		ID:               uuid.New(),
		CreatedTimestamp: NowMillis(),
		Name:             name,
		Enabled:          true,
		ExerciseIDs:      exerciseIDs,
	}
}

// NewExercise creates an exercise core record.
func NewExercise(name string, inputs []ExerciseInput) *CoreRecord {
	return &CoreRecord{
		Type:             TypeExercise,
		ID:               uuid.New(),
		CreatedTimestamp: NowMillis(),
		Name:             name,
		Enabled:          true,
		ExerciseInputs:   inputs,
	}
}

// NewMeasurement creates a measurement core record.
func NewMeasurement(name string, input MeasurementInput) *CoreRecord {
	return &CoreRecord{
		Type:             TypeMeasurement,
		ID:               uuid.New(),
		CreatedTimestamp: NowMillis(),
		Name:             name,
		Enabled:          true,
		MeasurementInput: input,
	}
}

// NewSubRecord creates a result record skeleton for a core record.
func NewSubRecord(recordType RecordType, coreID uuid.UUID) *SubRecord {
	return &SubRecord{
		Type:             recordType,
		ID:               uuid.New(),
		CoreID:           coreID,
		CreatedTimestamp: NowMillis(),
	}
}

// WithDesc sets the description.
func (r *CoreRecord) WithDesc(desc string) *CoreRecord {
	r.Desc = desc
	return r
}

// WithFavorited marks the record favorited.
func (r *CoreRecord) WithFavorited() *CoreRecord {
	r.Favorited = true
	return r
}

// WithNote sets the result note.
func (r *SubRecord) WithNote(note string) *SubRecord {
	r.Note = note
	return r
}

// NowMillis returns the current time as integer epoch milliseconds, the
// timestamp representation used by every persisted record.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
