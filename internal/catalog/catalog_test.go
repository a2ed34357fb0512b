// ABOUTME: Tests for the record-kind registry and input/field mappings.
// ABOUTME: Validates coverage of every enum value and unknown-kind errors.
package catalog

import (
	"errors"
	"testing"

	"github.com/fittrack/fittrack/internal/models"
)

func TestPropsForCoversEveryKind(t *testing.T) {
	for _, group := range models.AllRecordGroups {
		for _, recordType := range models.AllRecordTypes {
			p, err := PropsFor(group, recordType)
			if err != nil {
				t.Fatalf("PropsFor(%s, %s) failed: %v", group, recordType, err)
			}
			if p.Schema == nil {
				t.Errorf("PropsFor(%s, %s): nil schema", group, recordType)
			}
			if p.Singular == "" || p.Plural == "" {
				t.Errorf("PropsFor(%s, %s): missing labels", group, recordType)
			}
		}
	}
}

func TestPropsForUnknownKind(t *testing.T) {
	_, err := PropsFor(models.GroupCore, "bogus")
	if !errors.Is(err, ErrUnknownRecordKind) {
		t.Errorf("expected ErrUnknownRecordKind, got %v", err)
	}
}

func TestLabelFor(t *testing.T) {
	got, err := LabelFor(models.GroupSub, models.TypeExercise, Plural)
	if err != nil {
		t.Fatalf("LabelFor failed: %v", err)
	}
	if got != "Exercise Results" {
		t.Errorf("label mismatch: got %q", got)
	}

	got, err = LabelFor(models.GroupCore, models.TypeMeasurement, Singular)
	if err != nil {
		t.Fatalf("LabelFor failed: %v", err)
	}
	if got != "Measurement" {
		t.Errorf("label mismatch: got %q", got)
	}
}

func TestExerciseInputFieldMappingRoundTrip(t *testing.T) {
	seen := make(map[models.Field]bool)
	for _, in := range models.AllExerciseInputs {
		field, err := FieldForExerciseInput(in)
		if err != nil {
			t.Fatalf("FieldForExerciseInput(%s) failed: %v", in, err)
		}
		if seen[field] {
			t.Errorf("field %s mapped twice", field)
		}
		seen[field] = true

		label, err := InputForField(field)
		if err != nil {
			t.Fatalf("InputForField(%s) failed: %v", field, err)
		}
		if label != string(in) {
			t.Errorf("round trip mismatch: %s -> %s -> %s", in, field, label)
		}
	}
}

func TestMeasurementInputFieldMappingRoundTrip(t *testing.T) {
	for _, in := range models.AllMeasurementInputs {
		field, err := FieldForMeasurementInput(in)
		if err != nil {
			t.Fatalf("FieldForMeasurementInput(%s) failed: %v", in, err)
		}
		label, err := InputForField(field)
		if err != nil {
			t.Fatalf("InputForField(%s) failed: %v", field, err)
		}
		if label != string(in) {
			t.Errorf("round trip mismatch: %s -> %s -> %s", in, field, label)
		}
	}
}

func TestUnmappedKind(t *testing.T) {
	if _, err := FieldForExerciseInput("Bogus"); !errors.Is(err, ErrUnmappedKind) {
		t.Errorf("expected ErrUnmappedKind, got %v", err)
	}
	if _, err := InputForField("bogus"); !errors.Is(err, ErrUnmappedKind) {
		t.Errorf("expected ErrUnmappedKind, got %v", err)
	}
}

func TestDashboardTypes(t *testing.T) {
	types := DashboardTypes()
	if len(types) != len(models.AllRecordTypes) {
		t.Fatalf("expected %d dashboard types, got %d", len(models.AllRecordTypes), len(types))
	}
}
