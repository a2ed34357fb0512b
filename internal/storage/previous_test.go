// ABOUTME: Tests for the previous-result projector.
// ABOUTME: Validates snapshot contents, idempotence, and the recovery sweep.
package storage

import (
	"testing"

	"github.com/fittrack/fittrack/internal/models"
)

func TestPreviousTracksLatestResult(t *testing.T) {
	store := setupTestStore(t)

	m := addMeasurement(t, store, "Waist", models.InputInches)
	addMeasurementResult(t, store, m.ID, 34.0, 1000)

	got, err := store.GetRecord(models.GroupCore, m.ID)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	prev := got.(*models.CoreRecord).Previous
	if prev == nil || prev.Inches == nil || *prev.Inches != 34.0 {
		t.Fatalf("previous not populated: %+v", prev)
	}

	// A newer result replaces the snapshot.
	addMeasurementResult(t, store, m.ID, 33.5, 2000)
	got, _ = store.GetRecord(models.GroupCore, m.ID)
	prev = got.(*models.CoreRecord).Previous
	if prev == nil || prev.Inches == nil || *prev.Inches != 33.5 {
		t.Errorf("previous not updated to latest: %+v", prev)
	}

	// An older (backdated) result does not.
	addMeasurementResult(t, store, m.ID, 35.0, 500)
	got, _ = store.GetRecord(models.GroupCore, m.ID)
	prev = got.(*models.CoreRecord).Previous
	if prev == nil || prev.Inches == nil || *prev.Inches != 33.5 {
		t.Errorf("backdated result replaced newer snapshot: %+v", prev)
	}
}

func TestPreviousCarriesNote(t *testing.T) {
	store := setupTestStore(t)

	m := addMeasurement(t, store, "Waist", models.InputInches)
	v := 34.0
	r := models.NewSubRecord(models.TypeMeasurement, m.ID).WithNote("relaxed")
	r.CreatedTimestamp = 1000
	r.Inches = &v
	if err := store.AddRecord(models.GroupSub, models.TypeMeasurement, r); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}

	got, _ := store.GetRecord(models.GroupCore, m.ID)
	prev := got.(*models.CoreRecord).Previous
	if prev == nil || prev.Note != "relaxed" {
		t.Errorf("note not carried into snapshot: %+v", prev)
	}
}

func TestPreviousEmptiedWhenLastResultDeleted(t *testing.T) {
	store := setupTestStore(t)

	m := addMeasurement(t, store, "Waist", models.InputInches)
	r := addMeasurementResult(t, store, m.ID, 34.0, 1000)

	if _, err := store.DeleteRecord(models.GroupSub, r.ID); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}

	got, _ := store.GetRecord(models.GroupCore, m.ID)
	prev := got.(*models.CoreRecord).Previous
	if prev != nil && (prev.Inches != nil || prev.CreatedTimestamp != 0) {
		t.Errorf("snapshot not emptied: %+v", prev)
	}
}

func TestUpdateAllPreviousDataRecovers(t *testing.T) {
	store := setupTestStore(t)

	m := addMeasurement(t, store, "Waist", models.InputInches)
	addMeasurementResult(t, store, m.ID, 34.0, 1000)

	// Corrupt the cache directly, then repair.
	if _, err := store.db.Exec(`UPDATE core_records SET previous = NULL`); err != nil {
		t.Fatalf("failed to corrupt snapshot: %v", err)
	}
	if err := store.UpdateAllPreviousData(); err != nil {
		t.Fatalf("UpdateAllPreviousData failed: %v", err)
	}

	got, _ := store.GetRecord(models.GroupCore, m.ID)
	prev := got.(*models.CoreRecord).Previous
	if prev == nil || prev.Inches == nil || *prev.Inches != 34.0 {
		t.Errorf("snapshot not recovered: %+v", prev)
	}
}
