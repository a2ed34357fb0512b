// ABOUTME: Tests for log persistence and retention expiry.
// ABOUTME: Covers detail/error payload shapes and the retention cutoff.
package storage

import (
	"errors"
	"testing"

	"github.com/fittrack/fittrack/internal/models"
)

func TestAddLogWithDetails(t *testing.T) {
	store := setupTestStore(t)

	entry, err := store.AddLog(models.LevelInfo, "Import finished", map[string]any{"count": 3})
	if err != nil {
		t.Fatalf("AddLog failed: %v", err)
	}
	if entry.AutoID == 0 {
		t.Error("expected an assigned auto id")
	}

	logs, err := store.GetLogs()
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	got := logs[0]
	if got.LogLabel != "Import finished" || got.LogLevel != models.LevelInfo {
		t.Errorf("log fields mismatch: %+v", got)
	}
	if got.Details["count"] != float64(3) {
		t.Errorf("details mismatch: %v", got.Details)
	}
	if got.ErrorMessage != "" || got.StackTrace != "" {
		t.Error("details entry should not carry error fields")
	}
}

func TestAddLogWithError(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.AddLog(models.LevelError, "Import failed", errors.New("boom")); err != nil {
		t.Fatalf("AddLog failed: %v", err)
	}

	logs, _ := store.GetLogs()
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	got := logs[0]
	if got.ErrorMessage != "boom" {
		t.Errorf("error message mismatch: %q", got.ErrorMessage)
	}
	if got.StackTrace == "" {
		t.Error("expected a stack trace")
	}
	if got.Details != nil {
		t.Error("error entry should not carry details")
	}
}

func TestGetLogsNewestFirst(t *testing.T) {
	store := setupTestStore(t)

	store.AddLog(models.LevelInfo, "first", nil)
	store.AddLog(models.LevelInfo, "second", nil)

	logs, err := store.GetLogs()
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(logs) != 2 || logs[0].LogLabel != "second" {
		t.Errorf("logs not newest-first: %+v", logs)
	}
}

func TestDeleteExpiredLogs(t *testing.T) {
	store := setupTestStore(t)

	store.AddLog(models.LevelInfo, "old", nil)
	store.AddLog(models.LevelInfo, "fresh", nil)

	// Backdate one entry beyond the retention window.
	cutoff := models.NowMillis() - int64(models.RetentionThreeMonths) - 1000
	if _, err := store.db.Exec(`UPDATE logs SET created_timestamp = ? WHERE log_label = 'old'`, cutoff); err != nil {
		t.Fatalf("failed to backdate log: %v", err)
	}

	purged, err := store.DeleteExpiredLogs()
	if err != nil {
		t.Fatalf("DeleteExpiredLogs failed: %v", err)
	}
	if purged != 1 {
		t.Errorf("expected 1 purged, got %d", purged)
	}

	logs, _ := store.GetLogs()
	if len(logs) != 1 || logs[0].LogLabel != "fresh" {
		t.Errorf("wrong logs survived: %+v", logs)
	}
}

func TestDeleteExpiredLogsRetentionForever(t *testing.T) {
	store := setupTestStore(t)

	if err := store.SetSetting(models.SettingLogRetentionDuration, int64(models.RetentionForever)); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}

	store.AddLog(models.LevelInfo, "ancient", nil)
	if _, err := store.db.Exec(`UPDATE logs SET created_timestamp = 1`); err != nil {
		t.Fatalf("failed to backdate log: %v", err)
	}

	purged, err := store.DeleteExpiredLogs()
	if err != nil {
		t.Fatalf("DeleteExpiredLogs failed: %v", err)
	}
	if purged != 0 {
		t.Errorf("retention forever should purge nothing, purged %d", purged)
	}
}

func TestClearLogs(t *testing.T) {
	store := setupTestStore(t)

	store.AddLog(models.LevelInfo, "one", nil)
	store.AddLog(models.LevelWarn, "two", nil)

	if err := store.ClearLogs(); err != nil {
		t.Fatalf("ClearLogs failed: %v", err)
	}
	logs, _ := store.GetLogs()
	if len(logs) != 0 {
		t.Errorf("expected no logs, got %d", len(logs))
	}
}
