// ABOUTME: Append-mostly log table operations with retention-based expiry.
// ABOUTME: Error payloads populate errorMessage/stackTrace; others populate details.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/fittrack/fittrack/internal/models"
)

// AddLog appends a log entry. When details is an error the entry carries its
// message and the current stack trace; any other non-nil payload is stored
// as opaque structured details. The two forms are mutually exclusive.
func (s *Store) AddLog(level models.LogLevel, label string, details any) (*models.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &models.Log{
		CreatedTimestamp: models.NowMillis(),
		LogLevel:         level,
		LogLabel:         label,
	}

	switch v := details.(type) {
	case nil:
	case error:
		entry.ErrorMessage = v.Error()
		entry.StackTrace = string(debug.Stack())
	case map[string]any:
		entry.Details = v
	default:
		// Best effort: round-trip other structured payloads through JSON.
		data, err := json.Marshal(v)
		if err == nil {
			var m map[string]any
			if json.Unmarshal(data, &m) == nil {
				entry.Details = m
			}
		}
	}

	var detailsJSON, errorMessage, stackTrace sql.NullString
	if entry.Details != nil {
		data, err := json.Marshal(entry.Details)
		if err != nil {
			return nil, fmt.Errorf("encode log details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}
	if entry.ErrorMessage != "" {
		errorMessage = sql.NullString{String: entry.ErrorMessage, Valid: true}
		stackTrace = sql.NullString{String: entry.StackTrace, Valid: true}
	}

	result, err := s.db.Exec(`
		INSERT INTO logs (created_timestamp, log_level, log_label, details, error_message, stack_trace)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.CreatedTimestamp, string(entry.LogLevel), entry.LogLabel,
		detailsJSON, errorMessage, stackTrace)
	if err != nil {
		return nil, fmt.Errorf("insert log: %w", err)
	}

	entry.AutoID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read log id: %w", err)
	}

	s.watch.publish(tableLogs)
	return entry, nil
}

// GetLogs lists all logs, newest first.
func (s *Store) GetLogs() ([]*models.Log, error) {
	rows, err := s.db.Query(`
		SELECT auto_id, created_timestamp, log_level, log_label, details, error_message, stack_trace
		FROM logs ORDER BY auto_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.Log
	for rows.Next() {
		var l models.Log
		var level string
		var details, errorMessage, stackTrace sql.NullString
		if err := rows.Scan(&l.AutoID, &l.CreatedTimestamp, &level, &l.LogLabel,
			&details, &errorMessage, &stackTrace); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		l.LogLevel = models.LogLevel(level)
		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &l.Details); err != nil {
				return nil, fmt.Errorf("decode log details: %w", err)
			}
		}
		l.ErrorMessage = errorMessage.String
		l.StackTrace = stackTrace.String
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// DeleteExpiredLogs purges logs older than the configured retention
// duration, returning the purge count. With retention set to forever (or
// unset) nothing is removed.
func (s *Store) DeleteExpiredLogs() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	setting, err := s.getSetting(models.SettingLogRetentionDuration)
	if err != nil {
		if isNotFound(err) {
			return 0, nil
		}
		return 0, err
	}

	retention := int64(setting.Number())
	if retention <= 0 {
		return 0, nil
	}

	cutoff := models.NowMillis() - retention
	result, err := s.db.Exec(`DELETE FROM logs WHERE created_timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired logs: %w", err)
	}
	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count purged logs: %w", err)
	}
	if purged > 0 {
		s.watch.publish(tableLogs)
	}
	return purged, nil
}

// ClearLogs removes every log entry.
func (s *Store) ClearLogs() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM logs`); err != nil {
		return fmt.Errorf("clear logs: %w", err)
	}
	s.watch.publish(tableLogs)
	return nil
}
