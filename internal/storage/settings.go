// ABOUTME: Key/value settings table with pre-seeded defaults.
// ABOUTME: One row per recognized key; values are bool, string, or number.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fittrack/fittrack/internal/models"
)

// defaultSettings seeds every recognized key on first run.
var defaultSettings = map[models.SettingKey]any{
	models.SettingUserHeightInches:      nil,
	models.SettingWelcomeOverlay:        true,
	models.SettingDashboardDescriptions: true,
	models.SettingDarkMode:              true,
	models.SettingConsoleLogs:           false,
	models.SettingInfoMessages:          true,
	models.SettingLogRetentionDuration:  int64(models.RetentionThreeMonths),
}

// InitSettings seeds defaults for any missing keys, leaving existing values
// untouched. Safe to call on every startup.
func (s *Store) InitSettings() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range models.AllSettingKeys {
		if _, err := s.getSetting(key); err == nil {
			continue
		} else if !isNotFound(err) {
			return err
		}
		if err := s.putSetting(key, defaultSettings[key]); err != nil {
			return err
		}
	}
	s.watch.publish(tableSettings)
	return nil
}

// GetSetting reads one setting.
func (s *Store) GetSetting(key models.SettingKey) (models.Setting, error) {
	return s.getSetting(key)
}

// GetSettings lists all settings ordered by key.
func (s *Store) GetSettings() ([]models.Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []models.Setting
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		setting, err := decodeSetting(key, value)
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

// SetSetting writes a recognized key. Unknown keys are rejected.
func (s *Store) SetSetting(key models.SettingKey, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !models.IsValidSettingKey(string(key)) {
		return fmt.Errorf("%w: setting key %q", ErrNotFound, key)
	}
	if err := s.putSetting(key, value); err != nil {
		return err
	}
	s.watch.publish(tableSettings)
	return nil
}

// ClearSettings removes all settings, then re-seeds defaults so the store is
// never left in a keyless state.
func (s *Store) ClearSettings() error {
	s.mu.Lock()
	if _, err := s.db.Exec(`DELETE FROM settings`); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("clear settings: %w", err)
	}
	s.mu.Unlock()

	return s.InitSettings()
}

func (s *Store) getSetting(key models.SettingKey) (models.Setting, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, string(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Setting{}, fmt.Errorf("%w: setting %s", ErrNotFound, key)
	}
	if err != nil {
		return models.Setting{}, fmt.Errorf("get setting %s: %w", key, err)
	}
	return decodeSetting(string(key), value)
}

func (s *Store) putSetting(key models.SettingKey, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		string(key), string(encoded))
	if err != nil {
		return fmt.Errorf("put setting %s: %w", key, err)
	}
	return nil
}

func decodeSetting(key, value string) (models.Setting, error) {
	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		return models.Setting{}, fmt.Errorf("decode setting %s: %w", key, err)
	}
	return models.Setting{Key: models.SettingKey(key), Value: decoded}, nil
}
