// ABOUTME: Tests for duration formatting and setting value accessors.
// ABOUTME: Covers component skipping and type coercion defaults.
package models

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0s"},
		{-5000, "0s"},
		{999, "0s"},
		{1000, "1s"},
		{61000, "1m 1s"},
		{3600000, "1h"},
		{3661000, "1h 1m 1s"},
		{90061000, "1d 1h 1m 1s"},
		{86400000, "1d"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.ms); got != tt.want {
			t.Errorf("FormatDuration(%d): got %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestSettingAccessors(t *testing.T) {
	if !(Setting{Key: SettingDarkMode, Value: true}).Bool() {
		t.Error("Bool should read a true value")
	}
	if (Setting{Key: SettingDarkMode, Value: "yes"}).Bool() {
		t.Error("Bool should default to false for non-bool values")
	}
	if got := (Setting{Key: SettingUserHeightInches, Value: 70.5}).Number(); got != 70.5 {
		t.Errorf("Number: got %f, want 70.5", got)
	}
	if got := (Setting{Key: SettingUserHeightInches, Value: nil}).Number(); got != 0 {
		t.Errorf("Number should default to 0, got %f", got)
	}
}
