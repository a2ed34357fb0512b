// ABOUTME: CLI commands for application settings.
// ABOUTME: List, get, set, and reset recognized keys.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `Manage application settings.

RECOGNIZED KEYS:

  user-height-inches      number or null
  welcome-overlay         bool
  dashboard-descriptions  bool
  dark-mode               bool
  console-logs            bool
  info-messages           bool
  log-retention-duration  milliseconds, -1 for forever

EXAMPLES:

  fittrack settings list
  fittrack settings set dark-mode false
  fittrack settings set user-height-inches 70
  fittrack settings set log-retention-duration -1`,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to list settings: %w", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Key", "Value"})
		for _, s := range settings {
			t.AppendRow(table.Row{string(s.Key), formatSettingValue(s)})
		}
		t.Render()
		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting, err := store.GetSetting(models.SettingKey(args[0]))
		if err != nil {
			return err
		}
		fmt.Println(formatSettingValue(setting))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := models.SettingKey(args[0])
		if !models.IsValidSettingKey(args[0]) {
			return fmt.Errorf("unknown setting key: %s", args[0])
		}
		if err := store.SetSetting(key, parseSettingValue(args[1])); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
		fmt.Printf("Set %s = %s\n", key, args[1])
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset every setting to its default",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.ClearSettings(); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		fmt.Println("Settings reset to defaults.")
		return nil
	},
}

// parseSettingValue keeps CLI input typed: bools and numbers stay bools and
// numbers, "null" clears, anything else is a string.
func parseSettingValue(raw string) any {
	if raw == "null" {
		return nil
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

func formatSettingValue(s models.Setting) string {
	if s.Value == nil {
		return "null"
	}
	data, err := json.Marshal(s.Value)
	if err != nil {
		return fmt.Sprintf("%v", s.Value)
	}
	return string(data)
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}
