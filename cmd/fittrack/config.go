// ABOUTME: CLI command for viewing and updating configuration.
// ABOUTME: Runs without opening the store so it works before first use.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack/internal/config"
)

var configSetDataDir string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
	Long: `Show the config file location and resolved data paths.

Use --set-data-dir to move data storage somewhere other than the XDG data
directory. The database is not moved; copy it yourself if needed.

EXAMPLES:

  fittrack config
  fittrack config --set-data-dir ~/Dropbox/fittrack`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if configSetDataDir != "" {
			c.DataDir = configSetDataDir
			if err := c.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			color.Green("✓ Data directory set to %s", c.GetDataDir())
			return nil
		}

		fmt.Printf("Config file:    %s\n", config.GetConfigPath())
		fmt.Printf("Data directory: %s\n", c.GetDataDir())
		fmt.Printf("Database:       %s\n", c.DBPath())
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configSetDataDir, "set-data-dir", "", "set the data directory")
	rootCmd.AddCommand(configCmd)
}
