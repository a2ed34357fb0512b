// ABOUTME: CLI commands for the application log.
// ABOUTME: List, prune, and clear log entries.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logsLimit int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Inspect the application log",
	Long: `Inspect the application log.

Log entries record imports, repairs, and errors. Entries expire per the
log-retention-duration setting; expired entries are pruned automatically on
startup and on demand with 'logs prune'.`,
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := store.GetLogs()
		if err != nil {
			return fmt.Errorf("failed to list logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No log entries.")
			return nil
		}
		if logsLimit > 0 && len(logs) > logsLimit {
			logs = logs[:logsLimit]
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			detail := ""
			switch {
			case l.ErrorMessage != "":
				detail = l.ErrorMessage
			case len(l.Details) > 0:
				if data, err := json.Marshal(l.Details); err == nil {
					detail = string(data)
				}
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(formatMillis(l.CreatedTimestamp)),
				padRight(string(l.LogLevel), 5),
				l.LogLabel,
				faint.Sprint(detail))
		}
		return nil
	},
}

var logsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete entries older than the retention window",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := store.DeleteExpiredLogs()
		if err != nil {
			return fmt.Errorf("failed to prune logs: %w", err)
		}
		fmt.Printf("Pruned %d log entr(ies)\n", n)
		return nil
	},
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every log entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.ClearLogs(); err != nil {
			return fmt.Errorf("failed to clear logs: %w", err)
		}
		fmt.Println("Logs cleared.")
		return nil
	},
}

func init() {
	logsListCmd.Flags().IntVarP(&logsLimit, "limit", "n", 50, "max number of entries")
	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsPruneCmd)
	logsCmd.AddCommand(logsClearCmd)
	rootCmd.AddCommand(logsCmd)
}
