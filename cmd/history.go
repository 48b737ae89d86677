package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/leadgate/lead-audit/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent audit runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path := cfg.History.Path
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return eris.Wrap(err, "resolve home dir")
			}
			path = filepath.Join(home, ".lead-audit", "history.db")
		}
		if _, err := os.Stat(path); err != nil {
			return eris.Wrapf(err, "no history database at %s", path)
		}

		store, err := history.Open(path)
		if err != nil {
			return eris.Wrap(err, "open history")
		}
		defer store.Close()

		if err := store.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate history")
		}

		runs, err := store.RecentRuns(ctx, historyLimit)
		if err != nil {
			return eris.Wrap(err, "list runs")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
