package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/leadgate/lead-audit/internal/dedup"
	"github.com/leadgate/lead-audit/internal/translog"
)

var syncSinceHours int

var syncCacheCmd = &cobra.Command{
	Use:   "sync-cache",
	Short: "Sync the duplicate cache from the transparency log",
	Long:  "Downloads recent consensus decisions into the local duplicate cache so audits can run offline.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.Translog.DatabaseURL == "" {
			return eris.New("translog.database_url is not configured")
		}

		client, err := translog.Connect(ctx, cfg.Translog.DatabaseURL)
		if err != nil {
			return eris.Wrap(err, "connect transparency log")
		}
		defer client.Close()

		cachePath := cfg.Cache.Path
		if cachePath == "" {
			cachePath = dedup.DefaultCachePath()
		}

		checker := dedup.NewChecker(dedup.ModeOnline, client, dedup.OpenCache(cachePath))
		since := time.Now().Add(-time.Duration(syncSinceHours) * time.Hour)

		fmt.Println("Syncing duplicate cache from transparency log...")
		count, err := checker.SyncCache(ctx, since)
		if err != nil {
			return eris.Wrap(err, "sync cache")
		}

		fmt.Printf("Synced %d records to cache at %s\n", count, cachePath)
		return nil
	},
}

func init() {
	syncCacheCmd.Flags().IntVar(&syncSinceHours, "since-hours", 168, "how far back to pull consensus decisions")
	rootCmd.AddCommand(syncCacheCmd)
}
