package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadgate/lead-audit/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "lead-audit",
	Short: "Pre-submission lead auditor",
	Long:  "Runs the full validator pipeline locally: field validation, duplicate fingerprint checks against the transparency log, advisory network probes, and a score preview.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
