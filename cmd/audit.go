package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leadgate/lead-audit/internal/audit"
	"github.com/leadgate/lead-audit/internal/dedup"
	"github.com/leadgate/lead-audit/internal/history"
	"github.com/leadgate/lead-audit/internal/lead"
	"github.com/leadgate/lead-audit/internal/netcheck"
	"github.com/leadgate/lead-audit/internal/taxonomy"
	"github.com/leadgate/lead-audit/internal/translog"
)

var (
	auditMode        string
	auditSkipNetwork bool
	auditOutput      string
	auditQuiet       bool
	auditNoHistory   bool
)

// resultRow is the per-lead output shape: the audit result plus its position
// in the input.
type resultRow struct {
	Index           int                  `json:"index"`
	Email           string               `json:"email"`
	Passed          bool                 `json:"passed"`
	BlockingErrors  []string             `json:"blocking_errors"`
	Warnings        []string             `json:"warnings"`
	DuplicateStatus lead.DuplicateStatus `json:"duplicate_status"`
	ScorePreview    lead.ScorePreview    `json:"score_preview"`
}

var auditCmd = &cobra.Command{
	Use:   "audit <leads.json>",
	Short: "Audit lead(s) before submission",
	Long:  "Reads a JSON object or array of lead records, runs every validation stage on each, and prints the aggregated results. Only an unreadable input file is fatal; everything else degrades to findings in the output.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if auditMode != string(dedup.ModeOnline) && auditMode != string(dedup.ModeOffline) {
			return eris.Errorf("invalid --mode %q (valid: online, offline)", auditMode)
		}

		records, err := loadLeads(args[0])
		if err != nil {
			return err
		}

		auditor, cleanup := buildAuditor(ctx)
		defer cleanup()

		rows := auditAll(ctx, auditor, records)

		if err := writeResults(rows); err != nil {
			return err
		}

		recordHistory(ctx, rows)

		if !auditQuiet {
			printSummary(rows)
		}
		return nil
	},
}

// loadLeads reads the input file and accepts either a single JSON object or
// an array of objects.
func loadLeads(path string) ([]lead.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read input %s", path)
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var rec lead.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, eris.Wrapf(err, "parse input %s", path)
		}
		return []lead.Record{rec}, nil
	}

	var records []lead.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, eris.Wrapf(err, "parse input %s", path)
	}
	return records, nil
}

// buildAuditor wires the taxonomy resolver, duplicate checker, and network
// advisor from config and flags. Online mode quietly degrades to offline when
// the transparency log is unreachable.
func buildAuditor(ctx context.Context) (*audit.Auditor, func()) {
	cleanup := func() {}

	mode := dedup.Mode(auditMode)
	var log dedup.Log
	if mode == dedup.ModeOnline {
		switch {
		case cfg.Translog.DatabaseURL == "":
			zap.L().Warn("translog.database_url not set, falling back to offline duplicate checks")
			mode = dedup.ModeOffline
		default:
			connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			client, err := translog.Connect(connectCtx, cfg.Translog.DatabaseURL)
			cancel()
			if err != nil {
				zap.L().Warn("transparency log unreachable, falling back to offline duplicate checks", zap.Error(err))
				mode = dedup.ModeOffline
			} else {
				log = client
				cleanup = client.Close
			}
		}
	}

	cachePath := cfg.Cache.Path
	if cachePath == "" {
		cachePath = dedup.DefaultCachePath()
	}

	auditor := &audit.Auditor{
		Taxonomy:    taxonomy.NewResolver(cfg.Taxonomy.Path),
		Dups:        dedup.NewChecker(mode, log, dedup.OpenCache(cachePath)),
		SkipNetwork: auditSkipNetwork,
	}
	if !auditSkipNetwork {
		auditor.Network = netcheck.NewAdvisor(netcheck.NewLiveProber(
			netcheck.WithResolver(cfg.Network.Resolver),
			netcheck.WithTimeout(time.Duration(cfg.Network.TimeoutSecs)*time.Second),
			netcheck.WithRateLimit(cfg.Network.RatePerSec),
		))
	}
	return auditor, cleanup
}

// auditAll audits records concurrently while preserving input order.
func auditAll(ctx context.Context, auditor *audit.Auditor, records []lead.Record) []resultRow {
	rows := make([]resultRow, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Batch.MaxConcurrent)
	for i, rec := range records {
		g.Go(func() error {
			res := auditor.Audit(gctx, rec)
			email := rec.Str("email")
			if email == "" {
				email = "unknown"
			}
			rows[i] = resultRow{
				Index:           i,
				Email:           email,
				Passed:          res.Passed,
				BlockingErrors:  res.BlockingErrors,
				Warnings:        res.Warnings,
				DuplicateStatus: res.DuplicateStatus,
				ScorePreview:    res.ScorePreview,
			}
			return nil
		})
	}
	_ = g.Wait()
	return rows
}

func writeResults(rows []resultRow) error {
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return eris.Wrap(err, "marshal results")
	}

	if auditOutput != "" {
		if err := os.WriteFile(auditOutput, append(out, '\n'), 0o644); err != nil {
			return eris.Wrapf(err, "write results to %s", auditOutput)
		}
		if !auditQuiet {
			fmt.Printf("Results written to %s\n", auditOutput)
		}
		return nil
	}

	fmt.Println(string(out))
	return nil
}

// recordHistory persists the run to the local history database. Failures are
// logged, never fatal.
func recordHistory(ctx context.Context, rows []resultRow) {
	if auditNoHistory || !cfg.History.Enabled {
		return
	}

	path := cfg.History.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			zap.L().Warn("history disabled, cannot resolve home dir", zap.Error(err))
			return
		}
		path = filepath.Join(home, ".lead-audit", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		zap.L().Warn("history disabled, cannot create directory", zap.Error(err))
		return
	}

	store, err := history.Open(path)
	if err != nil {
		zap.L().Warn("history open failed", zap.Error(err))
		return
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		zap.L().Warn("history migrate failed", zap.Error(err))
		return
	}

	emails := make([]string, len(rows))
	results := make([]lead.AuditResult, len(rows))
	for i, r := range rows {
		emails[i] = r.Email
		results[i] = lead.AuditResult{
			Passed:          r.Passed,
			BlockingErrors:  r.BlockingErrors,
			Warnings:        r.Warnings,
			DuplicateStatus: r.DuplicateStatus,
			ScorePreview:    r.ScorePreview,
		}
	}

	run, err := store.RecordRun(ctx, auditMode, emails, results)
	if err != nil {
		zap.L().Warn("history record failed", zap.Error(err))
		return
	}
	zap.L().Debug("audit run recorded", zap.String("run_id", run.ID))
}

func printSummary(rows []resultRow) {
	passed := 0
	for _, r := range rows {
		if r.Passed {
			passed++
		}
	}

	bar := strings.Repeat("=", 50)
	fmt.Printf("\n%s\n", bar)
	fmt.Printf("AUDIT SUMMARY: %d/%d leads passed\n", passed, len(rows))
	fmt.Printf("%s\n", bar)

	for _, r := range rows {
		status := "FAIL"
		if r.Passed {
			status = "PASS"
		}
		email := r.Email
		if len(email) > 30 {
			email = email[:30]
		}
		fmt.Printf("\n[%s] %s\n", status, email)

		if len(r.BlockingErrors) > 0 {
			fmt.Println("  Blocking errors:")
			for _, e := range r.BlockingErrors {
				fmt.Printf("    - %s\n", e)
			}
		}
		if len(r.Warnings) > 0 {
			fmt.Println("  Warnings:")
			for _, w := range r.Warnings {
				fmt.Printf("    ! %s\n", w)
			}
		}
		if r.ScorePreview.ICPMatch {
			fmt.Printf("  ICP Match: %s (+%d)\n", r.ScorePreview.ICPName, r.ScorePreview.ICPBonus)
		}
		if adj := r.ScorePreview.EstimatedAdjustment; adj != 0 {
			fmt.Printf("  Score Adjustment: %+d\n", adj)
		}
	}
}

func init() {
	auditCmd.Flags().StringVar(&auditMode, "mode", "online", "duplicate check mode (online or offline)")
	auditCmd.Flags().BoolVar(&auditSkipNetwork, "skip-network", false, "skip network-dependent checks (domain age, MX, website, DNSBL)")
	auditCmd.Flags().StringVarP(&auditOutput, "output", "o", "", "output file for results (JSON)")
	auditCmd.Flags().BoolVarP(&auditQuiet, "quiet", "q", false, "only output JSON, no summary")
	auditCmd.Flags().BoolVar(&auditNoHistory, "no-history", false, "do not record this run in the local history database")
	rootCmd.AddCommand(auditCmd)
}
