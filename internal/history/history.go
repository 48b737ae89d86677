// Package history persists audit runs to a local SQLite database so past
// results can be reviewed without re-auditing.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/leadgate/lead-audit/internal/lead"
)

// Store records audit runs and their per-lead results.
type Store struct {
	db *sql.DB
}

// Run summarizes one invocation of the auditor.
type Run struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Leads     int       `json:"leads"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	CreatedAt time.Time `json:"created_at"`
}

// Result is one lead's stored outcome within a run.
type Result struct {
	RunID  string           `json:"run_id"`
	Index  int              `json:"index"`
	Email  string           `json:"email"`
	Result lead.AuditResult `json:"result"`
}

// Open opens (or creates) the history database at path and configures WAL
// mode.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "history: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "history: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS audit_runs (
	id         TEXT PRIMARY KEY,
	mode       TEXT NOT NULL,
	leads      INTEGER NOT NULL,
	passed     INTEGER NOT NULL,
	failed     INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS audit_results (
	run_id   TEXT NOT NULL REFERENCES audit_runs(id),
	idx      INTEGER NOT NULL,
	email    TEXT NOT NULL,
	result   TEXT NOT NULL,
	PRIMARY KEY (run_id, idx)
);

CREATE INDEX IF NOT EXISTS idx_audit_runs_created_at ON audit_runs(created_at);
CREATE INDEX IF NOT EXISTS idx_audit_results_email ON audit_results(email);
`

// Migrate creates the schema.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "history: migrate")
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun stores a run summary and every per-lead result in one
// transaction. emails must be index-aligned with results.
func (s *Store) RecordRun(ctx context.Context, mode string, emails []string, results []lead.AuditResult) (*Run, error) {
	if len(emails) != len(results) {
		return nil, eris.Errorf("history: %d emails for %d results", len(emails), len(results))
	}

	run := &Run{
		ID:        uuid.New().String(),
		Mode:      mode,
		Leads:     len(results),
		CreatedAt: time.Now().UTC(),
	}
	for _, r := range results {
		if r.Passed {
			run.Passed++
		} else {
			run.Failed++
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, eris.Wrap(err, "history: begin tx")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO audit_runs (id, mode, leads, passed, failed, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Mode, run.Leads, run.Passed, run.Failed, run.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "history: insert run")
	}

	for i, r := range results {
		resultJSON, err := json.Marshal(r)
		if err != nil {
			return nil, eris.Wrap(err, "history: marshal result")
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO audit_results (run_id, idx, email, result) VALUES (?, ?, ?, ?)`,
			run.ID, i, emails[i], string(resultJSON),
		)
		if err != nil {
			return nil, eris.Wrapf(err, "history: insert result %d", i)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, eris.Wrap(err, "history: commit")
	}
	return run, nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, leads, passed, failed, created_at
		 FROM audit_runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "history: recent runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Mode, &r.Leads, &r.Passed, &r.Failed, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "history: scan run")
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunResults returns the stored per-lead results for a run in input order.
func (s *Store) RunResults(ctx context.Context, runID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, idx, email, result FROM audit_results WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, eris.Wrap(err, "history: run results")
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var resultJSON string
		if err := rows.Scan(&r.RunID, &r.Index, &r.Email, &resultJSON); err != nil {
			return nil, eris.Wrap(err, "history: scan result")
		}
		if err := json.Unmarshal([]byte(resultJSON), &r.Result); err != nil {
			return nil, eris.Wrap(err, "history: unmarshal result")
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
