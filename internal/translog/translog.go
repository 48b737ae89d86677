// Package translog queries the marketplace transparency log, the
// authoritative record of submission and consensus events.
package translog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Event types recorded in the transparency log.
const (
	EventSubmission      = "SUBMISSION"
	EventConsensusResult = "CONSENSUS_RESULT"
)

// Hash columns the log can be filtered by.
const (
	ColumnEmailHash    = "email_hash"
	ColumnLinkedInHash = "linkedin_combo_hash"
)

// Pool is the subset of pgxpool.Pool the client needs.
type Pool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// Decision is one consensus event, keyed by its fingerprint hashes.
type Decision struct {
	EmailHash     string    `json:"email_hash"`
	LinkedInHash  string    `json:"linkedin_combo_hash"`
	FinalDecision string    `json:"final_decision"`
	CreatedAt     time.Time `json:"created_at"`
}

// Client provides read access to the transparency_log table.
type Client struct {
	pool Pool
}

// NewClient creates a Client backed by the given connection pool.
func NewClient(pool Pool) *Client {
	return &Client{pool: pool}
}

// Connect opens a pgx pool against the transparency log and verifies it with
// a ping.
func Connect(ctx context.Context, connString string) (*Client, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "translog: parse config")
	}
	cfg.MaxConns = 4
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "translog: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "translog: ping")
	}
	return &Client{pool: pool}, nil
}

// Close releases the underlying pool.
func (c *Client) Close() {
	c.pool.Close()
}

// LatestDecision returns the final decision of the most recent consensus
// event for the given hash, or found=false when the hash has never been
// decided. The column must be one of the hash column constants; anything else
// is rejected before touching the database.
func (c *Client) LatestDecision(ctx context.Context, column, hash string) (decision string, found bool, err error) {
	if column != ColumnEmailHash && column != ColumnLinkedInHash {
		return "", false, eris.Errorf("translog: unsupported filter column %q", column)
	}

	err = c.pool.QueryRow(ctx,
		`SELECT COALESCE(payload->>'final_decision', 'unknown') FROM transparency_log
		 WHERE `+column+` = $1 AND event_type = $2
		 ORDER BY created_at DESC LIMIT 1`,
		hash, EventConsensusResult,
	).Scan(&decision)
	if err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, eris.Wrapf(err, "translog: latest decision by %s", column)
	}
	return decision, true, nil
}

// HasPendingSubmission reports whether a submission event exists for the
// email hash. Callers check this only after LatestDecision comes back empty,
// so a hit means the lead is still in consensus.
func (c *Client) HasPendingSubmission(ctx context.Context, emailHash string) (bool, error) {
	var exists bool
	err := c.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM transparency_log
		   WHERE email_hash = $1 AND event_type = $2
		 )`,
		emailHash, EventSubmission,
	).Scan(&exists)
	if err != nil {
		return false, eris.Wrap(err, "translog: pending submission")
	}
	return exists, nil
}

// DecisionsSince returns consensus events created at or after the cutoff,
// most recent first. Used to refresh the offline cache.
func (c *Client) DecisionsSince(ctx context.Context, since time.Time) ([]Decision, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT COALESCE(email_hash, ''), COALESCE(linkedin_combo_hash, ''),
		        COALESCE(payload->>'final_decision', 'unknown'), created_at
		 FROM transparency_log
		 WHERE event_type = $1 AND created_at >= $2
		 ORDER BY created_at DESC`,
		EventConsensusResult, since,
	)
	if err != nil {
		return nil, eris.Wrap(err, "translog: decisions since")
	}
	defer rows.Close()

	var decisions []Decision
	for rows.Next() {
		var d Decision
		if err := rows.Scan(&d.EmailHash, &d.LinkedInHash, &d.FinalDecision, &d.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "translog: scan decision")
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}
