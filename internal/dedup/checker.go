package dedup

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/leadgate/lead-audit/internal/fingerprint"
	"github.com/leadgate/lead-audit/internal/lead"
	"github.com/leadgate/lead-audit/internal/translog"
)

// Mode selects which tier answers duplicate checks first.
type Mode string

// Checker modes.
const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// Log is the transparency-log surface the checker needs.
type Log interface {
	LatestDecision(ctx context.Context, column, hash string) (string, bool, error)
	HasPendingSubmission(ctx context.Context, emailHash string) (bool, error)
	DecisionsSince(ctx context.Context, since time.Time) ([]translog.Decision, error)
}

// Checker resolves duplicate status for a lead's identity fields. In online
// mode it queries the transparency log and falls back to the local cache on
// any failure; in offline mode it consults only the cache.
type Checker struct {
	mode  Mode
	log   Log
	cache *Cache
}

// NewChecker creates a Checker. log may be nil in offline mode.
func NewChecker(mode Mode, log Log, cache *Cache) *Checker {
	return &Checker{mode: mode, log: log, cache: cache}
}

// Check computes the canonical fingerprints and resolves duplicate status.
// An unknown fingerprint is never a duplicate.
func (c *Checker) Check(ctx context.Context, email, linkedin, companyLinkedin string) lead.DuplicateStatus {
	emailHash := ""
	if email != "" {
		emailHash = fingerprint.EmailHash(email)
	}
	linkedinHash := fingerprint.LinkedInComboHash(linkedin, companyLinkedin)

	if c.mode == ModeOnline && c.log != nil {
		status, err := c.checkOnline(ctx, emailHash, linkedinHash)
		if err == nil {
			return status
		}
		zap.L().Warn("online duplicate check failed, falling back to cache", zap.Error(err))
	}

	return c.checkCache(emailHash, linkedinHash)
}

func (c *Checker) checkOnline(ctx context.Context, emailHash, linkedinHash string) (lead.DuplicateStatus, error) {
	if emailHash != "" {
		decision, found, err := c.log.LatestDecision(ctx, translog.ColumnEmailHash, emailHash)
		if err != nil {
			return lead.DuplicateStatus{}, err
		}
		if found {
			if decision == "approve" {
				return status(true, lead.DupEmailApproved, false, lead.SourceOnline), nil
			}
			return status(false, lead.DupEmailDenied, true, lead.SourceOnline), nil
		}
	}

	if linkedinHash != "" {
		decision, found, err := c.log.LatestDecision(ctx, translog.ColumnLinkedInHash, linkedinHash)
		if err != nil {
			return lead.DuplicateStatus{}, err
		}
		if found && decision == "approve" {
			return status(true, lead.DupLinkedInApproved, false, lead.SourceOnline), nil
		}
	}

	if emailHash != "" {
		pending, err := c.log.HasPendingSubmission(ctx, emailHash)
		if err != nil {
			return lead.DuplicateStatus{}, err
		}
		if pending {
			return status(true, lead.DupEmailPending, false, lead.SourceOnline), nil
		}
	}

	return status(false, lead.DupNew, true, lead.SourceOnline), nil
}

func (c *Checker) checkCache(emailHash, linkedinHash string) lead.DuplicateStatus {
	if emailHash != "" {
		if info, ok := c.cache.EmailDecision(emailHash); ok {
			if info.Decision == "approve" {
				return status(true, lead.DupEmailApproved, false, lead.SourceCache)
			}
			return status(false, lead.DupEmailDenied, true, lead.SourceCache)
		}
	}

	if linkedinHash != "" {
		if info, ok := c.cache.LinkedInDecision(linkedinHash); ok && info.Decision == "approve" {
			return status(true, lead.DupLinkedInApproved, false, lead.SourceCache)
		}
	}

	return status(false, lead.DupNew, true, lead.SourceCache)
}

func status(dup bool, reason lead.DupReason, resubmit bool, source lead.DupSource) lead.DuplicateStatus {
	return lead.DuplicateStatus{IsDuplicate: dup, Reason: reason, CanResubmit: resubmit, Source: source}
}

// SyncCache pulls recent consensus decisions into the local cache and
// persists it. Returns the number of email fingerprints refreshed.
func (c *Checker) SyncCache(ctx context.Context, since time.Time) (int, error) {
	decisions, err := c.log.DecisionsSince(ctx, since)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, d := range decisions {
		c.cache.Put(d.EmailHash, d.LinkedInHash, d.FinalDecision, d.CreatedAt)
		if d.EmailHash != "" {
			count++
		}
	}

	c.cache.MarkSynced(time.Now())
	if err := c.cache.Save(); err != nil {
		return 0, err
	}

	zap.L().Info("duplicate cache synced",
		zap.Int("email_fingerprints", count),
		zap.Int("decisions", len(decisions)))
	return count, nil
}
