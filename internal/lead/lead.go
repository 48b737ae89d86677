// Package lead defines the lead record shape and the audit result contracts.
package lead

import (
	"fmt"
	"strings"
)

// Record is a raw lead as submitted: a loose field-to-value mapping rather
// than a fixed struct. Absent or malformed values read as empty.
type Record map[string]any

// Str returns the trimmed string form of a field, or "" when absent or nil.
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Has reports whether a field is present with a non-blank value.
func (r Record) Has(key string) bool {
	return r.Str(key) != ""
}

// BoolTrue reports whether a field is the boolean true. False, absent, and
// non-boolean values all report false.
func (r Record) BoolTrue(key string) bool {
	v, ok := r[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// DupReason explains a duplicate-check outcome.
type DupReason string

// Duplicate-check reasons.
const (
	DupNew              DupReason = "new"
	DupEmailApproved    DupReason = "email_already_approved"
	DupEmailDenied      DupReason = "email_was_denied_can_resubmit"
	DupLinkedInApproved DupReason = "linkedin_combo_already_approved"
	DupEmailPending     DupReason = "email_pending_processing"
)

// DupSource identifies which tier answered a duplicate check.
type DupSource string

// Duplicate-check sources.
const (
	SourceOnline DupSource = "online"
	SourceCache  DupSource = "cache"
)

// DuplicateStatus is the outcome of the duplicate-fingerprint check.
type DuplicateStatus struct {
	IsDuplicate bool      `json:"is_duplicate"`
	Reason      DupReason `json:"reason"`
	CanResubmit bool      `json:"can_resubmit"`
	Source      DupSource `json:"source"`
}

// ScorePreview estimates the bonus/penalty the consensus layer would apply.
type ScorePreview struct {
	ICPMatch            bool     `json:"icp_match"`
	ICPName             string   `json:"icp_name"`
	ICPBonus            int      `json:"icp_bonus"`
	SizeAdjustment      int      `json:"size_adjustment"`
	SizeReason          string   `json:"size_reason"`
	EstimatedAdjustment int      `json:"estimated_adjustment"`
	Recommendations     []string `json:"recommendations"`
}

// AuditResult aggregates every stage outcome for one lead. It is constructed
// once per audit call and never mutated afterwards.
type AuditResult struct {
	Passed          bool            `json:"passed"`
	BlockingErrors  []string        `json:"blocking_errors"`
	Warnings        []string        `json:"warnings"`
	DuplicateStatus DuplicateStatus `json:"duplicate_status"`
	ScorePreview    ScorePreview    `json:"score_preview"`
}
