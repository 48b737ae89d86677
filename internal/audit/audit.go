package audit

import (
	"context"
	"fmt"

	"github.com/leadgate/lead-audit/internal/lead"
	"github.com/leadgate/lead-audit/internal/score"
	"github.com/leadgate/lead-audit/internal/taxonomy"
)

// DupChecker resolves duplicate status for a lead's identity fields.
type DupChecker interface {
	Check(ctx context.Context, email, linkedin, companyLinkedin string) lead.DuplicateStatus
}

// NetworkAdvisor runs best-effort network probes and returns advisory
// warnings. Implementations never block an audit.
type NetworkAdvisor interface {
	Advise(ctx context.Context, website, email string) []string
}

// Auditor runs the full validation pass over a lead record. Every stage
// always runs; earlier failures never suppress later checks.
type Auditor struct {
	Taxonomy *taxonomy.Resolver
	Dups     DupChecker
	Network  NetworkAdvisor

	// SkipNetwork disables the advisory network stage entirely.
	SkipNetwork bool
}

// Audit evaluates one record and returns the aggregated result. Each call is
// a fresh, independent evaluation.
func (a *Auditor) Audit(ctx context.Context, rec lead.Record) lead.AuditResult {
	blocking := []string{}
	warnings := []string{}

	blocking = append(blocking, ValidateAttestation(rec)...)
	blocking = append(blocking, ValidateRequiredFields(rec)...)
	blocking = append(blocking, ValidateSourceProvenance(rec)...)

	if !a.SkipNetwork && a.Network != nil {
		warnings = append(warnings, a.Network.Advise(ctx, rec.Str("website"), rec.Str("email"))...)
	}

	blocking = append(blocking, ValidateRole(rec.Str("role"))...)

	descErrs, descWarnings := ValidateDescription(rec.Str("description"))
	blocking = append(blocking, descErrs...)
	warnings = append(warnings, descWarnings...)

	blocking = append(blocking, ValidateEmail(rec.Str("email"), rec.Str("first"), rec.Str("last"))...)
	blocking = append(blocking, ValidateEmployeeCount(rec.Str("employee_count"))...)

	if a.Taxonomy != nil {
		blocking = append(blocking, a.Taxonomy.ValidatePair(rec.Str("industry"), rec.Str("sub_industry"))...)
	}

	blocking = append(blocking, ValidateLinkedInURLs(rec.Str("linkedin"), rec.Str("company_linkedin"))...)

	region := rec.Str("region")
	if _, ok := rec["region"]; !ok {
		region = rec.Str("state")
	}
	blocking = append(blocking, ValidateLocation(rec.Str("city"), rec.Str("country"), region)...)

	dupStatus := lead.DuplicateStatus{Reason: lead.DupNew, CanResubmit: true, Source: lead.SourceCache}
	if a.Dups != nil {
		dupStatus = a.Dups.Check(ctx, rec.Str("email"), rec.Str("linkedin"), rec.Str("company_linkedin"))
	}
	if dupStatus.IsDuplicate && !dupStatus.CanResubmit {
		blocking = append(blocking, fmt.Sprintf("duplicate:%s", dupStatus.Reason))
	}

	preview := score.Preview(
		rec.Str("sub_industry"),
		rec.Str("role"),
		rec.Str("country"),
		rec.Str("city"),
		rec.Str("employee_count"),
	)

	return lead.AuditResult{
		Passed:          len(blocking) == 0,
		BlockingErrors:  blocking,
		Warnings:        warnings,
		DuplicateStatus: dupStatus,
		ScorePreview:    preview,
	}
}
