package audit

import (
	"github.com/leadgate/lead-audit/internal/lead"
)

// ValidateAttestation checks the terms-attestation fields: wallet and terms
// hash must be present, and the three consent booleans must be exactly true.
// A false, absent, or non-boolean value all fail the same way.
func ValidateAttestation(rec lead.Record) []string {
	var errs []string

	if !rec.Has("wallet_ss58") {
		errs = append(errs, "missing_field:wallet_ss58")
	}
	if !rec.Has("terms_version_hash") {
		errs = append(errs, "missing_field:terms_version_hash")
	}

	for _, field := range []string{"lawful_collection", "no_restricted_sources", "license_granted"} {
		if !rec.BoolTrue(field) {
			errs = append(errs, "attestation_false_or_missing:"+field)
		}
	}

	return errs
}
