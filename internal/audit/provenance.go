package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leadgate/lead-audit/internal/lead"
	"github.com/leadgate/lead-audit/internal/rules"
)

var licenseHashRe = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)

// ValidateSourceProvenance checks source_url against the data-broker
// denylist, source_type against the accepted enumeration, and the license
// document hash when the source is a licensed resale.
func ValidateSourceProvenance(rec lead.Record) []string {
	var errs []string

	sourceURL := rec.Str("source_url")
	if sourceURL == "" {
		errs = append(errs, "missing_field:source_url")
	} else {
		lower := strings.ToLower(sourceURL)
		for _, restricted := range rules.RestrictedSources {
			if strings.Contains(lower, restricted) {
				errs = append(errs, "restricted_source:"+restricted)
				break
			}
		}
	}

	sourceType := rec.Str("source_type")
	switch {
	case sourceType == "":
		errs = append(errs, "missing_field:source_type")
	case !validSourceType(sourceType):
		errs = append(errs, fmt.Sprintf("source_type_invalid:%s (valid: %s)",
			sourceType, strings.Join(rules.ValidSourceTypes, ", ")))
	}

	if sourceType == "licensed_resale" {
		licenseHash := rec.Str("license_doc_hash")
		switch {
		case licenseHash == "":
			errs = append(errs, "missing_license_doc_hash (required for licensed_resale)")
		case !licenseHashRe.MatchString(licenseHash):
			errs = append(errs, "license_doc_hash_invalid_format (must be 64 hex chars SHA-256)")
		}
	}

	return errs
}

func validSourceType(s string) bool {
	for _, v := range rules.ValidSourceTypes {
		if s == v {
			return true
		}
	}
	return false
}
