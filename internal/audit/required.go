package audit

import (
	"strings"

	"github.com/leadgate/lead-audit/internal/lead"
	"github.com/leadgate/lead-audit/internal/rules"
)

// ValidateRequiredFields checks that every required field is present and
// non-blank. The state field becomes required only when the country matches
// a US alias.
func ValidateRequiredFields(rec lead.Record) []string {
	var errs []string

	for _, field := range rules.RequiredFields {
		if !rec.Has(field) {
			errs = append(errs, "missing_field:"+field)
		}
	}

	country := strings.ToLower(rec.Str("country"))
	for _, alias := range rules.USCountryAliases {
		if strings.Contains(country, alias) {
			if !rec.Has("state") {
				errs = append(errs, "missing_field:state (required for US leads)")
			}
			break
		}
	}

	return errs
}
