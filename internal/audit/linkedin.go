package audit

import (
	"github.com/leadgate/lead-audit/internal/fingerprint"
)

// ValidateLinkedInURLs requires both the profile and company URLs to
// canonicalize.
func ValidateLinkedInURLs(linkedin, companyLinkedin string) []string {
	var errs []string
	if fingerprint.NormalizeLinkedInURL(linkedin, fingerprint.ProfileURL) == "" {
		errs = append(errs, "linkedin_invalid_format:"+linkedin)
	}
	if fingerprint.NormalizeLinkedInURL(companyLinkedin, fingerprint.CompanyURL) == "" {
		errs = append(errs, "company_linkedin_invalid_format:"+companyLinkedin)
	}
	return errs
}
