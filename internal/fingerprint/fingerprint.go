// Package fingerprint computes the content-addressed identity hashes used
// for duplicate detection, plus the LinkedIn URL canonicalization they
// depend on.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// URLKind selects which LinkedIn path form a URL must canonicalize to.
type URLKind string

// Supported LinkedIn URL kinds.
const (
	ProfileURL URLKind = "profile"
	CompanyURL URLKind = "company"
)

var (
	schemeRe  = regexp.MustCompile(`^https?://`)
	wwwRe     = regexp.MustCompile(`^www\.`)
	slashesRe = regexp.MustCompile(`/+`)
	profileRe = regexp.MustCompile(`linkedin\.com/in/([^/]+)`)
	companyRe = regexp.MustCompile(`linkedin\.com/company/([^/]+)`)
)

// NormalizeLinkedInURL reduces a LinkedIn URL to its canonical
// `linkedin.com/in/<slug>` or `linkedin.com/company/<slug>` form: lower-cased,
// scheme and www. stripped, query/fragment discarded, duplicate and trailing
// slashes removed. Returns "" for anything not under the linkedin.com host.
// Idempotent: normalizing a canonical form yields itself.
func NormalizeLinkedInURL(raw string, kind URLKind) string {
	if raw == "" {
		return ""
	}

	u := strings.ToLower(strings.TrimSpace(raw))
	u = schemeRe.ReplaceAllString(u, "")
	u = wwwRe.ReplaceAllString(u, "")

	if !strings.HasPrefix(u, "linkedin.com") {
		return ""
	}

	u, _, _ = strings.Cut(u, "?")
	u, _, _ = strings.Cut(u, "#")
	u = slashesRe.ReplaceAllString(u, "/")
	u = strings.TrimRight(u, "/")

	switch kind {
	case ProfileURL:
		if m := profileRe.FindStringSubmatch(u); m != nil {
			return "linkedin.com/in/" + m[1]
		}
	case CompanyURL:
		if m := companyRe.FindStringSubmatch(u); m != nil {
			return "linkedin.com/company/" + m[1]
		}
	}
	return ""
}

// EmailHash returns the SHA-256 hex digest of the lower-cased, trimmed email.
func EmailHash(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// LinkedInComboHash returns the SHA-256 hex digest over the canonical profile
// and company URLs joined by "||". Returns "" if either URL fails to
// canonicalize, so a malformed pair never produces a false fingerprint.
func LinkedInComboHash(profile, company string) string {
	p := NormalizeLinkedInURL(profile, ProfileURL)
	c := NormalizeLinkedInURL(company, CompanyURL)
	if p == "" || c == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(p + "||" + c))
	return hex.EncodeToString(sum[:])
}
