package audit

import (
	"regexp"
	"strings"

	"github.com/leadgate/lead-audit/internal/rules"
)

var (
	emailASCIIRe   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	emailUnicodeRe = regexp.MustCompile(`^[\p{L}\p{N}._%+-]+@[\p{L}\p{N}.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateEmail checks format, alias prevention, blocked prefixes, free and
// disposable domains, and the name-match heuristic. The name match is only
// enforced when both first and last name are long enough to be meaningful.
func ValidateEmail(email, first, last string) []string {
	if email == "" {
		return []string{"email_empty"}
	}

	email = strings.TrimSpace(email)
	lower := strings.ToLower(email)

	var errs []string

	// ASCII RFC-5322-like form, or the internationalized variant.
	if !emailASCIIRe.MatchString(email) && !emailUnicodeRe.MatchString(email) {
		errs = append(errs, "email_invalid_format")
	}

	local, domain, hasAt := strings.Cut(email, "@")
	if !hasAt {
		local = email
		domain = ""
	}

	// Plus addressing would let one inbox masquerade as many leads.
	if strings.Contains(local, "+") {
		errs = append(errs, "email_plus_alias")
	}

	for _, prefix := range rules.BlockedEmailPrefixes {
		if strings.HasPrefix(lower, prefix) {
			errs = append(errs, "email_blocked_prefix:"+strings.TrimSuffix(prefix, "@"))
			break
		}
	}

	domainLower := strings.ToLower(domain)
	if rules.FreeEmailDomains[domainLower] {
		errs = append(errs, "email_free_domain:"+domainLower)
	}
	if rules.DisposableEmailDomains[domainLower] {
		errs = append(errs, "email_disposable:"+domainLower)
	}

	localLower := strings.ToLower(local)
	firstLower := strings.ToLower(strings.TrimSpace(first))
	lastLower := strings.ToLower(strings.TrimSpace(last))

	nameFound := (len(firstLower) >= 3 && strings.Contains(localLower, firstLower)) ||
		(len(lastLower) >= 3 && strings.Contains(localLower, lastLower))

	if !nameFound && len(firstLower) >= 3 && len(lastLower) >= 3 {
		errs = append(errs, "email_no_name_match")
	}

	return errs
}
