// Package netcheck runs the advisory network probes: MX presence, domain
// age, website reachability, and the Spamhaus DBL blocklist. Results are
// warnings only and never block an audit.
package netcheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/idna"
	"golang.org/x/sync/errgroup"
)

// minDomainAgeDays is the validator's freshly-registered-domain threshold.
const minDomainAgeDays = 7

// Prober is the network capability the advisor runs on. A nil Prober means
// the environment cannot perform network checks at all.
type Prober interface {
	// MXRecords returns the number of MX records for the domain.
	MXRecords(ctx context.Context, domain string) (int, error)
	// DomainCreated returns the registration time when WHOIS exposes one.
	DomainCreated(ctx context.Context, domain string) (time.Time, bool, error)
	// Head issues a HEAD request, following redirects, and returns the status.
	Head(ctx context.Context, url string) (int, error)
	// Blocklisted reports whether the domain is on the Spamhaus DBL.
	Blocklisted(ctx context.Context, domain string) (bool, error)
}

// Advisor turns probe outcomes into advisory warnings.
type Advisor struct {
	prober Prober
}

// NewAdvisor creates an Advisor over the given capability.
func NewAdvisor(p Prober) *Advisor {
	return &Advisor{prober: p}
}

// Advise probes the lead's email domain and website. Probes run concurrently
// but warnings keep a fixed order: MX, domain age, website, blocklist. Probe
// failures degrade silently except for MX, whose failure is itself a signal.
func (a *Advisor) Advise(ctx context.Context, website, email string) []string {
	if a == nil || a.prober == nil {
		return []string{"network_check_skipped:no network capability available"}
	}

	emailDomain := emailDomain(email)
	websiteDomain := websiteDomain(website)

	ageDomain := websiteDomain
	if ageDomain == "" {
		ageDomain = emailDomain
	}

	// One warning slot per probe keeps output order deterministic.
	slots := make([][]string, 4)
	g, gctx := errgroup.WithContext(ctx)

	if emailDomain != "" {
		g.Go(func() error {
			n, err := a.prober.MXRecords(gctx, emailDomain)
			switch {
			case err != nil:
				slots[0] = []string{"mx_record_check_failed:" + emailDomain}
			case n == 0:
				slots[0] = []string{"mx_record_missing:" + emailDomain}
			}
			return nil
		})
	}

	if ageDomain != "" {
		g.Go(func() error {
			created, found, err := a.prober.DomainCreated(gctx, ageDomain)
			if err != nil || !found {
				return nil // WHOIS failures are common
			}
			ageDays := int(time.Since(created).Hours() / 24)
			if ageDays < minDomainAgeDays {
				slots[1] = []string{fmt.Sprintf("domain_too_new:%s (%d days, need >= %d)",
					ageDomain, ageDays, minDomainAgeDays)}
			}
			return nil
		})
	}

	if website != "" {
		g.Go(func() error {
			status, err := a.prober.Head(gctx, website)
			switch {
			case err != nil:
				slots[2] = []string{"website_unreachable:" + website}
			case status != 200:
				slots[2] = []string{fmt.Sprintf("website_not_accessible:%s (HTTP %d)", website, status)}
			}
			return nil
		})
	}

	if emailDomain != "" {
		g.Go(func() error {
			listed, err := a.prober.Blocklisted(gctx, emailDomain)
			if err == nil && listed {
				slots[3] = []string{fmt.Sprintf("domain_blacklisted:%s (Spamhaus DBL)", emailDomain)}
			}
			return nil
		})
	}

	_ = g.Wait()

	warnings := []string{}
	for _, s := range slots {
		warnings = append(warnings, s...)
	}
	return warnings
}

// emailDomain extracts and canonicalizes the domain part of an email.
func emailDomain(email string) string {
	_, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" {
		return ""
	}
	return canonicalDomain(domain)
}

// websiteDomain extracts the host from a URL the same forgiving way the
// consensus layer does: strip the scheme, cut at the first path or query
// separator.
func websiteDomain(website string) string {
	w := strings.ToLower(strings.TrimSpace(website))
	if w == "" {
		return ""
	}
	w = strings.TrimPrefix(w, "https://")
	w = strings.TrimPrefix(w, "http://")
	w, _, _ = strings.Cut(w, "/")
	w, _, _ = strings.Cut(w, "?")
	return canonicalDomain(w)
}

// canonicalDomain lower-cases and punycodes internationalized domains so DNS
// and WHOIS queries see the wire form.
func canonicalDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return domain
	}
	return ascii
}
