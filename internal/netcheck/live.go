package netcheck

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultResolver = "8.8.8.8:53"
	ianaWhoisServer = "whois.iana.org:43"
	probeUserAgent  = "Mozilla/5.0 (compatible; lead-audit/1.0)"
)

// LiveProber performs real DNS, WHOIS, and HTTP probes. All outbound traffic
// shares one rate limiter so batch audits stay polite.
type LiveProber struct {
	resolver string
	dns      *dns.Client
	http     *http.Client
	limiter  *rate.Limiter
	timeout  time.Duration
}

// LiveOption adjusts a LiveProber.
type LiveOption func(*LiveProber)

// WithResolver overrides the DNS server address (host:port).
func WithResolver(addr string) LiveOption {
	return func(p *LiveProber) {
		if addr != "" {
			p.resolver = addr
		}
	}
}

// WithTimeout sets the per-probe timeout.
func WithTimeout(d time.Duration) LiveOption {
	return func(p *LiveProber) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithRateLimit caps outbound probes per second.
func WithRateLimit(perSec float64) LiveOption {
	return func(p *LiveProber) {
		if perSec > 0 {
			p.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
		}
	}
}

// NewLiveProber builds a prober using the system resolver when one can be
// read from resolv.conf, falling back to a public resolver.
func NewLiveProber(opts ...LiveOption) *LiveProber {
	p := &LiveProber{
		resolver: systemResolver(),
		dns:      &dns.Client{},
		limiter:  rate.NewLimiter(rate.Limit(5), 1),
		timeout:  5 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.dns.Timeout = p.timeout
	p.http = &http.Client{Timeout: p.timeout}
	return p
}

func systemResolver() string {
	cfg, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(cfg.Servers) == 0 {
		return defaultResolver
	}
	return net.JoinHostPort(cfg.Servers[0], cfg.Port)
}

// MXRecords queries the domain's MX records.
func (p *LiveProber) MXRecords(ctx context.Context, domain string) (int, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeMX)
	msg.RecursionDesired = true

	resp, _, err := p.dns.ExchangeContext(ctx, msg, p.resolver)
	if err != nil {
		return 0, eris.Wrapf(err, "netcheck: MX query for %s", domain)
	}
	if resp.Rcode == dns.RcodeNameError {
		return 0, nil
	}
	if resp.Rcode != dns.RcodeSuccess {
		return 0, eris.Errorf("netcheck: MX query for %s: rcode %s", domain, dns.RcodeToString[resp.Rcode])
	}

	count := 0
	for _, rr := range resp.Answer {
		if _, ok := rr.(*dns.MX); ok {
			count++
		}
	}
	return count, nil
}

// Blocklisted queries the Spamhaus DBL. Any A record means listed; NXDOMAIN
// means clean.
func (p *LiveProber) Blocklisted(ctx context.Context, domain string) (bool, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return false, err
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain+".dbl.spamhaus.org"), dns.TypeA)
	msg.RecursionDesired = true

	resp, _, err := p.dns.ExchangeContext(ctx, msg, p.resolver)
	if err != nil {
		return false, eris.Wrapf(err, "netcheck: DBL query for %s", domain)
	}
	if resp.Rcode == dns.RcodeNameError {
		return false, nil
	}
	return len(resp.Answer) > 0, nil
}

// Head issues a HEAD request and returns the final status code after
// redirects.
func (p *LiveProber) Head(ctx context.Context, url string) (int, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, eris.Wrapf(err, "netcheck: build HEAD %s", url)
	}
	req.Header.Set("User-Agent", probeUserAgent)

	resp, err := p.http.Do(req)
	if err != nil {
		return 0, eris.Wrapf(err, "netcheck: HEAD %s", url)
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// whoisCreationKeys are the registration-date labels seen across registry
// WHOIS formats.
var whoisCreationKeys = []string{
	"creation date:", "created:", "created on:", "registered on:", "registration time:",
}

var whoisDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

// DomainCreated resolves the registry WHOIS server through IANA and parses
// the creation date from the registry response. Many registries hide or
// rate-limit this data, so absence is normal.
func (p *LiveProber) DomainCreated(ctx context.Context, domain string) (time.Time, bool, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return time.Time{}, false, err
	}

	referral, err := p.whoisQuery(ctx, ianaWhoisServer, domain)
	if err != nil {
		return time.Time{}, false, err
	}

	server := whoisField(referral, "refer:")
	if server == "" {
		return time.Time{}, false, nil
	}

	body, err := p.whoisQuery(ctx, net.JoinHostPort(server, "43"), domain)
	if err != nil {
		return time.Time{}, false, err
	}

	created, ok := parseWhoisCreation(body)
	if !ok {
		zap.L().Debug("whois response had no creation date", zap.String("domain", domain))
		return time.Time{}, false, nil
	}
	return created, true, nil
}

// whoisQuery speaks the bare WHOIS protocol: send the query line, read the
// response until EOF.
func (p *LiveProber) whoisQuery(ctx context.Context, server, query string) (string, error) {
	d := net.Dialer{Timeout: p.timeout}
	conn, err := d.DialContext(ctx, "tcp", server)
	if err != nil {
		return "", eris.Wrapf(err, "netcheck: dial whois %s", server)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(p.timeout))

	if _, err := conn.Write([]byte(query + "\r\n")); err != nil {
		return "", eris.Wrapf(err, "netcheck: whois query %s", server)
	}

	var sb strings.Builder
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", eris.Wrapf(err, "netcheck: read whois %s", server)
	}
	return sb.String(), nil
}

func whoisField(body, key string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(trimmed), key) {
			return strings.TrimSpace(trimmed[len(key):])
		}
	}
	return ""
}

func parseWhoisCreation(body string) (time.Time, bool) {
	for _, line := range strings.Split(body, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		for _, key := range whoisCreationKeys {
			if !strings.HasPrefix(lower, key) {
				continue
			}
			value := strings.TrimSpace(line[strings.Index(strings.ToLower(line), key)+len(key):])
			for _, layout := range whoisDateLayouts {
				if t, err := time.Parse(layout, value); err == nil {
					return t, true
				}
			}
		}
	}
	return time.Time{}, false
}
