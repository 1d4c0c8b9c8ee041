package trust

import (
	"net/url"
	"strings"
)

// Scope controls how aggressively candidate hosts are prefiltered before any
// page is fetched.
type Scope int

const (
	// ScopeWeb disables prefiltering; every candidate is fetched and scored.
	ScopeWeb Scope = iota
	// ScopeWide admits institutional suffixes, core institutions, scholarly
	// indexes and major publishers.
	ScopeWide
	// ScopeStrict admits institutional suffixes and core institutions only.
	ScopeStrict
)

// ParseScope maps a query-parameter value onto a Scope. Unknown values
// collapse to ScopeWeb.
func ParseScope(s string) Scope {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wide":
		return ScopeWide
	case "strict":
		return ScopeStrict
	default:
		return ScopeWeb
	}
}

func (s Scope) String() string {
	switch s {
	case ScopeWide:
		return "wide"
	case ScopeStrict:
		return "strict"
	default:
		return "web"
	}
}

// Classifier answers host-trust questions against the curated tables. It is
// pure and read-only; a single instance can be shared across requests.
type Classifier struct {
	core       []string
	scholarly  []string
	publishers []string
}

func NewClassifier() *Classifier {
	return &Classifier{
		core:       coreInstitutions,
		scholarly:  scholarlyIndexes,
		publishers: majorPublishers,
	}
}

// IsTrusted reports whether host passes the prefilter for the given scope.
func (c *Classifier) IsTrusted(host string, scope Scope) bool {
	host = NormalizeHost(host)
	if host == "" {
		return false
	}
	if scope == ScopeWeb {
		return true
	}
	if hasInstitutionalSuffix(host) {
		return true
	}
	switch scope {
	case ScopeStrict:
		return matchAnyEntry(host, c.core)
	case ScopeWide:
		return matchAnyEntry(host, c.core) ||
			matchAnyEntry(host, c.scholarly) ||
			matchAnyEntry(host, c.publishers)
	}
	return false
}

// TrustedURL is IsTrusted over a raw URL. Malformed URLs classify as
// untrusted; this never returns an error.
func (c *Classifier) TrustedURL(rawURL string, scope Scope) bool {
	return c.IsTrusted(HostOf(rawURL), scope)
}

// IsInstitutional reports whether host carries a government/education/
// international suffix, regardless of scope.
func (c *Classifier) IsInstitutional(host string) bool {
	return IsInstitutionalHost(host)
}

// IsInstitutionalHost is the classifier-free form of IsInstitutional, for
// callers that only need the suffix rules.
func IsInstitutionalHost(host string) bool {
	return hasInstitutionalSuffix(NormalizeHost(host))
}

// MatchesAnyTier reports whether host matches any curated tier. Feeds the
// Authority criterion, which distinguishes curated hosts from the open web
// even under ScopeWeb.
func (c *Classifier) MatchesAnyTier(host string) bool {
	host = NormalizeHost(host)
	if host == "" {
		return false
	}
	return matchAnyEntry(host, c.core) ||
		matchAnyEntry(host, c.scholarly) ||
		matchAnyEntry(host, c.publishers)
}

// HostOf extracts the hostname from a raw URL, returning "" when it cannot be
// parsed. Classification callers must never see a parse error.
func HostOf(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// NormalizeHost lowercases, strips a leading "www." and any port.
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimPrefix(host, "www.")
	return host
}

func hasInstitutionalSuffix(host string) bool {
	for _, suf := range institutionalSuffixes {
		if strings.HasSuffix(host, suf) {
			return true
		}
	}
	return false
}

// matchEntry is subdomain-inclusive but suffix-exact: "sub.who.int" matches
// "who.int", while "notgov.org" does not match "gov.org".
func matchEntry(host, entry string) bool {
	return host == entry || strings.HasSuffix(host, "."+entry)
}

func matchAnyEntry(host string, entries []string) bool {
	for _, e := range entries {
		if matchEntry(host, e) {
			return true
		}
	}
	return false
}
