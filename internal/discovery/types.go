package discovery

import (
	"context"
	"errors"
	"time"
)

// Candidate is one discovered source. Identity is the URL, taken verbatim.
type Candidate struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Provider is the shape shared by the primary provider and every fallback.
type Provider interface {
	Name() string
	Discover(ctx context.Context, query string) ([]Candidate, error)
}

// Provider-level failures that callers may want to distinguish. Anything else
// is reported as a wrapped transport or decode error.
var (
	ErrNoCredentials = errors.New("discovery: credentials not configured")
	ErrRateLimited   = errors.New("discovery: provider rate limit exhausted")
)

// discoverTimeout bounds every single provider call. A timed-out provider
// contributes zero candidates; it never stalls the cascade.
const discoverTimeout = 8500 * time.Millisecond
