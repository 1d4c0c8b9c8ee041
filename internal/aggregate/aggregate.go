// Package aggregate builds the candidate pool: deduplicate discovered URLs,
// prefilter by host trust, cap the pool, and fall back to the scholarly
// cascade when the primary tier comes up empty.
package aggregate

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Taong-grasa/cred-checker-api/internal/discovery"
	"github.com/Taong-grasa/cred-checker-api/internal/trust"
)

// MaxPoolSize bounds how many candidates reach the fetch pool. Applied before
// any network fetch so downstream cost stays bounded.
const MaxPoolSize = 18

// Pool is the outcome of candidate gathering. Tier records which provider
// tier ultimately supplied the candidates.
type Pool struct {
	Candidates []discovery.Candidate
	Tier       string
}

type Aggregator struct {
	primary    discovery.Provider
	fallback   discovery.Provider
	classifier *trust.Classifier
	log        *zap.Logger
}

func New(primary, fallback discovery.Provider, classifier *trust.Classifier, log *zap.Logger) *Aggregator {
	return &Aggregator{
		primary:    primary,
		fallback:   fallback,
		classifier: classifier,
		log:        log,
	}
}

// Gather queries the primary provider and, when that yields nothing after
// prefiltering, the fallback cascade. Provider errors are absorbed: the worst
// outcome is an empty pool, never a failed request.
func (a *Aggregator) Gather(ctx context.Context, query string, scope trust.Scope) Pool {
	candidates, err := a.primary.Discover(ctx, query)
	if err != nil {
		a.log.Info("primary provider unavailable, cascading",
			zap.String("provider", a.primary.Name()),
			zap.Error(err))
		candidates = nil
	}

	pool := a.refine(candidates, scope)
	if len(pool) > 0 {
		return Pool{Candidates: pool, Tier: a.primary.Name()}
	}

	fallback, err := a.fallback.Discover(ctx, query)
	if err != nil {
		// The cascade swallows per-provider failures already; treat any
		// residual error as an empty tier.
		a.log.Warn("fallback cascade failed", zap.Error(err))
		fallback = nil
	}
	return Pool{Candidates: a.refine(fallback, scope), Tier: a.fallback.Name()}
}

func (a *Aggregator) refine(candidates []discovery.Candidate, scope trust.Scope) []discovery.Candidate {
	deduped := Dedupe(candidates)

	out := make([]discovery.Candidate, 0, len(deduped))
	for _, c := range deduped {
		if scope != trust.ScopeWeb && !a.classifier.TrustedURL(c.URL, scope) {
			continue
		}
		out = append(out, c)
		if len(out) >= MaxPoolSize {
			break
		}
	}
	return out
}

// Dedupe keeps one candidate per distinct URL, first seen wins. URLs compare
// verbatim: case and trailing slashes are significant.
func Dedupe(in []discovery.Candidate) []discovery.Candidate {
	seen := make(map[string]struct{}, len(in))
	out := make([]discovery.Candidate, 0, len(in))
	for _, c := range in {
		u := strings.TrimSpace(c.URL)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, c)
	}
	return out
}
