package discovery

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FallbackTierName identifies the composite of all fallback providers in
// response payloads.
const FallbackTierName = "scholarly-fallback"

// Cascade fans a query out to every fallback provider at once. Individual
// provider failures are swallowed and contribute zero candidates; the cascade
// itself never fails.
type Cascade struct {
	providers []Provider
	log       *zap.Logger
}

func NewCascade(log *zap.Logger, providers ...Provider) *Cascade {
	return &Cascade{providers: providers, log: log}
}

// DefaultCascade wires the standard fallback set: two works indexes, the
// encyclopedia reference miner, the biomedical identifier search and the
// curated institutional feeds.
func DefaultCascade(log *zap.Logger) *Cascade {
	return NewCascade(log,
		NewCrossrefWorks(),
		NewOpenAlexWorks(),
		NewWikipediaReferences(),
		NewPubMedSearch(),
		NewCuratedFeeds(),
	)
}

func (c *Cascade) Name() string { return FallbackTierName }

// Discover runs all providers in parallel and merges their candidates.
// Order across providers is unspecified; deduplication happens downstream.
func (c *Cascade) Discover(ctx context.Context, query string) ([]Candidate, error) {
	var (
		mu  sync.Mutex
		all []Candidate
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range c.providers {
		p := p
		g.Go(func() error {
			found, err := p.Discover(gctx, query)
			if err != nil {
				c.log.Warn("fallback provider failed",
					zap.String("provider", p.Name()),
					zap.Error(err))
				return nil
			}
			mu.Lock()
			all = append(all, found...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return all, nil
}
