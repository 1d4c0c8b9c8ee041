// Package pipeline runs the full check: gather candidates, fetch and score
// them under a bounded worker pool, then rank and assemble the response.
package pipeline

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Taong-grasa/cred-checker-api/internal/aggregate"
	"github.com/Taong-grasa/cred-checker-api/internal/citation"
	"github.com/Taong-grasa/cred-checker-api/internal/discovery"
	"github.com/Taong-grasa/cred-checker-api/internal/page"
	"github.com/Taong-grasa/cred-checker-api/internal/score"
	"github.com/Taong-grasa/cred-checker-api/internal/trust"
)

const (
	// DefaultWorkers is the fetch-analyze pool width; the sole backpressure
	// mechanism on outbound page fetches.
	DefaultWorkers = 4

	// DefaultResults and MaxResults bound the requested result count.
	DefaultResults = 8
	MaxResults     = 12
)

// Gatherer supplies the candidate pool. Satisfied by aggregate.Aggregator.
type Gatherer interface {
	Gather(ctx context.Context, query string, scope trust.Scope) aggregate.Pool
}

// Fetcher retrieves one candidate page. Satisfied by page.Fetcher.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (page.Metadata, error)
}

// Request is one credibility check. Scope and Max arrive pre-parsed from the
// HTTP boundary.
type Request struct {
	Query string
	Max   int
	Scope trust.Scope
	Debug bool
}

// Response is the assembled payload.
type Response struct {
	Query       string         `json:"query"`
	Scope       string         `json:"scope"`
	SourceTier  string         `json:"source_tier"`
	Results     []score.Result `json:"results"`
	DebugFailed []score.Result `json:"debug_failed,omitempty"`
}

// Checker wires the stages together. Stateless across requests.
type Checker struct {
	gatherer Gatherer
	fetcher  Fetcher
	scorer   *score.Scorer
	workers  int
	log      *zap.Logger
	now      func() time.Time
}

func New(gatherer Gatherer, fetcher Fetcher, scorer *score.Scorer, workers int, log *zap.Logger) *Checker {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Checker{
		gatherer: gatherer,
		fetcher:  fetcher,
		scorer:   scorer,
		workers:  workers,
		log:      log,
		now:      time.Now,
	}
}

// Check runs the whole pipeline for one query. It never returns an error:
// provider and fetch failures degrade per candidate, and the worst case is an
// empty result list.
func (c *Checker) Check(ctx context.Context, req Request) Response {
	pool := c.gatherer.Gather(ctx, req.Query, req.Scope)
	c.log.Info("candidate pool gathered",
		zap.String("tier", pool.Tier),
		zap.Int("candidates", len(pool.Candidates)))

	scored := c.analyzeAll(ctx, pool.Candidates)

	resp := Response{
		Query:      req.Query,
		Scope:      req.Scope.String(),
		SourceTier: pool.Tier,
		Results:    []score.Result{},
	}

	var failed []score.Result
	for _, r := range scored {
		if r == nil {
			continue
		}
		if r.Verdict == score.VerdictCredible {
			resp.Results = append(resp.Results, *r)
		} else {
			failed = append(failed, *r)
		}
	}

	// Stable sort: ties keep pool order.
	sort.SliceStable(resp.Results, func(i, j int) bool {
		return resp.Results[i].ScoreTotal > resp.Results[j].ScoreTotal
	})

	if limit := clampLimit(req.Max); len(resp.Results) > limit {
		resp.Results = resp.Results[:limit]
	}

	if req.Debug {
		if len(failed) > MaxResults {
			failed = failed[:MaxResults]
		}
		resp.DebugFailed = failed
	}
	return resp
}

// analyzeAll fans the candidates out to a fixed-width worker pool. Results
// are slotted by candidate index, so output order is deterministic even
// though completion order is not. The pool always settles fully before
// returning; there are no partial results.
func (c *Checker) analyzeAll(ctx context.Context, candidates []discovery.Candidate) []*score.Result {
	results := make([]*score.Result, len(candidates))
	if len(candidates) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.analyze(ctx, candidates[i])
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// analyze runs fetch → extract → score → cite for one candidate. Any failure
// is local to this candidate: fetch errors degrade to host-only metadata, and
// a panic yields a nil slot instead of taking down the pool.
func (c *Checker) analyze(ctx context.Context, cand discovery.Candidate) (res *score.Result) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("candidate evaluation panicked",
				zap.String("url", cand.URL),
				zap.Any("panic", r))
			res = nil
		}
	}()

	md, err := c.fetcher.Fetch(ctx, cand.URL)
	if err != nil {
		c.log.Warn("page fetch failed, scoring on host signals only",
			zap.String("url", cand.URL),
			zap.Error(err))
		md = page.HostOnly(cand.URL)
	}
	if md.Title == "" {
		md.Title = cand.Title
	}

	r := c.scorer.Evaluate(md, c.now())
	r.Citation = citation.Format(md)
	return &r
}

func clampLimit(max int) int {
	switch {
	case max <= 0:
		return DefaultResults
	case max > MaxResults:
		return MaxResults
	}
	return max
}
