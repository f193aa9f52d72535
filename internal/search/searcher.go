package search

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"autologic-fitment-api/internal/metrics"
	"autologic-fitment-api/internal/model"
)

const (
	// synonymWideningThreshold: below this many combined-query results the
	// searcher widens with synonyms.
	synonymWideningThreshold = 2

	// maxConcurrentQueries bounds the parallel fan-out so a large synonym set
	// cannot flood the provider.
	maxConcurrentQueries = 4

	defaultQueryTimeout = 5 * time.Second
)

// Searcher runs the three-tier query-widening cascade against the catalog
// search provider and returns a fitment-filtered, relevance-ranked list.
type Searcher struct {
	provider Provider
	dict     *SynonymDictionary
	weights  ScoreWeights
	cache    ResultCache
	timeout  time.Duration
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithCache attaches a response cache.
func WithCache(cache ResultCache) Option {
	return func(s *Searcher) { s.cache = cache }
}

// WithQueryTimeout overrides the per-provider-call timeout.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Searcher) { s.timeout = d }
}

// WithScoreWeights overrides the relevance weight table.
func WithScoreWeights(w ScoreWeights) Option {
	return func(s *Searcher) { s.weights = w }
}

func NewSearcher(provider Provider, dict *SynonymDictionary, logger *slog.Logger, opts ...Option) *Searcher {
	s := &Searcher{
		provider: provider,
		dict:     dict,
		weights:  DefaultScoreWeights(),
		timeout:  defaultQueryTimeout,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search resolves a part search request. Provider failures are absorbed per
// query; the only error returned is a validation failure on the request.
func (s *Searcher) Search(ctx context.Context, req model.PartSearchRequest) ([]model.SearchResult, error) {
	part := Normalize(req.Refaccion)
	if part == "" {
		return nil, model.ErrValidation
	}
	brand := Normalize(req.Marca)
	mod := Normalize(req.Modelo)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, req); ok {
			metrics.SearchCacheHits.Inc()
			return cached, nil
		}
		metrics.SearchCacheMisses.Inc()
	}

	results := s.gatherCandidates(ctx, part, brand, mod, req.Anio)

	// Brand-fitment filtering only makes sense with a known target vehicle
	if brand != "" && mod != "" {
		results = FilterByFitment(results, brand, mod)
	}

	results = Rank(results, RankTarget{Part: part, Brand: brand, Model: mod, Year: req.Anio}, s.weights)

	if s.cache != nil {
		s.cache.Set(ctx, req, results)
	}

	return results, nil
}

// gatherCandidates runs the widening cascade and returns the de-duplicated
// candidate set, ordered by first occurrence across the strategies.
func (s *Searcher) gatherCandidates(ctx context.Context, part, brand, mod string, year int) []model.SearchResult {
	// Strategy 1: one combined query with every known vehicle signal
	combined := buildQuery(part, brand, mod, year)
	metrics.SearchStrategyRuns.WithLabelValues("combined").Inc()
	merged, seen := mergeResults(nil, nil, s.runQueries(ctx, []string{combined}))

	// Strategy 2: widen with synonyms when the combined query came up thin
	if len(merged) < synonymWideningThreshold {
		if synonyms := s.dict.SynonymsFor(part); len(synonyms) > 0 {
			metrics.SearchStrategyRuns.WithLabelValues("synonyms").Inc()
			queries := make([]string, 0, len(synonyms))
			for _, syn := range synonyms {
				queries = append(queries, buildQuery(syn, brand, mod, year))
			}
			merged, seen = mergeResults(merged, seen, s.runQueries(ctx, queries))
		}
	}

	// Strategy 3: partial term combinations as the last resort
	if len(merged) == 0 {
		metrics.SearchStrategyRuns.WithLabelValues("partial").Inc()
		var queries []string
		if brand != "" {
			queries = append(queries, part+" "+brand)
		}
		if mod != "" {
			queries = append(queries, part+" "+mod)
		}
		queries = append(queries, part)
		merged, _ = mergeResults(merged, seen, s.runQueries(ctx, queries))
	}

	return merged
}

// runQueries issues the queries in parallel and returns one result slice per
// query, index-aligned with the input so the merge order stays deterministic.
// A failing call contributes an empty slice and never fails the join.
func (s *Searcher) runQueries(ctx context.Context, queries []string) [][]model.SearchResult {
	out := make([][]model.SearchResult, len(queries))
	sem := semaphore.NewWeighted(maxConcurrentQueries)
	var wg sync.WaitGroup

	for i, query := range queries {
		wg.Add(1)
		go func(idx int, q string) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			defer sem.Release(1)

			callCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			startedAt := time.Now()
			items, err := s.provider.Search(callCtx, q)
			metrics.ProviderRequestDuration.WithLabelValues(s.provider.Name()).Observe(time.Since(startedAt).Seconds())
			if err != nil {
				// One bad branch must not sink the search; log and move on
				metrics.ProviderRequestsTotal.WithLabelValues(s.provider.Name(), "error").Inc()
				s.logger.Warn("provider query failed", "provider", s.provider.Name(), "query", q, "error", err)
				return
			}
			metrics.ProviderRequestsTotal.WithLabelValues(s.provider.Name(), "ok").Inc()
			out[idx] = items
		}(i, query)
	}

	wg.Wait()
	return out
}

// mergeResults folds batches into merged in query order, dropping results
// whose id was already seen. First occurrence wins.
func mergeResults(merged []model.SearchResult, seen map[string]struct{}, batches [][]model.SearchResult) ([]model.SearchResult, map[string]struct{}) {
	if seen == nil {
		seen = make(map[string]struct{})
	}
	for _, batch := range batches {
		for _, r := range batch {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
			merged = append(merged, r)
		}
	}
	return merged, seen
}

func buildQuery(part, brand, mod string, year int) string {
	q := part
	if brand != "" {
		q += " " + brand
	}
	if mod != "" {
		q += " " + mod
	}
	if year > 0 {
		q += " " + strconv.Itoa(year)
	}
	return q
}
