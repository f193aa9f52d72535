package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"autologic-fitment-api/internal/model"
)

// fakeProvider returns canned results per query and records every query it
// receives. Safe for the searcher's concurrent fan-out.
type fakeProvider struct {
	mu      sync.Mutex
	results map[string][]model.SearchResult
	err     error
	queries []string
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = append(p.queries, query)
	if p.err != nil {
		return nil, p.err
	}
	return p.results[query], nil
}

func (p *fakeProvider) seenQueries() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.queries))
	copy(out, p.queries)
	sort.Strings(out)
	return out
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]model.SearchResult
	hits    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]model.SearchResult)}
}

func (c *fakeCache) Get(ctx context.Context, req model.PartSearchRequest) ([]model.SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	results, ok := c.entries[cacheKey(req)]
	if ok {
		c.hits++
	}
	return results, ok
}

func (c *fakeCache) Set(ctx context.Context, req model.PartSearchRequest, results []model.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(req)] = results
	c.sets++
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearchValidation(t *testing.T) {
	s := NewSearcher(&fakeProvider{}, DefaultSynonymDictionary(), discardLogger())

	if _, err := s.Search(context.Background(), model.PartSearchRequest{Refaccion: "  "}); !errors.Is(err, model.ErrValidation) {
		t.Errorf("Search with blank refaccion returned %v, want ErrValidation", err)
	}
}

func TestSearchCombinedQueryOnly(t *testing.T) {
	provider := &fakeProvider{
		results: map[string][]model.SearchResult{
			"balatas toyota corolla 2020": {
				{ID: "1", Title: "Balatas Toyota Corolla 2020"},
				{ID: "2", Title: "Balatas Toyota Corolla"},
			},
		},
	}
	s := NewSearcher(provider, DefaultSynonymDictionary(), discardLogger())

	results, err := s.Search(context.Background(), model.PartSearchRequest{
		Refaccion: "balatas", Marca: "Toyota", Modelo: "Corolla", Anio: 2020,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Enough combined results: no widening, one provider call
	if queries := provider.seenQueries(); len(queries) != 1 {
		t.Errorf("provider saw %v, want only the combined query", queries)
	}
}

func TestSearchWidensWithSynonymsWhenThin(t *testing.T) {
	provider := &fakeProvider{
		results: map[string][]model.SearchResult{
			"sensor maf nissan tiida 2010": {
				{ID: "1", Title: "Sensor MAF Nissan Tiida"},
			},
			"medidor flujo aire nissan tiida 2010": {
				{ID: "2", Title: "Medidor de flujo de aire Nissan"},
			},
			"mass air flow nissan tiida 2010": {
				{ID: "1", Title: "Sensor MAF Nissan Tiida"}, // duplicate of the combined hit
				{ID: "3", Title: "Mass air flow sensor Nissan Tiida"},
			},
		},
	}
	s := NewSearcher(provider, DefaultSynonymDictionary(), discardLogger())

	results, err := s.Search(context.Background(), model.PartSearchRequest{
		Refaccion: "sensor maf", Marca: "Nissan", Modelo: "Tiida", Anio: 2010,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	wantQueries := []string{
		"maf nissan tiida 2010",
		"mass air flow nissan tiida 2010",
		"medidor flujo aire nissan tiida 2010",
		"sensor flujo masa aire nissan tiida 2010",
		"sensor maf nissan tiida 2010",
	}
	if got := provider.seenQueries(); !equalStrings(got, wantQueries) {
		t.Errorf("provider saw %v, want %v", got, wantQueries)
	}

	seen := make(map[string]int)
	for _, r := range results {
		seen[r.ID]++
	}
	if len(seen) != 3 {
		t.Errorf("got ids %v, want 3 distinct", seen)
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("id %s appears %d times, want 1", id, n)
		}
	}
}

func TestSearchFallsBackToPartialQueries(t *testing.T) {
	provider := &fakeProvider{
		results: map[string][]model.SearchResult{
			"bujia": {{ID: "1", Title: "Bujia NGK"}},
		},
	}
	s := NewSearcher(provider, DefaultSynonymDictionary(), discardLogger())

	results, err := s.Search(context.Background(), model.PartSearchRequest{
		Refaccion: "bujia", Marca: "Toyota", Modelo: "Corolla", Anio: 2020,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "1" {
		t.Fatalf("got %v, want the partial-query hit", results)
	}

	wantQueries := []string{
		"bujia",
		"bujia corolla",
		"bujia toyota",
		"bujia toyota corolla 2020",
		"spark plug toyota corolla 2020",
	}
	if got := provider.seenQueries(); !equalStrings(got, wantQueries) {
		t.Errorf("provider saw %v, want %v", got, wantQueries)
	}
}

func TestSearchAbsorbsProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream down")}
	s := NewSearcher(provider, DefaultSynonymDictionary(), discardLogger())

	results, err := s.Search(context.Background(), model.PartSearchRequest{Refaccion: "alternador"})
	if err != nil {
		t.Fatalf("provider failure leaked out of Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %v, want empty results", results)
	}
}

func TestSearchSkipsFilterWithoutVehicle(t *testing.T) {
	provider := &fakeProvider{
		results: map[string][]model.SearchResult{
			"balatas": {
				{ID: "1", Title: "Balatas Nissan Altima"},
				{ID: "2", Title: "Balatas Toyota Corolla"},
			},
		},
	}
	s := NewSearcher(provider, DefaultSynonymDictionary(), discardLogger())

	results, err := s.Search(context.Background(), model.PartSearchRequest{Refaccion: "balatas"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want both kept when no vehicle is given", len(results))
	}
}

func TestSearchUsesCache(t *testing.T) {
	provider := &fakeProvider{
		results: map[string][]model.SearchResult{
			"radiador nissan sentra 2015": {
				{ID: "1", Title: "Radiador Nissan Sentra"},
				{ID: "2", Title: "Radiador Nissan Sentra 2015"},
			},
		},
	}
	cache := newFakeCache()
	s := NewSearcher(provider, DefaultSynonymDictionary(), discardLogger(), WithCache(cache))

	req := model.PartSearchRequest{Refaccion: "radiador", Marca: "Nissan", Modelo: "Sentra", Anio: 2015}

	first, err := s.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("first Search returned error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache.sets = %d after first search, want 1", cache.sets)
	}

	callsAfterFirst := len(provider.seenQueries())

	second, err := s.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("second Search returned error: %v", err)
	}
	if cache.hits != 1 {
		t.Errorf("cache.hits = %d, want 1", cache.hits)
	}
	if got := len(provider.seenQueries()); got != callsAfterFirst {
		t.Errorf("provider called again on cache hit: %d calls, want %d", got, callsAfterFirst)
	}
	if len(second) != len(first) {
		t.Errorf("cached response has %d results, fresh had %d", len(second), len(first))
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
