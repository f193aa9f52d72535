package search

import (
	"testing"

	"autologic-fitment-api/internal/model"
)

func rankedIDs(results []model.SearchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

func TestRankOrdersByVehicleSpecificity(t *testing.T) {
	results := []model.SearchResult{
		{ID: "generic", Title: "Balatas delanteras"},
		{ID: "model", Title: "Balatas Corolla"},
		{ID: "full", Title: "Balatas Toyota Corolla 2020"},
	}

	target := RankTarget{Part: "balatas", Brand: "toyota", Model: "corolla", Year: 2020}
	ranked := Rank(results, target, DefaultScoreWeights())

	want := []string{"full", "model", "generic"}
	got := rankedIDs(ranked)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ranked order %v, want %v", got, want)
		}
	}
}

func TestRankYearPhraseOutranksPhraseAlone(t *testing.T) {
	results := []model.SearchResult{
		{ID: "no-year", Title: "Amortiguador Toyota Corolla"},
		{ID: "with-year", Title: "Amortiguador Toyota Corolla 2020"},
	}

	target := RankTarget{Part: "amortiguador", Brand: "toyota", Model: "corolla", Year: 2020}
	ranked := Rank(results, target, DefaultScoreWeights())

	if ranked[0].ID != "with-year" {
		t.Errorf("ranked %v, want the year-matching result first", rankedIDs(ranked))
	}
}

func TestRankPenalizesCompetingBrand(t *testing.T) {
	results := []model.SearchResult{
		{ID: "competing", Title: "Balatas Nissan premium"},
		{ID: "neutral", Title: "Balatas premium"},
	}

	target := RankTarget{Part: "balatas", Brand: "toyota", Model: "corolla"}
	ranked := Rank(results, target, DefaultScoreWeights())

	if ranked[0].ID != "neutral" {
		t.Errorf("ranked %v, want the neutral result ahead of the competing brand", rankedIDs(ranked))
	}
}

func TestRankPenaltyStacksPerBrand(t *testing.T) {
	results := []model.SearchResult{
		{ID: "two-brands", Title: "Balatas Toyota Corolla para Nissan y Honda"},
		{ID: "one-brand", Title: "Balatas Toyota Corolla para Nissan"},
	}

	target := RankTarget{Part: "balatas", Brand: "toyota", Model: "corolla"}
	ranked := Rank(results, target, DefaultScoreWeights())

	if ranked[0].ID != "one-brand" {
		t.Errorf("ranked %v, want the single-penalty result first", rankedIDs(ranked))
	}
}

func TestRankNoPenaltyForGenericTargetBrand(t *testing.T) {
	// When the shopper filters by a parts manufacturer rather than a vehicle
	// make, vehicle-make mentions are fitment information, not a misfit.
	results := []model.SearchResult{
		{ID: "fits-nissan", Title: "Bujia Bosch para Nissan Sentra"},
		{ID: "plain", Title: "Bujia generica"},
	}

	target := RankTarget{Part: "bujia", Brand: "bosch", Model: "sentra"}
	ranked := Rank(results, target, DefaultScoreWeights())

	if ranked[0].ID != "fits-nissan" {
		t.Errorf("ranked %v, want the brand-matching result first", rankedIDs(ranked))
	}
}

func TestRankImageAndPriceBreakTies(t *testing.T) {
	results := []model.SearchResult{
		{ID: "bare", Title: "Radiador aluminio"},
		{ID: "priced", Title: "Radiador aluminio", Price: "1299.00"},
		{ID: "pictured", Title: "Radiador aluminio", Image: "https://cdn.example.com/radiador.jpg"},
		{ID: "complete", Title: "Radiador aluminio", Image: "https://cdn.example.com/radiador.jpg", Price: "1150.00"},
	}

	target := RankTarget{Part: "radiador"}
	ranked := Rank(results, target, DefaultScoreWeights())

	got := rankedIDs(ranked)
	if got[0] != "complete" {
		t.Errorf("ranked %v, want the priced and pictured result first", got)
	}
	if got[len(got)-1] != "bare" {
		t.Errorf("ranked %v, want the bare result last", got)
	}
}

func TestRankStableForEqualScores(t *testing.T) {
	results := []model.SearchResult{
		{ID: "a", Title: "Termostato motor", Price: "100"},
		{ID: "b", Title: "Termostato motor", Price: "200"},
		{ID: "c", Title: "Termostato motor", Price: "300"},
	}

	ranked := Rank(results, RankTarget{Part: "termostato"}, DefaultScoreWeights())

	want := []string{"a", "b", "c"}
	got := rankedIDs(ranked)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("equal scores reordered: got %v, want %v", got, want)
		}
	}
}

func TestRankEmptyInput(t *testing.T) {
	ranked := Rank(nil, RankTarget{Part: "bujia"}, DefaultScoreWeights())
	if len(ranked) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", ranked)
	}
}
