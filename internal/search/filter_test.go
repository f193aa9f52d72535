package search

import (
	"testing"

	"autologic-fitment-api/internal/model"
)

func TestFilterByFitmentDropsCompetingBrand(t *testing.T) {
	results := []model.SearchResult{
		{ID: "1", Title: "Amortiguador Toyota Corolla"},
		{ID: "2", Title: "Amortiguador Nissan Altima"},
	}

	kept := FilterByFitment(results, "Toyota", "Corolla")

	if len(kept) != 1 {
		t.Fatalf("kept %d results, want 1: %v", len(kept), kept)
	}
	if kept[0].ID != "1" {
		t.Errorf("kept ID %s, want 1", kept[0].ID)
	}
}

func TestFilterByFitmentKeepsGenericPartsBrand(t *testing.T) {
	results := []model.SearchResult{
		{ID: "1", Title: "Bujia Bosch para Nissan y Toyota"},
	}

	kept := FilterByFitment(results, "Toyota", "Corolla")

	if len(kept) != 1 {
		t.Fatalf("generic parts brand was dropped: %v", kept)
	}
}

func TestFilterByFitmentKeepsUniversalPart(t *testing.T) {
	results := []model.SearchResult{
		{ID: "1", Title: "Tapete universal compatible Nissan"},
	}

	kept := FilterByFitment(results, "Toyota", "Corolla")

	if len(kept) != 1 {
		t.Fatalf("universal part was dropped: %v", kept)
	}
}

func TestFilterByFitmentKeepsUnbrandedPart(t *testing.T) {
	results := []model.SearchResult{
		{ID: "1", Title: "Filtro de aceite premium"},
	}

	kept := FilterByFitment(results, "Toyota", "Corolla")

	if len(kept) != 1 {
		t.Fatalf("unbranded part was dropped: %v", kept)
	}
}

func TestFilterByFitmentMatchesDescription(t *testing.T) {
	results := []model.SearchResult{
		{ID: "1", Title: "Balatas delanteras", Description: "Compatible Toyota Corolla 2018-2022"},
		{ID: "2", Title: "Balatas Honda Civic"},
	}

	kept := FilterByFitment(results, "Toyota", "Corolla")

	if len(kept) != 1 || kept[0].ID != "1" {
		t.Fatalf("kept %v, want only ID 1", kept)
	}
}

func TestFilterByFitmentNormalizesTarget(t *testing.T) {
	results := []model.SearchResult{
		{ID: "1", Title: "Faro VOLKSWAGEN Jetta"},
	}

	kept := FilterByFitment(results, "Volkswagen", "Jetta")

	if len(kept) != 1 {
		t.Fatalf("case difference dropped a matching result: %v", kept)
	}
}
