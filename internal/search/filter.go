package search

import (
	"strings"

	"autologic-fitment-api/internal/model"
)

// vehicleBrands are makes whose mention in a title signals the part targets a
// specific brand.
var vehicleBrands = []string{
	"nissan", "toyota", "honda", "ford", "chevrolet", "volkswagen", "vw",
	"mazda", "kia", "hyundai", "bmw", "mercedes", "audi", "seat", "renault",
	"dodge", "jeep", "chrysler", "fiat", "mitsubishi", "subaru", "suzuki",
	"lexus", "acura", "infiniti",
}

// genericPartsBrands are component manufacturers that supply many vehicle
// makes; their names never count as a competing-brand signal.
var genericPartsBrands = []string{
	"bosch", "denso", "valeo", "gates", "ngk", "febi", "sachs", "brembo",
	"monroe", "kyb", "delphi", "mahle", "gabriel", "moog", "ac delco", "acdelco",
}

// universalMarkers mark parts advertised as multi-make compatible.
var universalMarkers = []string{
	"universal", "multiple", "multiples marcas", "compatible con",
}

// FilterByFitment drops results whose title targets a competing vehicle brand.
// A result survives when it mentions the target brand or model, carries no
// brand signal at all, names only generic parts manufacturers, or is marked
// universal. brand and model need not be pre-normalized.
func FilterByFitment(results []model.SearchResult, brand, vehicleModel string) []model.SearchResult {
	brand = Normalize(brand)
	vehicleModel = Normalize(vehicleModel)

	kept := make([]model.SearchResult, 0, len(results))
	for _, r := range results {
		if keepResult(r, brand, vehicleModel) {
			kept = append(kept, r)
		}
	}
	return kept
}

func keepResult(r model.SearchResult, brand, vehicleModel string) bool {
	title := Normalize(r.Title)
	description := Normalize(r.Description)

	// Explicit mention of our vehicle wins immediately
	if brand != "" && (strings.Contains(title, brand) || strings.Contains(description, brand)) {
		return true
	}
	if vehicleModel != "" && (strings.Contains(title, vehicleModel) || strings.Contains(description, vehicleModel)) {
		return true
	}

	for _, other := range vehicleBrands {
		if other == brand || !strings.Contains(title, other) {
			continue
		}
		// A competing make in the title: tolerate it only for generic parts
		// manufacturers or parts sold as universal
		if containsAny(title, genericPartsBrands) {
			continue
		}
		if containsAny(title, universalMarkers) {
			return true
		}
		return false
	}

	// No brand signal at all: keep by default
	return true
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
