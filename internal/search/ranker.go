package search

import (
	"sort"
	"strconv"
	"strings"

	"autologic-fitment-api/internal/model"
)

// ScoreWeights is the tunable relevance weight table. The defaults encode
// relative priority: exact vehicle match over part-name match over single-field
// matches over tie-break signals.
type ScoreWeights struct {
	VehiclePhraseTitle     int // "brand model" phrase in title
	VehiclePhraseYearTitle int // additional when the phrase plus year appears
	VehiclePhraseDesc      int
	PartTitle              int
	PartDesc               int
	BrandTitle             int
	BrandDesc              int
	ModelTitle             int
	ModelDesc              int
	YearTitle              int
	OtherBrandPenalty      int // subtracted per competing make in title, stacks
	ImageBonus             int // pairwise: present vs. missing image
	PriceBonus             int // pairwise: priced vs. unpriced
}

// DefaultScoreWeights returns the production tuning.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		VehiclePhraseTitle:     50,
		VehiclePhraseYearTitle: 70,
		VehiclePhraseDesc:      25,
		PartTitle:              20,
		PartDesc:               5,
		BrandTitle:             15,
		BrandDesc:              3,
		ModelTitle:             15,
		ModelDesc:              3,
		YearTitle:              10,
		OtherBrandPenalty:      40,
		ImageBonus:             3,
		PriceBonus:             4,
	}
}

// RankTarget carries the normalized search signals results are scored against.
type RankTarget struct {
	Part  string
	Brand string
	Model string
	Year  int
}

type scoredResult struct {
	result   model.SearchResult
	score    int
	hasImage bool
	hasPrice bool
}

// Rank sorts results descending by relevance against the target. The sort is
// stable: equally scored results keep their pre-sort relative order.
func Rank(results []model.SearchResult, target RankTarget, w ScoreWeights) []model.SearchResult {
	part := Normalize(target.Part)
	brand := Normalize(target.Brand)
	mod := Normalize(target.Model)

	scored := make([]scoredResult, len(results))
	for i, r := range results {
		price, _ := strconv.ParseFloat(r.Price, 64)
		scored[i] = scoredResult{
			result:   r,
			score:    scoreResult(r, part, brand, mod, target.Year, w),
			hasImage: r.Image != "",
			hasPrice: price > 0,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i].score, scored[j].score
		// Presence bonuses only ever separate otherwise comparable items, so
		// they are applied pairwise rather than baked into the base score
		if scored[i].hasImage && !scored[j].hasImage {
			a += w.ImageBonus
		}
		if !scored[i].hasImage && scored[j].hasImage {
			b += w.ImageBonus
		}
		if scored[i].hasPrice && !scored[j].hasPrice {
			a += w.PriceBonus
		}
		if !scored[i].hasPrice && scored[j].hasPrice {
			b += w.PriceBonus
		}
		return a > b
	})

	ranked := make([]model.SearchResult, len(scored))
	for i, s := range scored {
		ranked[i] = s.result
	}
	return ranked
}

func scoreResult(r model.SearchResult, part, brand, mod string, year int, w ScoreWeights) int {
	title := Normalize(r.Title)
	description := Normalize(r.Description)
	yearStr := ""
	if year > 0 {
		yearStr = strconv.Itoa(year)
	}

	score := 0

	// Full-vehicle phrase matches dominate everything else
	if brand != "" && mod != "" {
		phrase := brand + " " + mod
		if strings.Contains(title, phrase) {
			score += w.VehiclePhraseTitle
		}
		if yearStr != "" && strings.Contains(title, phrase+" "+yearStr) {
			score += w.VehiclePhraseYearTitle
		}
		if strings.Contains(description, phrase) {
			score += w.VehiclePhraseDesc
		}
	}

	if part != "" {
		if strings.Contains(title, part) {
			score += w.PartTitle
		}
		if strings.Contains(description, part) {
			score += w.PartDesc
		}
	}

	if brand != "" {
		if strings.Contains(title, brand) {
			score += w.BrandTitle
		}
		if strings.Contains(description, brand) {
			score += w.BrandDesc
		}
	}

	if mod != "" {
		if strings.Contains(title, mod) {
			score += w.ModelTitle
		}
		if strings.Contains(description, mod) {
			score += w.ModelDesc
		}
	}

	if yearStr != "" && strings.Contains(title, yearStr) {
		score += w.YearTitle
	}

	// Competing makes in the title are a strong misfit signal, unless the
	// target brand itself is a generic parts manufacturer
	if brand != "" && !containsAny(brand, genericPartsBrands) {
		for _, other := range vehicleBrands {
			if other == brand {
				continue
			}
			if strings.Contains(title, other) {
				score -= w.OtherBrandPenalty
			}
		}
	}

	return score
}
