package service

import (
	"sort"

	"github.com/flowstate/study-spots-api/internal/dto"
)

// Sort modes accepted by SortPlaces. Anything else preserves the
// provider-relevance order the aggregator produced.
const (
	SortByRating = "rating"
	SortByPrice  = "price"
)

// categoryAliases maps a category to the provider tags that count as a
// match. The provider tags coffee shops inconsistently across versions.
var categoryAliases = map[dto.Category][]string{
	dto.CategoryCafe:    {"cafe", "coffee_shop"},
	dto.CategoryLibrary: {"library"},
}

// FilterByCategory returns the places whose tag set matches the category.
// It is a pure transformation over an already-fetched result set; no
// provider calls happen here. The tag set is the canonical category signal:
// normalization preserves provider tags verbatim, so there is no separate
// singular-type path to consult.
func FilterByCategory(results []dto.NormalizedPlace, category dto.Category) []dto.NormalizedPlace {
	aliases, ok := categoryAliases[category]
	if !ok {
		return results
	}

	filtered := make([]dto.NormalizedPlace, 0, len(results))
	for _, place := range results {
		if matchesAny(place.Types, aliases) {
			filtered = append(filtered, place)
		}
	}
	return filtered
}

func matchesAny(tags []string, aliases []string) bool {
	for _, tag := range tags {
		for _, alias := range aliases {
			if tag == alias {
				return true
			}
		}
	}
	return false
}

// SortPlaces returns a sorted copy of the result set: rating descending or
// price tier ascending, both stable so equal entries keep their relevance
// order. An unknown mode returns the input untouched.
func SortPlaces(results []dto.NormalizedPlace, mode string) []dto.NormalizedPlace {
	switch mode {
	case SortByRating, SortByPrice:
	default:
		return results
	}

	sorted := make([]dto.NormalizedPlace, len(results))
	copy(sorted, results)

	switch mode {
	case SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PriceLevel < sorted[j].PriceLevel
		})
	}
	return sorted
}
