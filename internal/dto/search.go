package dto

import (
	"fmt"
	"strings"
)

// Category is a place classification used to scope a provider search.
type Category string

const (
	CategoryCafe    Category = "cafe"
	CategoryLibrary Category = "library"
)

// DefaultCategories is the set searched when the caller does not narrow.
func DefaultCategories() []Category {
	return []Category{CategoryCafe, CategoryLibrary}
}

// ParseCategories parses a comma-separated category list. An empty input
// falls back to the default set; unknown tokens are rejected. Duplicate
// tokens are collapsed while preserving first-seen order.
func ParseCategories(raw string) ([]Category, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultCategories(), nil
	}

	seen := make(map[Category]bool)
	var categories []Category
	for _, token := range strings.Split(raw, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		cat := Category(token)
		switch cat {
		case CategoryCafe, CategoryLibrary:
		default:
			return nil, fmt.Errorf("unsupported category: %s", token)
		}
		if seen[cat] {
			continue
		}
		seen[cat] = true
		categories = append(categories, cat)
	}
	if len(categories) == 0 {
		return DefaultCategories(), nil
	}
	return categories, nil
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
