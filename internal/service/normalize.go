package service

import (
	"github.com/flowstate/study-spots-api/internal/dto"
	"github.com/flowstate/study-spots-api/internal/places"
)

// Named defaults applied when the provider omits a field. The provider has
// renamed and restructured fields between API versions, so every default
// lives here rather than in fallback chains at call sites.
const (
	defaultName      = "Unknown"
	defaultPriceTier = 2

	minPriceTier = 1
	maxPriceTier = 4
)

// priceLabelTiers maps the current API's price enumeration to the 1-4 tier.
var priceLabelTiers = map[string]int{
	"PRICE_LEVEL_FREE":           1,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// NormalizePlace maps one raw provider record into the public response
// shape, computing the distance from origin when the provider returned a
// position. photoURL turns a provider photo handle into a media URL.
func NormalizePlace(raw places.Place, origin dto.LatLng, photoURL func(string) string) dto.NormalizedPlace {
	place := dto.NormalizedPlace{
		ID:               raw.Identifier(),
		Name:             defaultName,
		UserRatingsTotal: raw.RatingCount(),
		Vicinity:         raw.Address(),
		PriceLevel:       priceTier(raw.Price()),
		OpenNow:          raw.IsOpenNow(),
		Types:            raw.Types,
	}

	if name := raw.DisplayNameText(); name != "" {
		place.Name = name
	}
	if raw.Rating != nil {
		place.Rating = *raw.Rating
	}

	if location := raw.Position(); location != nil {
		place.Location = location
		distance := Haversine(origin, *location)
		place.DistanceMeters = &distance
	}

	for _, ref := range raw.PhotoRefs() {
		place.PhotoURLs = append(place.PhotoURLs, photoURL(ref))
	}
	if len(place.PhotoURLs) > 0 {
		place.PrimaryPhotoURL = place.PhotoURLs[0]
	}

	return place
}

// priceTier maps the provider price signal to the 1-4 tier, defaulting to
// moderate when the signal is absent or unrecognized.
func priceTier(tag *places.PriceTag) int {
	if tag == nil {
		return defaultPriceTier
	}
	if tag.Numeric != nil {
		switch tier := *tag.Numeric; {
		case tier < 0 || tier > maxPriceTier:
			return defaultPriceTier
		case tier < minPriceTier:
			// legacy level 0 means free
			return minPriceTier
		default:
			return tier
		}
	}
	if tier, ok := priceLabelTiers[tag.Label]; ok {
		return tier
	}
	return defaultPriceTier
}
