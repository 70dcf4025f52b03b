package service

import (
	"context"
	"log"
	"sync"

	"github.com/flowstate/study-spots-api/internal/dto"
	"github.com/flowstate/study-spots-api/internal/places"
)

// Provider is the outbound places dependency of the search service.
type Provider interface {
	Ready() error
	NearbySearch(ctx context.Context, origin dto.LatLng, category dto.Category) ([]places.Place, error)
	PhotoURL(ref string) string
}

// SearchService aggregates per-category provider searches into one
// deduplicated, normalized result set.
type SearchService struct {
	provider Provider
}

// NewSearchService creates a new instance of SearchService.
func NewSearchService(provider Provider) *SearchService {
	return &SearchService{provider: provider}
}

// Search fans out one concurrent provider call per category, merges the
// results in request-category order, dedups by provider id (first
// occurrence wins) and maps each survivor into the response shape.
//
// A failing category contributes nothing instead of failing the whole
// search; only an unusable provider (missing credential) fails fast.
// An empty result set is a valid success outcome.
func (s *SearchService) Search(ctx context.Context, origin dto.LatLng, categories []dto.Category) ([]dto.NormalizedPlace, error) {
	if err := s.provider.Ready(); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		categories = dto.DefaultCategories()
	}

	// Indexed slots keep the merged order tied to the request-category
	// order, never to completion order.
	batches := make([][]places.Place, len(categories))
	var wg sync.WaitGroup
	for i, category := range categories {
		wg.Add(1)
		go func(slot int, category dto.Category) {
			defer wg.Done()
			results, err := s.provider.NearbySearch(ctx, origin, category)
			if err != nil {
				log.Printf("category=%s nearby search failed: %v", category, err)
				return
			}
			batches[slot] = results
		}(i, category)
	}
	wg.Wait()

	var merged []places.Place
	for _, batch := range batches {
		merged = append(merged, batch...)
	}

	deduped := dedupeByID(merged)

	results := make([]dto.NormalizedPlace, 0, len(deduped))
	for _, raw := range deduped {
		results = append(results, NormalizePlace(raw, origin, s.provider.PhotoURL))
	}
	return results, nil
}

// dedupeByID keeps the first occurrence of each provider id, preserving the
// merged order. Records with no id at all cannot be keyed and are dropped.
func dedupeByID(records []places.Place) []places.Place {
	seen := make(map[string]bool, len(records))
	deduped := records[:0:0]
	for _, record := range records {
		id := record.Identifier()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, record)
	}
	return deduped
}
