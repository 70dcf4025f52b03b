package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flowstate/study-spots-api/internal/dto"
	"github.com/flowstate/study-spots-api/internal/places"
)

// fakeProvider serves canned per-category results with optional per-category
// delays and failures.
type fakeProvider struct {
	readyErr error
	results  map[dto.Category][]places.Place
	errs     map[dto.Category]error
	delays   map[dto.Category]time.Duration
}

func (f *fakeProvider) Ready() error {
	return f.readyErr
}

func (f *fakeProvider) NearbySearch(ctx context.Context, origin dto.LatLng, category dto.Category) ([]places.Place, error) {
	if d, ok := f.delays[category]; ok {
		time.Sleep(d)
	}
	if err, ok := f.errs[category]; ok {
		return nil, err
	}
	return f.results[category], nil
}

func (f *fakeProvider) PhotoURL(ref string) string {
	return "https://photos.test/" + ref
}

func legacyPlace(id, name string, types ...string) places.Place {
	lat, lng := 10.0, 20.0
	return places.Place{
		PlaceID:  id,
		Name:     places.FlexString(name),
		Geometry: &places.Geometry{Location: places.GeoPoint{Lat: &lat, Lng: &lng}},
		Types:    types,
	}
}

func TestSearch_MergeOrderIgnoresCompletionOrder(t *testing.T) {
	provider := &fakeProvider{
		results: map[dto.Category][]places.Place{
			dto.CategoryCafe:    {legacyPlace("c1", "Cafe One", "cafe"), legacyPlace("c2", "Cafe Two", "cafe")},
			dto.CategoryLibrary: {legacyPlace("l1", "Library One", "library")},
		},
		// cafe finishes last; merged order must still lead with cafes
		delays: map[dto.Category]time.Duration{
			dto.CategoryCafe: 50 * time.Millisecond,
		},
	}
	svc := NewSearchService(provider)

	results, err := svc.Search(context.Background(), dto.LatLng{}, []dto.Category{dto.CategoryCafe, dto.CategoryLibrary})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	wantOrder := []string{"c1", "c2", "l1"}
	for i, want := range wantOrder {
		if results[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, results[i].ID)
		}
	}
}

func TestSearch_DedupKeepsFirstOccurrence(t *testing.T) {
	shared := legacyPlace("dup", "Cafe Library", "cafe", "library")
	provider := &fakeProvider{
		results: map[dto.Category][]places.Place{
			dto.CategoryCafe:    {legacyPlace("c1", "Cafe One", "cafe"), shared},
			dto.CategoryLibrary: {shared, legacyPlace("l1", "Library One", "library")},
		},
	}
	svc := NewSearchService(provider)

	results, err := svc.Search(context.Background(), dto.LatLng{}, []dto.Category{dto.CategoryCafe, dto.CategoryLibrary})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 deduplicated results, got %d", len(results))
	}

	seen := make(map[string]int)
	for _, place := range results {
		seen[place.ID]++
	}
	if seen["dup"] != 1 {
		t.Fatalf("expected exactly one entry for duplicated id, got %d", seen["dup"])
	}
	// first occurrence was in the cafe batch, so it precedes l1
	if results[1].ID != "dup" || results[2].ID != "l1" {
		t.Fatalf("expected first-occurrence position preserved, got %s, %s", results[1].ID, results[2].ID)
	}
}

func TestSearch_IsolatesCategoryFailure(t *testing.T) {
	provider := &fakeProvider{
		results: map[dto.Category][]places.Place{
			dto.CategoryCafe: {
				legacyPlace("c1", "Cafe One", "cafe"),
				legacyPlace("c2", "Cafe Two", "cafe"),
				legacyPlace("c3", "Cafe Three", "cafe"),
			},
		},
		errs: map[dto.Category]error{
			dto.CategoryLibrary: &places.ProviderError{Op: "nearbysearch", Err: errors.New("boom")},
		},
	}
	svc := NewSearchService(provider)

	results, err := svc.Search(context.Background(), dto.LatLng{}, []dto.Category{dto.CategoryCafe, dto.CategoryLibrary})
	if err != nil {
		t.Fatalf("partial failure must not fail the search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected the 3 cafe results, got %d", len(results))
	}
}

func TestSearch_AllCategoriesFailingIsEmptySuccess(t *testing.T) {
	provider := &fakeProvider{
		errs: map[dto.Category]error{
			dto.CategoryCafe:    errors.New("cafe down"),
			dto.CategoryLibrary: errors.New("library down"),
		},
	}
	svc := NewSearchService(provider)

	results, err := svc.Search(context.Background(), dto.LatLng{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %d", len(results))
	}
}

func TestSearch_PreflightFailureFailsFast(t *testing.T) {
	provider := &fakeProvider{
		readyErr: &places.ProviderError{Op: "preflight", Err: errors.New("missing key")},
	}
	svc := NewSearchService(provider)

	_, err := svc.Search(context.Background(), dto.LatLng{}, nil)
	var provErr *places.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestSearch_DefaultsCategories(t *testing.T) {
	provider := &fakeProvider{
		results: map[dto.Category][]places.Place{
			dto.CategoryCafe:    {legacyPlace("c1", "Cafe One", "cafe")},
			dto.CategoryLibrary: {legacyPlace("l1", "Library One", "library")},
		},
	}
	svc := NewSearchService(provider)

	results, err := svc.Search(context.Background(), dto.LatLng{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected both default categories searched, got %d results", len(results))
	}
}

func TestDedupeByID_DropsUnkeyedRecords(t *testing.T) {
	records := []places.Place{
		legacyPlace("a", "A"),
		{},
		legacyPlace("a", "A again"),
		legacyPlace("b", "B"),
	}

	deduped := dedupeByID(records)
	if len(deduped) != 2 {
		t.Fatalf("expected 2 records, got %d", len(deduped))
	}
	if deduped[0].DisplayNameText() != "A" {
		t.Fatalf("expected first occurrence kept, got %s", deduped[0].DisplayNameText())
	}
}
