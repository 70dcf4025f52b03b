package dto

// NormalizedPlace is the unit of the public search response. Field names
// follow the contract the browser client consumes; optional fields use
// pointers so absence survives the JSON round trip instead of turning into
// fabricated zero values.
type NormalizedPlace struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Vicinity         string   `json:"vicinity"`
	Location         *LatLng  `json:"location,omitempty"`
	DistanceMeters   *float64 `json:"distance,omitempty"`
	PriceLevel       int      `json:"price_level"`
	OpenNow          *bool    `json:"open_now,omitempty"`
	Types            []string `json:"types"`
	PhotoURLs        []string `json:"photo_urls,omitempty"`
	PrimaryPhotoURL  string   `json:"photo_url,omitempty"`
}

// SearchResponse is the envelope returned by GET /api/search.
type SearchResponse struct {
	Status  string            `json:"status"`
	Count   int               `json:"count"`
	Results []NormalizedPlace `json:"results"`
}

// GeocodeResponse is the envelope returned by GET /api/geocode. Location is
// only present when Status is "success".
type GeocodeResponse struct {
	Status   string  `json:"status"`
	Location *LatLng `json:"location,omitempty"`
}
