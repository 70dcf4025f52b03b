package places

import (
	"encoding/json"

	"github.com/flowstate/study-spots-api/internal/dto"
)

// FlexString decodes either a flat JSON string (legacy place-search API) or
// the current API's localized text object ({"text": "...", "languageCode":
// "..."}). Anything else decodes to the empty string rather than failing the
// whole payload.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var flat string
		if err := json.Unmarshal(data, &flat); err != nil {
			return err
		}
		*s = FlexString(flat)
		return nil
	}
	var nested struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		*s = ""
		return nil
	}
	*s = FlexString(nested.Text)
	return nil
}

// PriceTag carries the provider price signal in whichever encoding was sent:
// the legacy numeric 0-4 level or the current PRICE_LEVEL_* label.
type PriceTag struct {
	Numeric *int
	Label   string
}

func (p *PriceTag) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &p.Label)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	p.Numeric = &n
	return nil
}

// GeoPoint tolerates both coordinate spellings the provider has used.
type GeoPoint struct {
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Coords resolves the point to a coordinate pair, or nil when the provider
// sent no usable position.
func (g *GeoPoint) Coords() *dto.LatLng {
	if g == nil {
		return nil
	}
	switch {
	case g.Lat != nil && g.Lng != nil:
		return &dto.LatLng{Lat: *g.Lat, Lng: *g.Lng}
	case g.Latitude != nil && g.Longitude != nil:
		return &dto.LatLng{Lat: *g.Latitude, Lng: *g.Longitude}
	}
	return nil
}

// Geometry is the legacy wrapper around a place position.
type Geometry struct {
	Location GeoPoint `json:"location"`
}

// OpeningHours carries the open-now flag under either key spelling.
type OpeningHours struct {
	OpenNow      *bool `json:"open_now"`
	OpenNowCamel *bool `json:"openNow"`
}

func (o *OpeningHours) openNow() *bool {
	if o == nil {
		return nil
	}
	if o.OpenNow != nil {
		return o.OpenNow
	}
	return o.OpenNowCamel
}

// Photo is a provider photo handle. The legacy API calls it photo_reference,
// the current one a resource name.
type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Name           string `json:"name"`
}

// Place is a raw provider place record, decoded defensively across the
// legacy and current response shapes. Accessors below select whichever field
// the provider populated; callers never touch the duplicated raw fields.
type Place struct {
	PlaceID          string        `json:"place_id"`
	ID               string        `json:"id"`
	Name             FlexString    `json:"name"`
	DisplayName      FlexString    `json:"displayName"`
	Geometry         *Geometry     `json:"geometry"`
	Location         *GeoPoint     `json:"location"`
	Vicinity         string        `json:"vicinity"`
	FormattedAddress string        `json:"formatted_address"`
	Rating           *float64      `json:"rating"`
	UserRatingsTotal *int          `json:"user_ratings_total"`
	UserRatingCount  *int          `json:"userRatingCount"`
	PriceLevel       *PriceTag     `json:"price_level"`
	PriceLevelCamel  *PriceTag     `json:"priceLevel"`
	OpeningHours     *OpeningHours `json:"opening_hours"`
	CurrentHours     *OpeningHours `json:"currentOpeningHours"`
	Types            []string      `json:"types"`
	Photos           []Photo       `json:"photos"`
}

// Identifier returns the provider-assigned place id, the dedup key.
func (p Place) Identifier() string {
	if p.PlaceID != "" {
		return p.PlaceID
	}
	return p.ID
}

// DisplayNameText returns the human-readable name, empty when absent.
func (p Place) DisplayNameText() string {
	if p.Name != "" {
		return string(p.Name)
	}
	return string(p.DisplayName)
}

// Address returns the formatted address, empty when absent.
func (p Place) Address() string {
	if p.Vicinity != "" {
		return p.Vicinity
	}
	return p.FormattedAddress
}

// Position returns the place coordinates, or nil when the provider sent none.
func (p Place) Position() *dto.LatLng {
	if p.Geometry != nil {
		if coords := p.Geometry.Location.Coords(); coords != nil {
			return coords
		}
	}
	return p.Location.Coords()
}

// RatingCount returns the review count under either field spelling.
func (p Place) RatingCount() int {
	if p.UserRatingsTotal != nil {
		return *p.UserRatingsTotal
	}
	if p.UserRatingCount != nil {
		return *p.UserRatingCount
	}
	return 0
}

// Price returns the raw price signal, or nil when the provider sent none.
func (p Place) Price() *PriceTag {
	if p.PriceLevel != nil {
		return p.PriceLevel
	}
	return p.PriceLevelCamel
}

// IsOpenNow returns the open-now flag, nil when the provider did not say.
func (p Place) IsOpenNow() *bool {
	if flag := p.OpeningHours.openNow(); flag != nil {
		return flag
	}
	return p.CurrentHours.openNow()
}

// PhotoRefs returns the photo handles usable with the media endpoint.
func (p Place) PhotoRefs() []string {
	var refs []string
	for _, photo := range p.Photos {
		ref := photo.PhotoReference
		if ref == "" {
			ref = photo.Name
		}
		if ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}
