package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flowstate/study-spots-api/internal/dto"
	"github.com/flowstate/study-spots-api/internal/places"
)

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*dto.LatLng, error)
}

// GeocodeHandler exposes the address lookup endpoint.
type GeocodeHandler struct {
	geocoder Geocoder
}

// NewGeocodeHandler creates a new handler instance.
func NewGeocodeHandler(geocoder Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

// Lookup handles GET /api/geocode requests. An address the provider cannot
// match is a normal not_found outcome, not an error status.
func (h *GeocodeHandler) Lookup(c echo.Context) error {
	address := strings.TrimSpace(c.QueryParam("address"))
	if address == "" {
		return Error(c, http.StatusBadRequest, "address is required")
	}

	location, err := h.geocoder.Geocode(c.Request().Context(), address)
	if errors.Is(err, places.ErrNotFound) {
		return c.JSON(http.StatusOK, dto.GeocodeResponse{Status: "not_found"})
	}
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to geocode address")
	}

	return c.JSON(http.StatusOK, dto.GeocodeResponse{Status: "success", Location: location})
}
