package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flowstate/study-spots-api/internal/dto"
	"github.com/flowstate/study-spots-api/internal/service"
)

// SearchHandler exposes the study-spot search endpoint.
type SearchHandler struct {
	service *service.SearchService
}

// NewSearchHandler creates a new handler instance.
func NewSearchHandler(service *service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search handles GET /api/search requests.
func (h *SearchHandler) Search(c echo.Context) error {
	lat, err := parseCoord(c.QueryParam("lat"), 90)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid lat")
	}
	lng, err := parseCoord(c.QueryParam("lng"), 180)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid lng")
	}

	categories, err := dto.ParseCategories(c.QueryParam("categories"))
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	origin := dto.LatLng{Lat: lat, Lng: lng}
	results, err := h.service.Search(c.Request().Context(), origin, categories)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to fetch study spots")
	}

	if raw := strings.TrimSpace(c.QueryParam("filter")); raw != "" {
		results = service.FilterByCategory(results, dto.Category(strings.ToLower(raw)))
	}
	if mode := strings.TrimSpace(c.QueryParam("sort")); mode != "" {
		results = service.SortPlaces(results, mode)
	}

	return c.JSON(http.StatusOK, dto.SearchResponse{
		Status:  "success",
		Count:   len(results),
		Results: results,
	})
}

// parseCoord parses a coordinate query parameter bounded by [-limit, limit].
func parseCoord(input string, limit float64) (float64, error) {
	input = strings.TrimSpace(input)
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, err
	}
	// NaN fails every range comparison, so reject it explicitly
	if math.IsNaN(value) || value < -limit || value > limit {
		return 0, strconv.ErrRange
	}
	return value, nil
}
