package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowstate/study-spots-api/internal/config"
	"github.com/flowstate/study-spots-api/internal/handler"
	middlewarepkg "github.com/flowstate/study-spots-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Search  *handler.SearchHandler
	Geocode *handler.GeocodeHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	api.GET("/search", handlers.Search.Search, middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch))
	api.GET("/geocode", handlers.Geocode.Lookup)
}
