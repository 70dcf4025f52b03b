package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/flowstate/study-spots-api/internal/config"
	"github.com/flowstate/study-spots-api/internal/handler"
	middlewarepkg "github.com/flowstate/study-spots-api/internal/middleware"
	"github.com/flowstate/study-spots-api/internal/places"
	"github.com/flowstate/study-spots-api/internal/router"
	"github.com/flowstate/study-spots-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.GoogleMapsAPIKey == "" {
		log.Printf("GOOGLE_MAPS_API_KEY is not set; searches will fail until it is configured")
	}

	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}
	placesClient := places.NewClient(httpClient, cfg.GoogleMapsAPIKey, cfg.SearchRadiusMeters)

	searchService := service.NewSearchService(placesClient)

	searchHandler := handler.NewSearchHandler(searchService)
	geocodeHandler := handler.NewGeocodeHandler(placesClient)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{
		Search:  searchHandler,
		Geocode: geocodeHandler,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
