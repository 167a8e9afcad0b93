// Package server is the HTTP layer: it renders the single page and exposes
// the chart and calculator computations as JSON endpoints.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Mahdeabusaleh2/radsite/config"
	"github.com/Mahdeabusaleh2/radsite/internal/content"
	"github.com/Mahdeabusaleh2/radsite/internal/telemetry"
)

// New assembles the echo instance with all routes registered. Split from Run
// so handler tests can drive the full router through httptest.
func New(cfg *config.Config, site *content.Content, tele *telemetry.Telemetry) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))
	e.Use(tele.Middleware())

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if cfg.Telemetry.Enabled {
		e.GET("/metrics", echo.WrapHandler(tele.Handler()))
	}

	page := &PageHandler{Site: site, Calculator: cfg.Calculator}
	page.Register(e)

	api := e.Group("/api")
	(&SourcesHandler{}).Register(api)
	(&ModelsHandler{Dose: cfg.Dose, Telemetry: tele}).Register(api)
	(&EstimateHandler{Telemetry: tele}).Register(api)

	return e, nil
}

// Run loads the static site content, builds the router and serves until the
// listener fails.
func Run(cfg *config.Config) error {
	site, err := content.Load()
	if err != nil {
		return err
	}
	tele := telemetry.New(cfg.Telemetry.Enabled)

	e, err := New(cfg, site, tele)
	if err != nil {
		return err
	}
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	return e.Start(cfg.Server.Address)
}
