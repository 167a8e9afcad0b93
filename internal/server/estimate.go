package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mahdeabusaleh2/radsite/internal/exposure"
	"github.com/Mahdeabusaleh2/radsite/internal/telemetry"
)

// EstimateHandler serves the annual dose calculator. Every request is an
// independent recomputation; nothing is remembered between calls.
type EstimateHandler struct {
	Telemetry *telemetry.Telemetry
}

func (h *EstimateHandler) Register(g *echo.Group) {
	g.GET("/dose/estimate", h.estimate)
}

// EstimateResponse is the calculator breakdown plus the display string shown
// under the sliders.
type EstimateResponse struct {
	exposure.Estimate
	Display string `json:"display"`
}

func (h *EstimateHandler) estimate(c echo.Context) error {
	flights, err := intParam(c, "flights", 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	xrays, err := intParam(c, "xrays", 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	est, err := exposure.Calculate(flights, xrays)
	if err != nil {
		if errors.Is(err, exposure.ErrNegativeCount) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Telemetry.RecordEstimate()

	return c.JSON(http.StatusOK, EstimateResponse{Estimate: est, Display: est.Display()})
}
