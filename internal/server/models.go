package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Mahdeabusaleh2/radsite/config"
	"github.com/Mahdeabusaleh2/radsite/internal/dose"
	"github.com/Mahdeabusaleh2/radsite/internal/telemetry"
)

// ModelsHandler serves the dose-response model descriptors and their sampled
// curves.
type ModelsHandler struct {
	Dose      config.DoseConfig
	Telemetry *telemetry.Telemetry
}

func (h *ModelsHandler) Register(g *echo.Group) {
	g.GET("/models", h.list)
	g.GET("/models/:id/curve", h.curve)
	g.GET("/curves", h.curves)
}

// CurveResponse is one sampled model curve. Doses and Risks are parallel
// slices over the same grid.
type CurveResponse struct {
	Model     dose.Model `json:"model"`
	Label     string     `json:"label"`
	Threshold float64    `json:"threshold,omitempty"`
	Doses     []float64  `json:"doses"`
	Risks     []float64  `json:"risks"`
}

// CurvesResponse carries all five curves over one shared grid; the page chart
// fetches this once.
type CurvesResponse struct {
	Doses  []float64     `json:"doses"`
	Series []SeriesEntry `json:"series"`
}

type SeriesEntry struct {
	Model dose.Model `json:"model"`
	Label string     `json:"label"`
	Risks []float64  `json:"risks"`
}

func (h *ModelsHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, dose.Models())
}

func (h *ModelsHandler) curve(c echo.Context) error {
	m, err := dose.ParseModel(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	grid, threshold, err := h.gridParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	curve := dose.Curve{Model: m, Threshold: threshold}
	risks, err := curve.Series(grid)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.Telemetry.RecordEvaluation(string(m))

	resp := CurveResponse{Model: m, Label: labelFor(m), Doses: grid, Risks: risks}
	if m == dose.LinearThreshold {
		resp.Threshold = threshold
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ModelsHandler) curves(c echo.Context) error {
	grid, threshold, err := h.gridParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp := CurvesResponse{Doses: grid}
	for _, d := range dose.Models() {
		curve := dose.Curve{Model: d.ID, Threshold: threshold}
		risks, err := curve.Series(grid)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.Telemetry.RecordEvaluation(string(d.ID))
		resp.Series = append(resp.Series, SeriesEntry{Model: d.ID, Label: d.Label, Risks: risks})
	}
	return c.JSON(http.StatusOK, resp)
}

// gridParams reads from/to/points/threshold query overrides, falling back to
// the configured display grid. Validation of the resulting grid happens in
// dose.Grid.
func (h *ModelsHandler) gridParams(c echo.Context) ([]float64, float64, error) {
	from, err := floatParam(c, "from", h.Dose.GridFrom)
	if err != nil {
		return nil, 0, err
	}
	to, err := floatParam(c, "to", h.Dose.GridTo)
	if err != nil {
		return nil, 0, err
	}
	points, err := intParam(c, "points", h.Dose.GridPoints)
	if err != nil {
		return nil, 0, err
	}
	threshold, err := floatParam(c, "threshold", h.Dose.DefaultThreshold)
	if err != nil {
		return nil, 0, err
	}
	if threshold <= 0 {
		return nil, 0, errors.New("threshold must be > 0")
	}
	grid, err := dose.Grid(from, to, points)
	if err != nil {
		return nil, 0, err
	}
	return grid, threshold, nil
}

func labelFor(m dose.Model) string {
	for _, d := range dose.Models() {
		if d.ID == m {
			return d.Label
		}
	}
	return string(m)
}

func floatParam(c echo.Context, name string, def float64) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return v, nil
}

func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}
