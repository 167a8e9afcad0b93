package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mahdeabusaleh2/radsite/internal/exposure"
)

// SourcesHandler serves the reference exposure table behind the comparison
// bar chart.
type SourcesHandler struct{}

func (h *SourcesHandler) Register(g *echo.Group) {
	g.GET("/sources", h.list)
}

func (h *SourcesHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, exposure.Sources())
}
