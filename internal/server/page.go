package server

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mahdeabusaleh2/radsite/config"
	"github.com/Mahdeabusaleh2/radsite/internal/content"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// PageHandler renders the whole site as one server-side page. The charts are
// drawn client-side by Plotly (loaded from CDN) against the JSON endpoints.
type PageHandler struct {
	Site       *content.Content
	Calculator config.CalculatorConfig
}

func (h *PageHandler) Register(e *echo.Echo) {
	e.GET("/", h.page)
}

type pageData struct {
	Site       *content.Content
	MaxFlights int
	MaxXRays   int
}

func (h *PageHandler) page(c echo.Context) error {
	var buf bytes.Buffer
	data := pageData{
		Site:       h.Site,
		MaxFlights: h.Calculator.MaxFlights,
		MaxXRays:   h.Calculator.MaxXRays,
	}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTML(http.StatusOK, buf.String())
}
