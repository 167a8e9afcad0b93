// Package telemetry wires Prometheus collectors for the site: request
// durations, per-model curve evaluations, and calculator hits.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Telemetry owns a private registry so tests can build as many instances as
// they like without collector name collisions.
type Telemetry struct {
	enabled  bool
	registry *prometheus.Registry

	requestDuration  *prometheus.HistogramVec
	evaluationsTotal *prometheus.CounterVec
	estimatesTotal   prometheus.Counter
}

// New builds the collectors and registers them. When disabled, the recording
// methods are no-ops and the metrics handler serves an empty registry.
func New(enabled bool) *Telemetry {
	t := &Telemetry{
		enabled:  enabled,
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "radsite",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		evaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "radsite",
			Name:      "model_evaluations_total",
			Help:      "Dose-response curve evaluations served, by model.",
		}, []string{"model"}),
		estimatesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "radsite",
			Name:      "dose_estimates_total",
			Help:      "Calculator estimates served.",
		}),
	}
	if enabled {
		t.registry.MustRegister(t.requestDuration, t.evaluationsTotal, t.estimatesTotal)
	}
	return t
}

// RecordEvaluation counts one curve evaluation for a model.
func (t *Telemetry) RecordEvaluation(model string) {
	if !t.enabled {
		return
	}
	t.evaluationsTotal.WithLabelValues(model).Inc()
}

// RecordEstimate counts one calculator request.
func (t *Telemetry) RecordEstimate() {
	if !t.enabled {
		return
	}
	t.estimatesTotal.Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (t *Telemetry) Handler() http.Handler {
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})
}

// Middleware records request latency per route. Routes are labelled by their
// registered path, not the concrete URL, to keep cardinality bounded.
func (t *Telemetry) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !t.enabled {
				return next(c)
			}
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			t.requestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
