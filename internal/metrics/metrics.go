// Package metrics exposes Prometheus request metrics for the API.
package metrics

import (
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/collectors"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a registry with the HTTP collectors.
type Metrics struct {
    reg      *prometheus.Registry
    requests *prometheus.CounterVec
    duration *prometheus.HistogramVec
}

// New builds the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
    m := &Metrics{
        reg: prometheus.NewRegistry(),
        requests: prometheus.NewCounterVec(prometheus.CounterOpts{
            Name: "rentalapi_http_requests_total",
            Help: "HTTP requests by method, route and status.",
        }, []string{"method", "route", "status"}),
        duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
            Name:    "rentalapi_http_request_duration_seconds",
            Help:    "HTTP request latency by method and route.",
            Buckets: prometheus.DefBuckets,
        }, []string{"method", "route"}),
    }
    m.reg.MustRegister(
        m.requests,
        m.duration,
        collectors.NewGoCollector(),
        collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
    )
    return m
}

// Middleware records every request.  Unmatched paths share one route label
// so arbitrary URLs cannot grow the series count.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                c.Error(err)
            }
            route := c.Path()
            if route == "" {
                route = "unmatched"
            }
            method := c.Request().Method
            m.requests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
            m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
            return nil
        }
    }
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
    return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }
