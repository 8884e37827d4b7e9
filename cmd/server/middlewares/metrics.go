package middlewares

import (
	"strconv"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "weather_api"

// Metrics holds the collectors of one app. Each app gets its own registry so tests
// can build several apps in one process.
type Metrics struct {
	reg          *prometheus.Registry
	reqDuration  *prometheus.HistogramVec
	reqTotal     *prometheus.CounterVec
	authRejected *prometheus.CounterVec
}

// normalizeRoutePath returns the route template ("/weather/paged/:page") so label
// cardinality stays bounded. Unmatched routes fall back to the raw path.
func normalizeRoutePath(c *fiber.Ctx) string {
	if route := c.Route(); route != nil {
		return route.Path
	}
	return c.Path()
}

// normalizeStatus groups 2xx, 4xx and 5xx codes by class.
func normalizeStatus(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return strconv.Itoa(status)
}

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		reqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		reqTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		authRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "auth_rejections_total",
				Help:      "Requests turned away by the authentication gate",
			},
			[]string{"reason"},
		),
	}
	m.reg.MustRegister(m.reqDuration, m.reqTotal, m.authRejected)
	return m
}

// AuthRejected counts one gate rejection. Safe to call on a nil *Metrics.
func (m *Metrics) AuthRejected(reason string) {
	if m == nil {
		return
	}
	m.authRejected.WithLabelValues(reason).Inc()
}

// Attach installs the request-timing middleware and the /metrics endpoint.
func (m *Metrics) Attach(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			// Render now so the recorded status is the one the client gets.
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		dur := time.Since(start).Seconds()

		method := c.Method()
		path := normalizeRoutePath(c)
		status := normalizeStatus(c.Response().StatusCode())

		m.reqDuration.WithLabelValues(method, path, status).Observe(dur)
		m.reqTotal.WithLabelValues(method, path, status).Inc()
		return nil
	})

	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})),
	)
}
