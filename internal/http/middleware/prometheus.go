package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMiddleware counts handled HTTP requests by method, route
// pattern and status.
type PrometheusMiddleware struct {
	requestCount *prometheus.CounterVec
}

// NewPrometheusMiddleware registers the request counter on reg.
func NewPrometheusMiddleware(reg prometheus.Registerer) (*PrometheusMiddleware, error) {
	m := &PrometheusMiddleware{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests handled by the job board API.",
			},
			[]string{"method", "path", "status"},
		),
	}

	if err := reg.Register(m.requestCount); err != nil {
		return nil, err
	}

	return m, nil
}

// Handler returns the fiber middleware handler.
func (m *PrometheusMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Exclude /metrics from being counted
		if c.Path() == "/metrics" {
			return c.Next()
		}

		err := c.Next()

		// Prefer the route pattern (/api/jobs/:id) over the raw path
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.requestCount.WithLabelValues(
			c.Method(),
			path,
			strconv.Itoa(status),
		).Inc()

		return err
	}
}

// RegisterAppMetrics exposes the notification hub and rate limiter
// internals: live websocket connections, events fanned out, and
// requests rejected by the limiter.
func RegisterAppMetrics(reg prometheus.Registerer, wsConnections, broadcasts, rateLimitRejections func() float64) error {
	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "admin_ws_connections",
			Help: "Number of live admin websocket connections.",
		}, wsConnections),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "admin_ws_broadcasts_total",
			Help: "Total events fanned out to admin websocket connections.",
		}, broadcasts),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Total requests rejected by the rate limiter.",
		}, rateLimitRejections),
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
