package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetrics holds the request instruments of the web display server.
type HTTPMetrics struct {
	requests  metric.Int64Counter
	durations metric.Float64Histogram
}

// NewHTTPMetrics registers the HTTP request counter and duration histogram.
func NewHTTPMetrics(meterProvider metric.MeterProvider, namespace string) (*HTTPMetrics, error) {
	meter := meterProvider.Meter(namespace)

	requests, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request counter: %w", err)
	}

	durations, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http duration histogram: %w", err)
	}

	return &HTTPMetrics{requests: requests, durations: durations}, nil
}

// Middleware records one request and its duration, labelled by route pattern.
func (h *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("path", routeLabel(c.FullPath())),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
		)
		ctx := c.Request.Context()
		h.requests.Add(ctx, 1, attrs)
		h.durations.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}

// HTTPMetricsMiddleware builds the middleware, degrading to a pass-through when the
// instruments cannot be created.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	h, err := NewHTTPMetrics(meterProvider, namespace)
	if err != nil {
		return func(c *gin.Context) { c.Next() }
	}
	return h.Middleware()
}

// routeLabel keeps the path label bounded to registered routes.
func routeLabel(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}
