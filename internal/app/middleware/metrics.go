package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

func NewMetricMiddleware(meter metric.Meter) gin.HandlerFunc {

	durationHistogram, _ := meter.Int64Histogram(
		"http.server.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("The latency of HTTP requests."),
	)

	requestCounter, _ := meter.Int64Counter(
		"http.server.requests_total",
		metric.WithDescription("The total number of HTTP requests."),
	)

	successCounter, _ := meter.Int64Counter(
		"http.server.success_requests_total",
		metric.WithDescription("The total number of successful HTTP requests."),
	)

	errorCounter, _ := meter.Int64Counter(
		"http.server.error_requests_total",
		metric.WithDescription("The total number of failed HTTP requests."),
	)

	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime).Milliseconds()

		attributes := metric.WithAttributes(
			semconv.HTTPRoute(c.FullPath()),
			semconv.HTTPMethod(c.Request.Method),
			attribute.Int("http.status_code", c.Writer.Status()),
		)

		ctx := c.Request.Context()
		durationHistogram.Record(ctx, duration, attributes)
		requestCounter.Add(ctx, 1, attributes)
		if c.Writer.Status() < 400 {
			successCounter.Add(ctx, 1, attributes)
		} else {
			errorCounter.Add(ctx, 1, attributes)
		}
	}
}
