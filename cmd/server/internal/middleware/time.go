package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Stamps the moment a request was received under key. Score submissions store it as the
// score's createdAt, so it decides which score is current for a registration.
func Time(key string) echo.MiddlewareFunc {
	return TimeFrom(key, time.Now)
}

// Like [Time] with the clock supplied by the caller
func TimeFrom(key string, now func() time.Time) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, span := tracer.Start(c.Request().Context(), "Time", trace.WithAttributes(
				attribute.String("key", key),
			))
			defer span.End()

			received := now().UTC()
			c.Set(key, received)

			span.AddEvent("received", trace.WithAttributes(
				attribute.Int64("received.unix_ms", received.UnixMilli()),
			))

			span.RecordError(nil)
			span.SetStatus(codes.Ok, "stamped request time")
			return next(c)
		}
	}
}
