package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestTimeout puts a deadline on every request context so a stalled
// store or chain dependency cannot hold a handler open indefinitely.
// Exempt paths keep their long-lived connections, e.g. the SSE stream.
func RequestTimeout(timeout time.Duration, exemptPaths ...string) echo.MiddlewareFunc {
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, path := range exemptPaths {
		exempt[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if timeout <= 0 {
				return next(c)
			}
			if _, ok := exempt[c.Path()]; ok {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
