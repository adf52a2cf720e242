package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit returns Echo middleware enforcing a process-wide token bucket:
// perSecond sustained requests with the given burst. Requests beyond the
// budget get 429 without reaching a handler. Probe and scrape endpoints are
// exempt so an overloaded process still answers its health checks.
func RateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if _, exempt := metricsSkipPaths[path]; exempt {
				return next(c)
			}

			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
