package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	mw "github.com/dealscout/dealscout/internal/api/middleware"
)

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(mw.RateLimit(1, 2))
	e.GET("/api/v1/listings", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/listings", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(mw.RateLimit(0.001, 1)) // effectively no refill during the test
	e.GET("/api/v1/listings", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/listings", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/listings", http.NoBody))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRateLimit_ProbesExempt(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(mw.RateLimit(0.001, 1))
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Probes never consume the budget.
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
