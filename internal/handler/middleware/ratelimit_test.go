//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/pkg/config"
	"charter-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/settle", middleware.RateLimit(config.RateLimitConfig{RPS: 0.001, Burst: 2}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/settle", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.PerformRequest(t, r, http.MethodPost, "/settle", nil, "")
	httptest.AssertErrorKind(t, rec, http.StatusTooManyRequests, "RATE_LIMITED")
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}
