package middleware

import (
	"net/http"

	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

// RateLimit shares one token bucket across every caller of the routes it guards.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, "RATE_LIMITED", errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
