package ratelimit

import (
	"github.com/gin-gonic/gin"
	"github.com/saferoute/saferoute-api/internal/pkg/response"
)

// Middleware rejects requests over the limit with 429. Keyed by the
// authenticated account when present, falling back to client IP so
// unauthenticated probes are throttled too.
func Middleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("userID")
		if key == "" {
			key = c.ClientIP()
		}

		if !rl.Allow(key) {
			response.TooManyRequests(c, "Too many reports submitted, slow down", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Next()
	}
}
