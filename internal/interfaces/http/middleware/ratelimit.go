package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumistream/internal/infrastructure/ratelimit"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

// RateLimit enforces a per-IP limit on an endpoint group. When the limiter
// backend is unavailable the request is allowed through rather than blocking
// all traffic.
func RateLimit(limiter ratelimit.RateLimiter, limit ratelimit.Limit, scope string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(key, limit)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
