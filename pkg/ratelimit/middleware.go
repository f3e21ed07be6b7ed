package ratelimit

import (
	"fmt"
	"net/http"
	"strings"

	"beeos/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-IP rate limits, bucketed by route
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			// fail open: a broken limiter must not take the API down
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded", map[string]interface{}{
				"limit":      result.Limit,
				"reset_time": result.ResetTime,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(path string) RateLimitType {
	switch {
	case strings.Contains(path, "/admin/"):
		return RateLimitTypeAdmin

	case strings.Contains(path, "/auth/"):
		return RateLimitTypeAuth

	// The submit endpoint carries the database transaction; keep it tight
	case strings.Contains(path, "/checkout/"):
		return RateLimitTypeCheckout

	case strings.Contains(path, "/showtimes"),
		strings.Contains(path, "/films"),
		strings.Contains(path, "/studios"):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}
