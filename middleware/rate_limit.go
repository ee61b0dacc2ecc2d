package middleware

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/NomadCrew/tripboard/errors"
	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/services"
	"github.com/gin-gonic/gin"
)

// RateLimiter limits requests per client IP in fixed windows. Limiter
// failures let the request through so the board stays up when Redis is not.
func RateLimiter(limiter services.RateLimiterInterface, requestsPerWindow int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("api:%s", getClientIP(c))

		allowed, retryAfter, err := limiter.CheckLimit(c.Request.Context(), key, requestsPerWindow, window)
		if err != nil {
			logger.GetLogger().Warnw("Rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", requestsPerWindow))
		if !allowed {
			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", fmt.Sprintf("%d", seconds))
			_ = c.Error(apperrors.RateLimited(fmt.Sprintf("retry after %d seconds", seconds)))
			c.Abort()
			return
		}

		c.Next()
	}
}

// getClientIP prefers proxy headers, then falls back to the peer address.
func getClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.ClientIP()
}
