// Distributed per-IP request limit backed by Redis.
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/i18n"
	"github.com/connectvan/backend/internal/response"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	rateLimitWindow    = time.Second
)

// RateLimitMiddleware allows limitPerSec requests per client IP per second; above that 429.
// A non-positive limit disables the check.
func RateLimitMiddleware(logger *zap.Logger, rdb *redis.Client, limitPerSec int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limitPerSec <= 0 {
			c.Next()
			return
		}
		lang := c.GetString(string(ContextKeyLanguage))
		key := rateLimitKeyPrefix + c.ClientIP()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Error("rate limit counter", zap.Error(err))
			response.AbortWithError(c, http.StatusServiceUnavailable, i18n.T(lang, "error.unavailable"))
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, rateLimitWindow)
		}
		if ttl, _ := rdb.TTL(ctx, key).Result(); ttl < 0 {
			rdb.Expire(ctx, key, rateLimitWindow)
		}

		if count > int64(limitPerSec) {
			c.Header("Retry-After", "1")
			response.AbortWithError(c, http.StatusTooManyRequests, i18n.T(lang, "error.rate_limit"))
			return
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limitPerSec))
		c.Next()
	}
}
