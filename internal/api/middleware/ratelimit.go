package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/creatorchain/creatorchain/internal/api/shared/errors"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/ratelimit"
	"github.com/creatorchain/creatorchain/internal/tracking"
)

// KeyFunc derives the rate limit key of a request
type KeyFunc func(c *gin.Context) string

// ClientIPKey keys requests by the originating client IP
func ClientIPKey(c *gin.Context) string {
	return "ip:" + RequestIP(c)
}

// SubjectKey keys requests by the authenticated user, falling back to the client IP
func SubjectKey(c *gin.Context) string {
	if subject := AuthSubject(c); subject != "" {
		return "user:" + subject
	}
	return ClientIPKey(c)
}

// RequestIP returns the first X-Forwarded-For entry, else X-Real-IP, else the peer address
func RequestIP(c *gin.Context) string {
	return tracking.ClientIP(c.GetHeader("X-Forwarded-For"), c.GetHeader("X-Real-IP"), c.ClientIP())
}

// RateLimit returns a gin middleware throttling requests per key within a scope
func RateLimit(limiter ratelimit.Limiter, scope string, keyFunc KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + keyFunc(c)
		decision := limiter.Allow(c.Request.Context(), key)

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if decision.Allowed {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))

		logger.Warn("Rate limit exceeded",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": apierrors.NewRateLimitedError("Too many requests. Please slow down."),
		})
	}
}
