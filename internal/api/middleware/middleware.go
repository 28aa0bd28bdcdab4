package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/creatorchain/creatorchain/internal/api/shared/errors"
	"github.com/creatorchain/creatorchain/internal/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID reuses the caller's X-Request-ID or assigns a new one and echoes it back
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, if any
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger writes one entry per request. Server errors log at error level,
// client errors at warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if id := GetRequestID(c); id != "" {
			fields = append(fields, zap.String("request_id", id))
		}
		if subject := AuthSubject(c); subject != "" {
			fields = append(fields, zap.String("user_id", subject))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		log := logger.FromContext(c.Request.Context())
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("API request failed", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("API request rejected", fields...)
		default:
			log.Info("API request", fields...)
		}
	}
}

// Recovery turns a handler panic into a 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", r),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", GetRequestID(c)),
				zap.Stack("stack"),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": apierrors.NewInternalError("Internal server error"),
			})
		}()
		c.Next()
	}
}
