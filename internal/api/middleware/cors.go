package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browser clients of the listed origins, or any origin when none are listed.
// Credentials are never allowed: browsers authenticate with bearer tokens.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization",
			"Cache-Control", "Last-Event-ID", "X-Device-Fingerprint", RequestIDHeader,
		},
		ExposeHeaders: []string{"Content-Length", "Retry-After", "X-RateLimit-Remaining", RequestIDHeader},
		MaxAge:        time.Hour,
	}
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	return cors.New(config)
}
