package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/creatorchain/creatorchain/internal/api/middleware"
	"github.com/creatorchain/creatorchain/internal/ratelimit"
)

const (
	RATE_LIMIT_SCOPE_REDIRECT = "redirect"
	RATE_LIMIT_SCOPE_API      = "api"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, limiter ratelimit.Limiter) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Referral redirect (public, throttled per client IP)
	router.GET("/share/:code",
		middleware.RateLimit(limiter, RATE_LIMIT_SCOPE_REDIRECT, middleware.ClientIPKey),
		handler.RedirectReferral)

	v1 := router.Group("/api/v1")
	{
		// Public catalogue
		v1.GET("/content", handler.ListActiveContent)
		v1.GET("/content/:id", handler.GetContent)

		// Identity provider sync (API key only)
		v1.POST("/profiles", middleware.APIKeyAuth(authCfg), handler.UpsertProfile)

		user := v1.Group("",
			middleware.UserAuth(authCfg),
			middleware.RateLimit(limiter, RATE_LIMIT_SCOPE_API, middleware.SubjectKey),
		)
		{
			user.POST("/me/profile", handler.UpsertMyProfile)
			user.GET("/me/dashboard", handler.GetDashboard)
			user.GET("/me/fraud-score", handler.GetFraudScore)

			user.POST("/content", handler.CreateContent)
			user.GET("/creator/content", handler.ListCreatorContent)
			user.PATCH("/content/:id/status", handler.UpdateContentStatus)
			user.GET("/content/:id/analytics", handler.GetContentAnalytics)

			user.POST("/referral-links", handler.GenerateReferralLink)
			user.POST("/shares", handler.RecordShare)

			user.GET("/notifications", handler.ListNotifications)
			user.GET("/notifications/unread-count", handler.GetUnreadCount)
			user.POST("/notifications/read-all", handler.MarkAllNotificationsRead)
			user.POST("/notifications/:id/read", handler.MarkNotificationRead)
		}

		// EventSource cannot set headers, so the stream accepts the access_token query parameter
		v1.GET("/notifications/stream", middleware.UserAuth(authCfg), handler.StreamNotifications)
	}
}
