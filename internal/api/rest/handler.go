package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/api/middleware"
	"github.com/creatorchain/creatorchain/internal/api/shared/constants"
	"github.com/creatorchain/creatorchain/internal/api/shared/dto"
	apierrors "github.com/creatorchain/creatorchain/internal/api/shared/errors"
	"github.com/creatorchain/creatorchain/internal/api/shared/executor"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/stream"
)

const (
	HEADER_DEVICE_FINGERPRINT = "X-Device-Fingerprint"
	HEADER_COUNTRY            = "CF-IPCountry"
	HEADER_CITY               = "CF-IPCity"
)

const linkNotFoundPage = `<!DOCTYPE html>
<html>
<head><title>Link Not Found</title></head>
<body>
<h1>Link Not Found</h1>
<p>This referral link does not exist or has been removed.</p>
</body>
</html>`

const redirectErrorPage = `<!DOCTYPE html>
<html>
<head><title>Something went wrong</title></head>
<body>
<h1>Something went wrong</h1>
<p>Please try the link again in a moment.</p>
</body>
</html>`

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// RedirectReferral logs a click and redirects to the campaign content
	// GET /share/:code
	RedirectReferral(c *gin.Context)

	// UpsertMyProfile syncs the caller's profile
	// POST /api/v1/me/profile
	UpsertMyProfile(c *gin.Context)

	// UpsertProfile syncs any profile on behalf of the identity provider (API key)
	// POST /api/v1/profiles
	UpsertProfile(c *gin.Context)

	// ListActiveContent returns the active campaign catalogue
	// GET /api/v1/content
	ListActiveContent(c *gin.Context)

	// GetContent returns an active campaign by slug
	// GET /api/v1/content/:id
	GetContent(c *gin.Context)

	// CreateContent publishes a campaign
	// POST /api/v1/content
	CreateContent(c *gin.Context)

	// ListCreatorContent lists the caller's campaigns
	// GET /api/v1/creator/content
	ListCreatorContent(c *gin.Context)

	// UpdateContentStatus changes a campaign status
	// PATCH /api/v1/content/:id/status
	UpdateContentStatus(c *gin.Context)

	// GetContentAnalytics reports per-link clicks and shares of a campaign
	// GET /api/v1/content/:id/analytics
	GetContentAnalytics(c *gin.Context)

	// GenerateReferralLink issues the caller's referral link for a campaign
	// POST /api/v1/referral-links
	GenerateReferralLink(c *gin.Context)

	// RecordShare records a share claim
	// POST /api/v1/shares
	RecordShare(c *gin.Context)

	// GetDashboard returns the viewer dashboard
	// GET /api/v1/me/dashboard
	GetDashboard(c *gin.Context)

	// GetFraudScore returns the caller's average risk score of the last 24h
	// GET /api/v1/me/fraud-score
	GetFraudScore(c *gin.Context)

	// ListNotifications lists the caller's notifications
	// GET /api/v1/notifications?limit=<limit>
	ListNotifications(c *gin.Context)

	// GetUnreadCount counts the caller's unread notifications
	// GET /api/v1/notifications/unread-count
	GetUnreadCount(c *gin.Context)

	// MarkNotificationRead marks one notification read
	// POST /api/v1/notifications/:id/read
	MarkNotificationRead(c *gin.Context)

	// MarkAllNotificationsRead marks every notification read
	// POST /api/v1/notifications/read-all
	MarkAllNotificationsRead(c *gin.Context)

	// StreamNotifications pushes the caller's notifications as server-sent events
	// GET /api/v1/notifications/stream?access_token=<jwt>
	StreamNotifications(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug     bool
	executor  executor.Executor
	hub       stream.Hub
	keepalive time.Duration
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor, hub stream.Hub) Handler {
	return &handler{
		debug:     debug,
		executor:  exec,
		hub:       hub,
		keepalive: constants.SSE_KEEPALIVE_INTERVAL,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": constants.SERVICE_NAME,
	})
}

// RedirectReferral logs a click and redirects to the campaign content
func (h *handler) RedirectReferral(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(linkNotFoundPage))
		return
	}

	target, err := h.executor.TrackClick(c.Request.Context(), code, requestMetadata(c))
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(linkNotFoundPage))
			return
		}
		logger.ErrorCtx(c.Request.Context(), err, zap.String("code", code))
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(redirectErrorPage))
		return
	}

	c.Redirect(http.StatusFound, target)
}

// UpsertMyProfile syncs the caller's profile
func (h *handler) UpsertMyProfile(c *gin.Context) {
	var req dto.UpsertProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.UpsertProfile(c.Request.Context(), middleware.AuthSubject(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpsertProfile syncs the profile named in the body
func (h *handler) UpsertProfile(c *gin.Context) {
	var req dto.UpsertProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		respondWithError(c, apierrors.NewValidationError("id is required"))
		return
	}

	resp, err := h.executor.UpsertProfile(c.Request.Context(), req.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListActiveContent returns the active campaign catalogue
func (h *handler) ListActiveContent(c *gin.Context) {
	resp, err := h.executor.ListActiveContent(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetContent returns an active campaign by slug
func (h *handler) GetContent(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("id"))
	if slug == "" {
		respondBadRequest(c, "Content slug is required")
		return
	}

	resp, err := h.executor.GetContentBySlug(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err, zap.String("slug", slug))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateContent publishes a campaign
func (h *handler) CreateContent(c *gin.Context) {
	var req dto.CreateContentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.CreateContent(c.Request.Context(), middleware.AuthSubject(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListCreatorContent lists the caller's campaigns
func (h *handler) ListCreatorContent(c *gin.Context) {
	resp, err := h.executor.ListCreatorContent(c.Request.Context(), middleware.AuthSubject(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateContentStatus changes a campaign status
func (h *handler) UpdateContentStatus(c *gin.Context) {
	contentID := c.Param("id")

	var req dto.UpdateContentStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.UpdateContentStatus(c.Request.Context(), middleware.AuthSubject(c), contentID, req)
	if err != nil {
		respondError(c, err, zap.String("content_id", contentID))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetContentAnalytics reports per-link clicks and shares of a campaign
func (h *handler) GetContentAnalytics(c *gin.Context) {
	contentID := c.Param("id")

	resp, err := h.executor.GetContentAnalytics(c.Request.Context(), middleware.AuthSubject(c), contentID)
	if err != nil {
		respondError(c, err, zap.String("content_id", contentID))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateReferralLink issues the caller's referral link for a campaign
func (h *handler) GenerateReferralLink(c *gin.Context) {
	var req dto.GenerateReferralLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.GenerateReferralLink(c.Request.Context(), middleware.AuthSubject(c), req, requestMetadata(c))
	if err != nil {
		respondError(c, err, zap.String("content_id", req.ContentID))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecordShare records a share claim
func (h *handler) RecordShare(c *gin.Context) {
	var req dto.RecordShareRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.RecordShare(c.Request.Context(), middleware.AuthSubject(c), req)
	if err != nil {
		respondError(c, err, zap.String("referral_link_id", req.ReferralLinkID))
		return
	}

	status := http.StatusCreated
	if resp.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// GetDashboard returns the viewer dashboard
func (h *handler) GetDashboard(c *gin.Context) {
	resp, err := h.executor.GetViewerDashboard(c.Request.Context(), middleware.AuthSubject(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetFraudScore returns the caller's average risk score of the last 24h
func (h *handler) GetFraudScore(c *gin.Context) {
	resp, err := h.executor.GetFraudScore(c.Request.Context(), middleware.AuthSubject(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListNotifications lists the caller's notifications
func (h *handler) ListNotifications(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondWithError(c, apierrors.NewValidationError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	resp, err := h.executor.ListNotifications(c.Request.Context(), middleware.AuthSubject(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUnreadCount counts the caller's unread notifications
func (h *handler) GetUnreadCount(c *gin.Context) {
	resp, err := h.executor.GetUnreadCount(c.Request.Context(), middleware.AuthSubject(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkNotificationRead marks one notification read
func (h *handler) MarkNotificationRead(c *gin.Context) {
	notificationID := c.Param("id")

	if err := h.executor.MarkNotificationRead(c.Request.Context(), middleware.AuthSubject(c), notificationID); err != nil {
		respondError(c, err, zap.String("notification_id", notificationID))
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead marks every notification read
func (h *handler) MarkAllNotificationsRead(c *gin.Context) {
	resp, err := h.executor.MarkAllNotificationsRead(c.Request.Context(), middleware.AuthSubject(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// StreamNotifications pushes the caller's notifications as server-sent events
func (h *handler) StreamNotifications(c *gin.Context) {
	userID := middleware.AuthSubject(c)
	if userID == "" {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	events, unsubscribe := h.hub.Subscribe(userID)
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	logger.DebugCtx(c.Request.Context(), "Notification stream opened",
		zap.String("user_id", userID),
		zap.Int("connections", h.hub.Connections()),
	)

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-ticker.C:
			_, err := io.WriteString(w, ": keepalive\n\n")
			return err == nil
		}
	})

	logger.DebugCtx(ctx, "Notification stream closed", zap.String("user_id", userID))
}

// bindJSON decodes the request body and runs its validation, responding on failure
func bindJSON(c *gin.Context, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return false
	}
	return true
}

// requestMetadata collects the request fingerprint used by click tracking and bot checks
func requestMetadata(c *gin.Context) domain.RequestMetadata {
	return domain.RequestMetadata{
		IP:                middleware.RequestIP(c),
		UserAgent:         c.Request.UserAgent(),
		Referer:           c.Request.Referer(),
		DeviceFingerprint: c.GetHeader(HEADER_DEVICE_FINGERPRINT),
		Country:           c.GetHeader(HEADER_COUNTRY),
		City:              c.GetHeader(HEADER_CITY),
	}
}
