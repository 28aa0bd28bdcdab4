package antibot

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/store/schema"
)

// Flags are the heuristics triggered by an evaluation
type Flags struct {
	BotUserAgent         bool `json:"bot_user_agent,omitempty"`
	RapidClicks          bool `json:"rapid_clicks,omitempty"`
	SuspiciousIP         bool `json:"suspicious_ip,omitempty"`
	DuplicateFingerprint bool `json:"duplicate_fingerprint,omitempty"`
}

// Result is the outcome of ValidateUser
type Result struct {
	IsValid   bool  `json:"is_valid"`
	RiskScore int   `json:"risk_score"`
	Flags     Flags `json:"flags"`
}

// Config holds the scorer thresholds
type Config struct {
	ClickThreshold  int64
	ClickWindow     time.Duration
	RejectThreshold int
	ShareRateLimit  int64
	ShareRateWindow time.Duration
}

// DefaultConfig returns the standard thresholds
func DefaultConfig() Config {
	return Config{
		ClickThreshold:  domain.CLICK_VELOCITY_THRESHOLD,
		ClickWindow:     domain.CLICK_VELOCITY_WINDOW,
		RejectThreshold: domain.RISK_REJECTION_THRESHOLD,
		ShareRateLimit:  domain.SHARE_RATE_LIMIT,
		ShareRateWindow: domain.SHARE_RATE_WINDOW,
	}
}

// Scorer computes heuristic risk scores for user actions
//
//go:generate mockgen -source=scorer.go -destination=../mocks/antibot.go -package=mocks -mock_names=Scorer=MockScorer
type Scorer interface {
	// ValidateUser scores the request and records an audit event. It fails open.
	ValidateUser(ctx context.Context, userID string, metadata domain.RequestMetadata) Result
	// CheckShareRateLimit reports whether the user may record another share. It fails open.
	CheckShareRateLimit(ctx context.Context, userID string) bool
	// FraudScore returns the rounded average risk score of the user's recent events
	FraudScore(ctx context.Context, userID string) int
}

type scorer struct {
	cfg      Config
	store    store.Store
	velocity VelocityCounter
	clock    adapter.Clock
}

// NewScorer creates a new anti-bot scorer
func NewScorer(cfg Config, store store.Store, velocity VelocityCounter, clock adapter.Clock) Scorer {
	defaults := DefaultConfig()
	if cfg.ClickThreshold <= 0 {
		cfg.ClickThreshold = defaults.ClickThreshold
	}
	if cfg.ClickWindow <= 0 {
		cfg.ClickWindow = defaults.ClickWindow
	}
	if cfg.RejectThreshold <= 0 {
		cfg.RejectThreshold = defaults.RejectThreshold
	}
	if cfg.ShareRateLimit <= 0 {
		cfg.ShareRateLimit = defaults.ShareRateLimit
	}
	if cfg.ShareRateWindow <= 0 {
		cfg.ShareRateWindow = defaults.ShareRateWindow
	}

	return &scorer{cfg: cfg, store: store, velocity: velocity, clock: clock}
}

// ValidateUser scores the request and records an audit event
func (s *scorer) ValidateUser(ctx context.Context, userID string, metadata domain.RequestMetadata) Result {
	result, err := s.evaluate(ctx, userID, metadata)
	if err != nil {
		logger.FailOpenCtx(ctx, "anti-bot evaluation failed", err, zap.String("userID", userID))
		return Result{IsValid: true}
	}

	if !result.IsValid {
		logger.WarnCtx(ctx, "user rejected by anti-bot scorer",
			zap.String("userID", userID),
			zap.Int("riskScore", result.RiskScore),
			zap.Any("flags", result.Flags))
	}

	return *result
}

func (s *scorer) evaluate(ctx context.Context, userID string, metadata domain.RequestMetadata) (*Result, error) {
	now := s.clock.Now()
	var flags Flags
	score := 0

	if IsBotUserAgent(metadata.UserAgent) {
		flags.BotUserAgent = true
		score += domain.BOT_USER_AGENT_SCORE
	}

	if metadata.IP != "" {
		clicks, err := s.velocity.CountClicks(ctx, metadata.IP, now.Add(-s.cfg.ClickWindow))
		if err != nil {
			return nil, err
		}
		if clicks > s.cfg.ClickThreshold {
			flags.RapidClicks = true
			score += domain.CLICK_VELOCITY_SCORE
		}

		if IsSuspiciousIP(metadata.IP) {
			flags.SuspiciousIP = true
			score += domain.PRIVATE_IP_SCORE
		}
	}

	var fingerprint *string
	if metadata.DeviceFingerprint != "" {
		fingerprint = &metadata.DeviceFingerprint
		used, err := s.store.IsFingerprintUsedByOtherUser(ctx, metadata.DeviceFingerprint, userID, now.Add(-domain.FINGERPRINT_WINDOW))
		if err != nil {
			return nil, err
		}
		if used {
			flags.DuplicateFingerprint = true
			score += domain.DUPLICATE_DEVICE_SCORE
		}
	}

	flagsJSON, err := json.Marshal(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal flags: %w", err)
	}

	err = s.store.CreateFraudEvent(ctx, &schema.FraudDetectionEvent{
		UserID:            userID,
		EventType:         domain.FraudEventTypeUserValidation,
		RiskScore:         score,
		Flags:             datatypes.JSON(flagsJSON),
		IPAddress:         metadata.IP,
		UserAgent:         metadata.UserAgent,
		DeviceFingerprint: fingerprint,
		CreatedAt:         now,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		IsValid:   score < s.cfg.RejectThreshold,
		RiskScore: score,
		Flags:     flags,
	}, nil
}

// CheckShareRateLimit reports whether the user may record another share
func (s *scorer) CheckShareRateLimit(ctx context.Context, userID string) bool {
	count, err := s.store.CountSharesByViewerSince(ctx, userID, s.clock.Now().Add(-s.cfg.ShareRateWindow))
	if err != nil {
		logger.FailOpenCtx(ctx, "share rate limit check failed", err, zap.String("userID", userID))
		return true
	}
	return count < s.cfg.ShareRateLimit
}

// FraudScore returns the rounded average risk score of the user's recent events
func (s *scorer) FraudScore(ctx context.Context, userID string) int {
	avg, err := s.store.GetAverageRiskScoreSince(ctx, userID, s.clock.Now().Add(-domain.FRAUD_SCORE_WINDOW))
	if err != nil {
		logger.FailOpenCtx(ctx, "fraud score lookup failed", err, zap.String("userID", userID))
		return 0
	}
	return int(math.Round(avg))
}

// IsBotUserAgent reports whether the user agent contains an automation tool marker
func IsBotUserAgent(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, pattern := range domain.BotUserAgentPatterns {
		if strings.Contains(ua, pattern) {
			return true
		}
	}
	return false
}

// IsSuspiciousIP reports whether the address is in a private or reserved prefix
func IsSuspiciousIP(ip string) bool {
	for _, prefix := range domain.SuspiciousIPPrefixes {
		if strings.HasPrefix(ip, prefix) {
			return true
		}
	}
	return false
}
