package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/creatorchain/creatorchain/internal/api/shared/errors"
	"github.com/creatorchain/creatorchain/internal/domain"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    apierrors.ErrorCode
		status  int
		message string
	}{
		{"unauthorized", domain.ErrUnauthorized, apierrors.ErrCodeUnauthorized, http.StatusUnauthorized, domain.ErrUnauthorized.Error()},
		{"wrapped forbidden", fmt.Errorf("create share: %w", domain.ErrAccountFlagged), apierrors.ErrCodeForbidden, http.StatusForbidden, domain.ErrAccountFlagged.Error()},
		{"rate limited", domain.ErrShareRateLimited, apierrors.ErrCodeRateLimited, http.StatusTooManyRequests, domain.ErrShareRateLimited.Error()},
		{"link not found", domain.ErrLinkNotFound, apierrors.ErrCodeNotFound, http.StatusNotFound, "Referral link not found"},
		{"inactive content", domain.ErrContentInactive, apierrors.ErrCodeBadRequest, http.StatusBadRequest, "Content is not active"},
		{"unknown", errors.New("pq: connection reset"), apierrors.ErrCodeInternalError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := apierrors.FromDomain(tt.err)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.status, apiErr.StatusCode())
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestFromDomain_InvalidInputKeepsDetails(t *testing.T) {
	err := fmt.Errorf("%w: reward_per_share must be positive", domain.ErrInvalidInput)

	apiErr := apierrors.FromDomain(err)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	assert.Equal(t, "Validation failed", apiErr.Message)
	assert.Equal(t, err.Error(), apiErr.Details)
}

func TestFromDomain_PassesAPIErrorThrough(t *testing.T) {
	original := apierrors.NewServiceError("YouTube unavailable")

	apiErr := apierrors.FromDomain(fmt.Errorf("verify: %w", original))
	assert.Same(t, original, apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode())
}

func TestAPIError_Error(t *testing.T) {
	err := apierrors.NewNotFoundError("Content not found", "slug", "missing")
	assert.JSONEq(t, `{"code":"not_found","message":"Content not found","details":"slug, missing"}`, err.Error())
}
