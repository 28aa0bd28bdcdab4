package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/creatorchain/creatorchain/internal/domain"
)

type ErrorCode string

const (
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

var statusByCode = map[ErrorCode]int{
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeValidationFailed: http.StatusBadRequest,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodeForbidden:        http.StatusForbidden,
	ErrCodeRateLimited:      http.StatusTooManyRequests,
	ErrCodeServiceError:     http.StatusServiceUnavailable,
}

// APIError is the body of every non-2xx REST response
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// StatusCode maps the error code to an HTTP status, 500 for anything unmapped
func (e *APIError) StatusCode() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newAPIError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{Code: code, Message: message, Details: strings.Join(details, ", ")}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newAPIError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeForbidden, message, details)
}

func NewRateLimitedError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeRateLimited, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeInternalError, message, details)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeDatabaseError, message, details)
}

func NewServiceError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeServiceError, message, details)
}

// domainErrors is checked in order; an empty message keeps the sentinel's own text
var domainErrors = []struct {
	target  error
	code    ErrorCode
	message string
}{
	{domain.ErrUnauthorized, ErrCodeUnauthorized, ""},
	{domain.ErrNotViewer, ErrCodeForbidden, ""},
	{domain.ErrNotCreator, ErrCodeForbidden, ""},
	{domain.ErrAccountFlagged, ErrCodeForbidden, ""},
	{domain.ErrShareRateLimited, ErrCodeRateLimited, ""},
	{domain.ErrLinkNotFound, ErrCodeNotFound, "Referral link not found"},
	{domain.ErrContentNotFound, ErrCodeNotFound, "Content not found"},
	{domain.ErrContentInactive, ErrCodeBadRequest, "Content is not active"},
	{domain.ErrNotificationNotFound, ErrCodeNotFound, "Notification not found"},
	{domain.ErrShareNotFound, ErrCodeNotFound, "Share not found"},
}

// FromDomain converts an error into an APIError. Unknown errors become a generic
// internal error so nothing internal leaks to clients.
func FromDomain(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for _, m := range domainErrors {
		if !errors.Is(err, m.target) {
			continue
		}
		message := m.message
		if message == "" {
			message = m.target.Error()
		}
		return newAPIError(m.code, message, nil)
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		return NewValidationError(err.Error())
	}
	return NewInternalError("Internal server error")
}
