package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/creatorchain/creatorchain/internal/api/shared/errors"
	"github.com/creatorchain/creatorchain/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.StatusCode(), errorResponse{Error: apiErr})
}

// respondError maps an executor error to its response, logging server-side failures
func respondError(c *gin.Context, err error, fields ...zap.Field) {
	apiErr := apierrors.FromDomain(err)
	switch apiErr.Code {
	case apierrors.ErrCodeInternalError, apierrors.ErrCodeDatabaseError, apierrors.ErrCodeServiceError:
		fields = append(fields, zap.String("path", c.Request.URL.Path))
		logger.ErrorCtx(c.Request.Context(), err, fields...)
	}
	respondWithError(c, apiErr)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, err error) {
	respondError(c, err)
}
