package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"budgetly/internal/analytics"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/middleware"
	"budgetly/internal/uuid"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthenticated if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthenticated
	}
	return userID, nil
}

// parsePathID parses a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseFlexibleTime accepts RFC3339 timestamps and YYYY-MM-DD dates. The
// second result reports whether s was a bare date. Bare dates are midnight
// in loc.
func parseFlexibleTime(s string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.ParseInLocation(analytics.DayLayout, s, loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, message and field details.
// Otherwise it logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: *appErr})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: *apperrors.ErrInternalServer})
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error apperrors.AppError `json:"error"`
}

// MessageResponse is returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
