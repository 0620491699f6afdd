// Package handlers wires HTTP requests to the service layer. Handlers stay
// thin: bind, call a service, translate the result. All domain decisions
// live below this package.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "artha/internal/errors"
	"artha/internal/logger"
)

// getUserID extracts the authenticated user id set by the auth middleware.
func getUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		respondWithError(c, apperrors.ErrUnauthorized)
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		respondWithError(c, apperrors.ErrUnauthorized)
		return "", false
	}
	return id, true
}

// respondWithError writes a structured error response. AppErrors carry
// their own status and code; anything else becomes a generic 500 so
// internals never leak to clients.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{"code": appErr.Code, "message": appErr.Message},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

var timeLayouts = []string{time.RFC3339, "2006-01-02"}

// parseFlexibleTime accepts RFC3339 timestamps or bare dates.
func parseFlexibleTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
