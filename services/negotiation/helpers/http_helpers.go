package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resale-negotiation/internal/negotiationerrors"
	"resale-negotiation/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, negotiationerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, negotiationerrors.ErrThreadNotFound):
		return http.StatusNotFound, "thread not found"
	case errors.Is(err, negotiationerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, negotiationerrors.ErrEmptyMessage):
		return http.StatusBadRequest, "message body must not be empty"
	case errors.Is(err, negotiationerrors.ErrOwnListing):
		return http.StatusForbidden, "cannot open a thread on your own item"
	case errors.Is(err, negotiationerrors.ErrNotAParticipant):
		return http.StatusForbidden, "not a participant of this thread"
	case errors.Is(err, negotiationerrors.ErrThreadClosed):
		return http.StatusConflict, "thread is closed"
	case errors.Is(err, negotiationerrors.ErrNoThreads):
		return http.StatusOK, "no threads found for user"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
