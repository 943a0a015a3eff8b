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
	case errors.Is(err, negotiationerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, negotiationerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "bid amount must be positive"
	case errors.Is(err, negotiationerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, negotiationerrors.ErrBiddingDisabled):
		return http.StatusConflict, "bidding is not enabled for this item"
	case errors.Is(err, negotiationerrors.ErrBiddingClosed):
		return http.StatusConflict, "bidding has closed for this item"
	case errors.Is(err, negotiationerrors.ErrConcurrentUpdate):
		return http.StatusConflict, "item was outbid concurrently, retry"
	case errors.Is(err, negotiationerrors.ErrNoBids):
		return http.StatusOK, "no bids found for item"
	case errors.Is(err, negotiationerrors.ErrUserNoBids):
		return http.StatusOK, "no items found for user"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
