package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	model "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err and sends it, logging at warn for client errors and error otherwise
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// BindStrict decodes the request body into dst and rejects fields dst does not declare
func BindStrict(c *gin.Context, dst any) error {
	data, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: %v", marketerrors.ErrInvalidInput, err)
	}
	return model.DecodeStrict(data, dst)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "operation not allowed"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, marketerrors.ErrItemNotFound):
		return http.StatusNotFound, "inventory item not found"
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrToastNotFound):
		return http.StatusNotFound, "notification not found"
	case errors.Is(err, marketerrors.ErrUnknownField):
		return http.StatusBadRequest, "unknown field in request"
	case errors.Is(err, marketerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid amount"
	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, marketerrors.ErrQuotaExceeded), errors.Is(err, marketerrors.ErrStorageUnavailable):
		return http.StatusInsufficientStorage, "storage unavailable"
	case errors.Is(err, marketerrors.ErrContentUnavailable),
		errors.Is(err, marketerrors.ErrMalformedContent),
		errors.Is(err, marketerrors.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable, "service unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
