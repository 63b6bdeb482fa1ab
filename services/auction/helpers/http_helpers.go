package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"player-auction/internal/auctionerrors"
	"player-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleInvalidAction rejects an action the endpoint does not know
func HandleInvalidAction(c *gin.Context, handlerName, action string) {
	err := fmt.Errorf("%w - unknown action %q", auctionerrors.ErrInvalidInput, action)
	utils.JSONError(c, http.StatusBadRequest, err, "invalid action")
	utils.Warn(handlerName+": invalid action", map[string]any{"action": action})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrMissingToken):
		return http.StatusUnauthorized, "no authorization token provided"
	case errors.Is(err, auctionerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, auctionerrors.ErrPlayerNotFound):
		return http.StatusNotFound, "player not found"
	case errors.Is(err, auctionerrors.ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, auctionerrors.ErrDuplicateUsername):
		return http.StatusBadRequest, "username already exists"
	case errors.Is(err, auctionerrors.ErrDuplicatePlayer):
		return http.StatusBadRequest, "player already exists"
	case errors.Is(err, auctionerrors.ErrInvalidPassword):
		return http.StatusBadRequest, "invalid password"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount must be higher than current bid"
	case errors.Is(err, auctionerrors.ErrPlayerAlreadySold):
		return http.StatusBadRequest, "player already sold"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusBadRequest, "player has no bids"
	case errors.Is(err, auctionerrors.ErrStaleBid):
		return http.StatusBadRequest, "player was updated concurrently, retry the bid"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error envelope and logs the failure.
// Internal errors are logged in full but never echoed to the client.
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)

	logFields := map[string]any{
		"handler": handlerName,
		"kind":    string(auctionerrors.KindOf(err)),
		"error":   err.Error(),
	}
	for k, v := range fields {
		logFields[k] = v
	}

	if status >= http.StatusInternalServerError {
		utils.JSONError(c, status, errors.New(message), message)
		utils.Error(handlerName+": request failed", logFields)
		return
	}

	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	utils.Warn(handlerName+": request rejected", logFields)
}

// BearerToken returns the token from an "Authorization: Bearer <token>" header, or ""
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireBearerToken returns the bearer token, or writes a 401 and returns false when none is sent
func RequireBearerToken(c *gin.Context, handlerName string) (string, bool) {
	token := BearerToken(c)
	if token == "" {
		RespondError(c, handlerName, auctionerrors.ErrMissingToken, nil)
		return "", false
	}
	return token, true
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
