package helpers

import (
	"errors"
	"net/http"

	"release-auction/internal/biddingerrors"
	"release-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrPropertyNotFound):
		return http.StatusNotFound, "Listing not found"
	case errors.Is(err, biddingerrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, biddingerrors.ErrAuctionEnded):
		return http.StatusConflict, "This auction has ended"
	case errors.Is(err, biddingerrors.ErrBelowFloor):
		return http.StatusConflict, "Bid amount is below the minimum price"
	case errors.Is(err, biddingerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "Please enter a valid bid amount"
	case errors.Is(err, biddingerrors.ErrMissingDates):
		return http.StatusBadRequest, "Please select both start and end dates"
	case errors.Is(err, biddingerrors.ErrInvalidDateRange):
		return http.StatusBadRequest, "End date must be after start date"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
