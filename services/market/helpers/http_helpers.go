package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solosphere-server/internal/marketerrors"
	"solosphere-server/internal/repository"
	"solosphere-server/utils"
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
	case errors.Is(err, marketerrors.ErrDuplicateBid):
		return http.StatusBadRequest, "You have already placed a bid on this job."
	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, marketerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "unauthorized access"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden access"
	case errors.Is(err, marketerrors.ErrJobNotFound):
		return http.StatusNotFound, "job not found"
	case errors.Is(err, marketerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// OwnerMatches reports whether the verified session identity is the owner
// of the requested resource. Every owner-scoped route applies it
// independently; the session guard only establishes who the caller is.
func OwnerMatches(sessionEmail, ownerEmail string) bool {
	return sessionEmail != "" && sessionEmail == ownerEmail
}

// ParseListingQuery reads the listing parameters from the query string and
// sanitizes the numeric ones: an unparseable or non-positive page falls
// back to 1, an unparseable or non-positive size falls back to 10. The
// search string is passed through as-is; an empty search matches all jobs.
func ParseListingQuery(c *gin.Context) repository.JobListQuery {
	page, err := strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.ParseInt(c.Query("size"), 10, 64)
	if err != nil || size < 1 {
		size = 10
	}

	return repository.JobListQuery{
		Search:   c.Query("search"),
		Category: c.Query("filter"),
		Sort:     c.Query("sort"),
		Page:     page,
		Size:     size,
	}
}
