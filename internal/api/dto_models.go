package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels-backend-go/internal/core"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message
	Details string `json:"details,omitempty"` // More specific details, if available
}

// DeleteResponse reports the unified outcome of a delete operation.
type DeleteResponse struct {
	Status core.DeleteResult `json:"status"`
}

// ResolvedURLResponse carries a resolved public file URL.
type ResolvedURLResponse struct {
	URL string `json:"url"`
}

// callerID extracts the authenticated external identity placed in the Gin
// context by the auth middleware. The bool is false when the middleware did
// not run or failed, which is a handler wiring bug rather than a user error.
func callerID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: user ID not found in context"})
		return "", false
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: invalid user ID in context"})
		return "", false
	}
	return id, true
}

// mapServiceError maps errors from the core services to HTTP status codes.
// Unrecognized errors are logged server-side and surfaced as a 500 with the
// underlying message as details.
func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: core.ErrForbidden.Error()})
	case errors.Is(err, core.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrCarNotFound),
		errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrDraftNotFound),
		errors.Is(err, core.ErrUploadNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred.", Details: err.Error()})
	}
}
