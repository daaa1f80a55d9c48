package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels-backend-go/internal/core"
)

// AuthHandler handles identity bootstrap endpoints.
type AuthHandler struct {
	userService core.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService) *AuthHandler {
	return &AuthHandler{userService: us}
}

// InitializeUserProfile handles POST /api/v1/users/initialize.
// Called by a client after an auth-provider sign-in to ensure the backing
// user record exists. Safe to call repeatedly and safe to call concurrently
// for the same identity; at most one record is ever created.
func (h *AuthHandler) InitializeUserProfile(c *gin.Context) {
	externalID, ok := callerID(c)
	if !ok {
		return
	}

	// Display name and email come from the verified token claims; both may be
	// absent depending on the provider configuration.
	email := c.GetString("userEmail")
	displayName := c.GetString("userDisplayName")

	user, created, err := h.userService.EnsureUser(c.Request.Context(), externalID, displayName, email)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if created {
		log.Printf("User profile created for identity %s", externalID)
		c.JSON(http.StatusCreated, user)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetCurrentUserProfile handles GET /api/v1/users/me.
// The response role is never empty: identities without a record read as USER.
func (h *AuthHandler) GetCurrentUserProfile(c *gin.Context) {
	externalID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByExternalID(c.Request.Context(), externalID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	role := user.EffectiveRole()
	c.JSON(http.StatusOK, gin.H{
		"externalId": user.ExternalID,
		"name":       user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       role,
		"createdAt":  user.CreatedAt,
		"updatedAt":  user.UpdatedAt,
	})
}
