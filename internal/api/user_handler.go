package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels-backend-go/internal/core"
	"rentwheels-backend-go/internal/models"
)

// UserHandler handles admin user-management endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// ListUsers handles GET /api/v1/admin/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), caller)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// SetRole handles PUT /api/v1/admin/users/:externalId/role.
func (h *UserHandler) SetRole(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	targetID := c.Param("externalId")
	if targetID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User external ID is required"})
		return
	}

	var req models.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.userService.SetRole(c.Request.Context(), caller, targetID, req.Role)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/admin/users/:externalId.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	targetID := c.Param("externalId")
	if targetID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User external ID is required"})
		return
	}

	result, err := h.userService.DeleteUser(c.Request.Context(), caller, targetID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if result == core.DeleteResultNotFound {
		c.JSON(http.StatusNotFound, DeleteResponse{Status: result})
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Status: result})
}
