package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels-backend-go/internal/core"
)

// UploadHandler handles upload-broker endpoints.
type UploadHandler struct {
	uploadService core.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(us core.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: us}
}

// CreateUploadSlot handles POST /api/v1/uploads: issues a one-time signed
// upload URL. The client PUTs the file bytes there directly.
func (h *UploadHandler) CreateUploadSlot(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	contentType := c.Query("contentType")
	slot, err := h.uploadService.CreateUploadSlot(c.Request.Context(), contentType)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ResolveURL handles GET /api/v1/uploads/:objectName/url.
func (h *UploadHandler) ResolveURL(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	objectName := c.Param("objectName")
	if objectName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Object name is required"})
		return
	}

	url, err := h.uploadService.ResolveURL(c.Request.Context(), objectName)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ResolvedURLResponse{URL: url})
}
