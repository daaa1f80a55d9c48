package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels-backend-go/internal/core"
	"rentwheels-backend-go/internal/models"
)

// ListingHandler handles the car-listing wizard endpoints. Every endpoint is
// scoped to the authenticated owner of the draft.
type ListingHandler struct {
	listingService core.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(ls core.ListingService) *ListingHandler {
	return &ListingHandler{listingService: ls}
}

// StartDraft handles POST /api/v1/listings: opens a fresh draft at step 1.
func (h *ListingHandler) StartDraft(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		return
	}

	draft, err := h.listingService.StartDraft(c.Request.Context(), owner)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraft handles GET /api/v1/listings/:draftId.
func (h *ListingHandler) GetDraft(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		return
	}

	draft, err := h.listingService.GetDraft(c.Request.Context(), owner, c.Param("draftId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateDraft handles PATCH /api/v1/listings/:draftId with a sparse merge.
func (h *ListingHandler) UpdateDraft(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		return
	}

	var req models.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	draft, err := h.listingService.UpdateDraft(c.Request.Context(), owner, c.Param("draftId"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// NextStep handles POST /api/v1/listings/:draftId/next.
func (h *ListingHandler) NextStep(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		return
	}

	draft, err := h.listingService.NextStep(c.Request.Context(), owner, c.Param("draftId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// PrevStep handles POST /api/v1/listings/:draftId/back.
func (h *ListingHandler) PrevStep(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		return
	}

	draft, err := h.listingService.PrevStep(c.Request.Context(), owner, c.Param("draftId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Submit handles POST /api/v1/listings/:draftId/submit: the wizard's single
// create call. A validation failure or storage failure leaves the draft in
// place so the client can retry.
func (h *ListingHandler) Submit(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		return
	}

	car, err := h.listingService.Submit(c.Request.Context(), owner, c.Param("draftId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}
