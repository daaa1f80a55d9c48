package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels-backend-go/internal/core"
	"rentwheels-backend-go/internal/models"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookingService core.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs core.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), caller, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListBookings handles GET /api/v1/bookings: the caller's own bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListBookingsFor(c.Request.Context(), caller)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
