package core

import (
	"context"
	"fmt"
	"time"

	"rentwheels-backend-go/internal/db"
	"rentwheels-backend-go/internal/models"
)

// bookingService implements the BookingService interface. Bookings are plain
// records: no availability or date-overlap checking happens anywhere.
type bookingService struct {
	bookingRepo db.BookingRepository
}

// NewBookingService creates a new BookingService instance.
func NewBookingService(bookingRepo db.BookingRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo}
}

// CreateBooking records a rental request for the calling user. Status is
// always "pending" regardless of input.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user identity is required", ErrValidation)
	}

	booking := &models.Booking{
		CarID:      req.CarID,
		UserID:     userID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: req.TotalPrice,
		Status:     models.BookingStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// ListBookingsFor returns the calling user's bookings.
func (s *bookingService) ListBookingsFor(ctx context.Context, userID string) ([]*models.Booking, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for '%s': %w", userID, err)
	}
	return bookings, nil
}
