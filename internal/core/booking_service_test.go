package core

import (
	"context"
	"errors"
	"testing"

	"rentwheels-backend-go/internal/models"
)

func TestCreateBookingForcesPendingStatus(t *testing.T) {
	repo := newMemBookingRepo()
	svc := NewBookingService(repo)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "uid-1", models.CreateBookingRequest{
		CarID:      "car-1",
		StartDate:  "2026-09-10",
		EndDate:    "2026-09-12",
		TotalPrice: 240,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("expected pending status, got %q", booking.Status)
	}
	if booking.UserID != "uid-1" {
		t.Fatalf("expected booking bound to caller, got %q", booking.UserID)
	}
	if booking.ID == "" {
		t.Fatalf("expected a booking ID")
	}
}

func TestCreateBookingRequiresIdentity(t *testing.T) {
	svc := NewBookingService(newMemBookingRepo())
	_, err := svc.CreateBooking(context.Background(), "", models.CreateBookingRequest{CarID: "car-1"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestListBookingsIsCallerScoped(t *testing.T) {
	repo := newMemBookingRepo()
	svc := NewBookingService(repo)
	ctx := context.Background()

	for _, uid := range []string{"uid-1", "uid-1", "uid-2"} {
		if _, err := svc.CreateBooking(ctx, uid, models.CreateBookingRequest{CarID: "car-1", StartDate: "2026-09-10", EndDate: "2026-09-11"}); err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
	}

	bookings, err := svc.ListBookingsFor(ctx, "uid-1")
	if err != nil {
		t.Fatalf("ListBookingsFor: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings for uid-1, got %d", len(bookings))
	}
	bookings, err = svc.ListBookingsFor(ctx, "uid-3")
	if err != nil {
		t.Fatalf("ListBookingsFor: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected 0 bookings for uid-3, got %d", len(bookings))
	}
}
