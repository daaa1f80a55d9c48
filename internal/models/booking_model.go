package models

import "time"

// Booking statuses are free-form strings, not an enforced enum. These are the
// values the application itself writes.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking records a rental request for a car. No overlap checking is
// performed: multiple bookings may exist for the same car and dates.
type Booking struct {
	ID         string    `json:"id" firestore:"-"` // Document ID, auto-generated
	CarID      string    `json:"carId" firestore:"carId"`
	UserID     string    `json:"userId" firestore:"userId"` // External identity of the renter
	StartDate  string    `json:"startDate" firestore:"startDate"`
	EndDate    string    `json:"endDate" firestore:"endDate"`
	TotalPrice float64   `json:"totalPrice" firestore:"totalPrice"`
	Status     string    `json:"status" firestore:"status"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
