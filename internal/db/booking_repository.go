package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"rentwheels-backend-go/internal/models"
)

const bookingsCollection = "bookings"

// firestoreBookingRepository implements the BookingRepository interface using Firestore.
type firestoreBookingRepository struct {
	client *firestore.Client
}

// NewFirestoreBookingRepository creates a new instance of firestoreBookingRepository.
func NewFirestoreBookingRepository(client *firestore.Client) BookingRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for BookingRepository.")
	}
	return &firestoreBookingRepository{client: client}
}

// Create adds a new booking document with an auto-generated ID. No date
// overlap check is performed at this layer or above.
func (r *firestoreBookingRepository) Create(ctx context.Context, booking *models.Booking) (string, error) {
	docRef := r.client.Collection(bookingsCollection).NewDoc()
	booking.ID = docRef.ID

	if _, err := docRef.Create(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	return docRef.ID, nil
}

// GetByUserID retrieves all bookings made by a specific user.
func (r *firestoreBookingRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Booking, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByUserID operation")
	}

	iter := r.client.Collection(bookingsCollection).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var bookings []*models.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate bookings for user '%s': %w", userID, err)
		}

		var booking models.Booking
		if err := doc.DataTo(&booking); err != nil {
			log.Printf("Error decoding booking data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		booking.ID = doc.Ref.ID
		bookings = append(bookings, &booking)
	}
	return bookings, nil
}
