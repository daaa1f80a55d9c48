package db

import (
	"context"
	"errors"
	"time"

	"rentwheels-backend-go/internal/models"
)

// ErrNotFound is returned when a document is not found in the store.
var ErrNotFound = errors.New("document not found")

// ErrAlreadyExists is returned when a create collides with an existing
// document ID. The user bootstrap relies on it to detect a concurrent insert.
var ErrAlreadyExists = errors.New("document already exists")

// CarRepository defines the interface for car data storage operations.
type CarRepository interface {
	Create(ctx context.Context, car *models.Car) (string, error) // Returns new car ID
	GetByID(ctx context.Context, carID string) (*models.Car, error)
	GetAll(ctx context.Context) ([]*models.Car, error)
	GetAvailable(ctx context.Context) ([]*models.Car, error)
	GetByOwnerExternalID(ctx context.Context, externalID string) ([]*models.Car, error)
	// Patch applies a sparse field-update set; only the named fields change.
	Patch(ctx context.Context, carID string, updates models.FieldUpdates) error
	Delete(ctx context.Context, carID string) error
}

// BookingRepository defines the interface for booking data storage operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Booking, error)
}

// UserRepository defines the interface for user data storage operations.
// The user's external identity is the document ID, so Create is atomic with
// respect to duplicate identities and returns ErrAlreadyExists on collision.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	SetRole(ctx context.Context, externalID, role string) error
	Delete(ctx context.Context, externalID string) error
}

// DraftRepository defines the interface for ephemeral listing-draft storage.
// Drafts expire after the configured TTL; Get on an expired or unknown draft
// returns ErrNotFound.
type DraftRepository interface {
	Save(ctx context.Context, draft *models.ListingDraft, ttl time.Duration) error
	Get(ctx context.Context, draftID string) (*models.ListingDraft, error)
	Delete(ctx context.Context, draftID string) error
}

// UploadStore defines the interface to the upload broker: it issues one-time
// upload URLs for out-of-band byte PUTs and resolves stored objects to
// public URLs.
type UploadStore interface {
	SignUploadURL(ctx context.Context, objectName, contentType string) (string, error)
	ResolvePublicURL(ctx context.Context, objectName string) (string, error)
}
