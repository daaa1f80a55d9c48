package core

import (
	"context"

	"rentwheels-backend-go/internal/models"
)

// DeleteResult is the single result type for every delete operation. A
// missing target is an explicit outcome, not an error, and is signaled the
// same way for cars and users.
type DeleteResult string

const (
	DeleteResultDeleted  DeleteResult = "deleted"
	DeleteResultNotFound DeleteResult = "not_found"
)

// UserService defines user bootstrap, role reads and admin user management.
type UserService interface {
	// EnsureUser makes sure the authenticated identity has exactly one backing
	// user record, creating it with the default role on first sign-in. The
	// create is atomic; concurrent calls for the same identity yield one
	// record. Returns the user and whether it was created by this call.
	EnsureUser(ctx context.Context, externalID, name, email string) (*models.User, bool, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	// RoleFor returns the stored role or "USER" when no record matches. It
	// never returns an empty role.
	RoleFor(ctx context.Context, externalID string) (string, error)

	ListUsers(ctx context.Context, callerID string) ([]*models.User, error)
	SetRole(ctx context.Context, callerID, targetExternalID, role string) (*models.User, error)
	DeleteUser(ctx context.Context, callerID, targetExternalID string) (DeleteResult, error)
}

// CarService defines public car reads and admin car management.
type CarService interface {
	ListCars(ctx context.Context) ([]*models.Car, error)
	ListAvailableCars(ctx context.Context) ([]*models.Car, error)
	GetCar(ctx context.Context, carID string) (*models.Car, error)

	CreateCar(ctx context.Context, callerID string, req models.CreateCarRequest) (*models.Car, error)
	UpdateCar(ctx context.Context, callerID, carID string, req models.UpdateCarRequest) (*models.Car, error)
	DeleteCar(ctx context.Context, callerID, carID string) (DeleteResult, error)
	ListCarsByOwner(ctx context.Context, callerID, ownerExternalID string) ([]*models.Car, error)
}

// BookingService defines the booking record path.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.Booking, error)
	ListBookingsFor(ctx context.Context, userID string) ([]*models.Booking, error)
}

// ListingService drives the four-step car listing wizard. Drafts are
// ephemeral and owner-scoped; submission is the single create call.
type ListingService interface {
	StartDraft(ctx context.Context, ownerExternalID string) (*models.ListingDraft, error)
	GetDraft(ctx context.Context, ownerExternalID, draftID string) (*models.ListingDraft, error)
	UpdateDraft(ctx context.Context, ownerExternalID, draftID string, req models.UpdateDraftRequest) (*models.ListingDraft, error)
	NextStep(ctx context.Context, ownerExternalID, draftID string) (*models.ListingDraft, error)
	PrevStep(ctx context.Context, ownerExternalID, draftID string) (*models.ListingDraft, error)
	Submit(ctx context.Context, ownerExternalID, draftID string) (*models.Car, error)
}

// UploadSlot is a one-time upload grant: the client PUTs the file bytes to
// UploadURL and later refers to the object by ObjectName.
type UploadSlot struct {
	UploadURL  string `json:"uploadUrl"`
	ObjectName string `json:"objectName"`
}

// UploadService brokers image uploads.
type UploadService interface {
	CreateUploadSlot(ctx context.Context, contentType string) (*UploadSlot, error)
	ResolveURL(ctx context.Context, objectName string) (string, error)
}
