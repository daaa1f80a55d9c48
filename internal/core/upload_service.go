package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rentwheels-backend-go/internal/db"
)

// ErrUploadNotFound is returned when resolving an object that was never
// uploaded or has been removed.
var ErrUploadNotFound = errors.New("uploaded file not found")

// uploadService implements the UploadService interface over the upload store.
type uploadService struct {
	store db.UploadStore
}

// NewUploadService creates a new UploadService instance.
func NewUploadService(store db.UploadStore) UploadService {
	return &uploadService{store: store}
}

// CreateUploadSlot issues a one-time upload grant for a freshly named
// object. The caller PUTs the bytes to the returned URL directly; no file
// content passes through this service.
func (s *uploadService) CreateUploadSlot(ctx context.Context, contentType string) (*UploadSlot, error) {
	objectName := uuid.NewString()
	url, err := s.store.SignUploadURL(ctx, objectName, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload slot: %w", err)
	}
	return &UploadSlot{UploadURL: url, ObjectName: objectName}, nil
}

// ResolveURL returns the public URL for a stored object.
func (s *uploadService) ResolveURL(ctx context.Context, objectName string) (string, error) {
	url, err := s.store.ResolvePublicURL(ctx, objectName)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", fmt.Errorf("%w: '%s'", ErrUploadNotFound, objectName)
		}
		return "", fmt.Errorf("failed to resolve URL for '%s': %w", objectName, err)
	}
	return url, nil
}
