package core

import (
	"context"
	"errors"
	"fmt"

	"rentwheels-backend-go/internal/db"
	"rentwheels-backend-go/internal/models"
)

// ErrForbidden is returned when the caller's role does not permit an
// operation. Role checks run inside every state-mutating admin operation;
// whatever the client chooses to display is irrelevant here.
var ErrForbidden = errors.New("caller is not permitted to perform this operation")

// ErrValidation marks client-input failures that are caught before any
// storage call is made.
var ErrValidation = errors.New("validation failed")

// requireAdmin resolves the caller's user record and rejects anyone whose
// effective role is not ADMIN. Unknown callers are rejected the same way as
// non-admins.
func requireAdmin(ctx context.Context, userRepo db.UserRepository, callerID string) error {
	if callerID == "" {
		return ErrForbidden
	}
	caller, err := userRepo.GetByExternalID(ctx, callerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrForbidden
		}
		return fmt.Errorf("failed to resolve caller '%s' for admin check: %w", callerID, err)
	}
	if caller.EffectiveRole() != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
