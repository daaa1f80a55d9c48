package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentwheels-backend-go/internal/db"
	"rentwheels-backend-go/internal/models"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidRole is returned when a role value outside ADMIN/USER is supplied.
var ErrInvalidRole = errors.New("invalid role")

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// EnsureUser retrieves the user backing an external identity, creating it
// with role USER on first sign-in. The create is an atomic keyed insert, so
// two concurrent calls for a never-before-seen identity race on the same
// document ID and exactly one insert wins; the loser reads the winner's
// record. Idempotent under repeated firing.
func (s *userService) EnsureUser(ctx context.Context, externalID, name, email string) (*models.User, bool, error) {
	if externalID == "" {
		return nil, false, fmt.Errorf("%w: external identity is required", ErrValidation)
	}

	user, err := s.userRepo.GetByExternalID(ctx, externalID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get user '%s': %w", externalID, err)
	}

	newUser := &models.User{
		ExternalID: externalID,
		Name:       name,
		Email:      email,
		Role:       models.RoleUser,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	createErr := s.userRepo.Create(ctx, newUser)
	if createErr == nil {
		return newUser, true, nil
	}
	if errors.Is(createErr, db.ErrAlreadyExists) {
		// Lost the race to a concurrent bootstrap; the record exists now.
		existing, getErr := s.userRepo.GetByExternalID(ctx, externalID)
		if getErr != nil {
			return nil, false, fmt.Errorf("failed to get user '%s' after create conflict: %w", externalID, getErr)
		}
		return existing, false, nil
	}
	return nil, false, fmt.Errorf("failed to create user '%s': %w", externalID, createErr)
}

// GetByExternalID retrieves a user by their external identity.
func (s *userService) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	user, err := s.userRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrUserNotFound, externalID)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", externalID, err)
	}
	return user, nil
}

// RoleFor returns the stored role for an identity, or USER when no record
// matches. It never returns an empty role.
func (s *userService) RoleFor(ctx context.Context, externalID string) (string, error) {
	user, err := s.userRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.RoleUser, nil
		}
		return "", fmt.Errorf("failed to resolve role for '%s': %w", externalID, err)
	}
	return user.EffectiveRole(), nil
}

// ListUsers returns every user record. Admin only.
func (s *userService) ListUsers(ctx context.Context, callerID string) ([]*models.User, error) {
	if err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetRole sets the role of a target identity. Admin only; unknown targets
// yield ErrUserNotFound.
func (s *userService) SetRole(ctx context.Context, callerID, targetExternalID, role string) (*models.User, error) {
	if err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidRole, role)
	}

	if err := s.userRepo.SetRole(ctx, targetExternalID, role); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrUserNotFound, targetExternalID)
		}
		return nil, fmt.Errorf("failed to set role for '%s': %w", targetExternalID, err)
	}
	return s.GetByExternalID(ctx, targetExternalID)
}

// DeleteUser removes a user record. Admin only. A missing target is the
// DeleteResultNotFound outcome, not an error; nothing cascades to the
// target's cars.
func (s *userService) DeleteUser(ctx context.Context, callerID, targetExternalID string) (DeleteResult, error) {
	if err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return "", err
	}

	if err := s.userRepo.Delete(ctx, targetExternalID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return DeleteResultNotFound, nil
		}
		return "", fmt.Errorf("failed to delete user '%s': %w", targetExternalID, err)
	}
	return DeleteResultDeleted, nil
}
