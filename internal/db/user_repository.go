package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentwheels-backend-go/internal/models"
)

const usersCollection = "users"

// firestoreUserRepository implements the UserRepository interface using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

// Create adds a new user document, keyed by the external identity. Because
// the identity is the document ID, two concurrent creates for the same
// identity cannot both succeed: the loser gets ErrAlreadyExists.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ExternalID == "" {
		return errors.New("user externalID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.ExternalID).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user '%s' already exists: %w", user.ExternalID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user '%s': %w", user.ExternalID, err)
	}
	return nil
}

// GetByExternalID retrieves a user document by external identity.
func (r *firestoreUserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	if externalID == "" {
		return nil, errors.New("externalID cannot be empty for GetByExternalID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(externalID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user '%s' not found: %w", externalID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", externalID, err)
	}

	var user models.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for '%s': %w", externalID, err)
	}
	user.ExternalID = docSnap.Ref.ID

	return &user, nil
}

// GetAll retrieves every user document. No pagination.
func (r *firestoreUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*models.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}

		var user models.User
		if err := doc.DataTo(&user); err != nil {
			log.Printf("Error decoding user data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		user.ExternalID = doc.Ref.ID
		users = append(users, &user)
	}
	return users, nil
}

// SetRole updates only the role field of an existing user.
func (r *firestoreUserRepository) SetRole(ctx context.Context, externalID, role string) error {
	if externalID == "" {
		return errors.New("externalID cannot be empty for SetRole operation")
	}
	updates := []firestore.Update{
		{Path: "role", Value: role},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if _, err := r.client.Collection(usersCollection).Doc(externalID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user '%s' not found for role update: %w", externalID, ErrNotFound)
		}
		return fmt.Errorf("failed to set role for user '%s': %w", externalID, err)
	}
	return nil
}

// Delete removes a user document. Deleting a user does not cascade to the
// cars they own.
func (r *firestoreUserRepository) Delete(ctx context.Context, externalID string) error {
	if externalID == "" {
		return errors.New("externalID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(usersCollection).Doc(externalID).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
			return fmt.Errorf("user '%s' not found for deletion: %w", externalID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete user '%s': %w", externalID, err)
	}
	return nil
}
