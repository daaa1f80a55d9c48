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

const carsCollection = "cars"

// firestoreCarRepository implements the CarRepository interface using Firestore.
type firestoreCarRepository struct {
	client *firestore.Client
}

// NewFirestoreCarRepository creates a new instance of firestoreCarRepository.
func NewFirestoreCarRepository(client *firestore.Client) CarRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CarRepository.")
	}
	return &firestoreCarRepository{client: client}
}

// Create adds a new car document with an auto-generated ID.
// CreatedAt and UpdatedAt are handled by serverTimestamp tags on the model.
func (r *firestoreCarRepository) Create(ctx context.Context, car *models.Car) (string, error) {
	docRef := r.client.Collection(carsCollection).NewDoc()
	car.ID = docRef.ID // Set the ID in the model before saving

	if _, err := docRef.Create(ctx, car); err != nil {
		return "", fmt.Errorf("failed to create car: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a car document by its ID.
func (r *firestoreCarRepository) GetByID(ctx context.Context, carID string) (*models.Car, error) {
	if carID == "" {
		return nil, errors.New("carID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(carsCollection).Doc(carID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("car with ID '%s' not found: %w", carID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get car with ID '%s': %w", carID, err)
	}

	var car models.Car
	if err := docSnap.DataTo(&car); err != nil {
		return nil, fmt.Errorf("failed to decode car data for ID '%s': %w", carID, err)
	}
	car.ID = docSnap.Ref.ID // Ensure ID is populated from the document reference

	return &car, nil
}

// GetAll retrieves every car document. No pagination; the catalog is small.
func (r *firestoreCarRepository) GetAll(ctx context.Context) ([]*models.Car, error) {
	return r.collect(ctx, r.client.Collection(carsCollection).Query)
}

// GetAvailable retrieves cars whose available flag is set.
func (r *firestoreCarRepository) GetAvailable(ctx context.Context) ([]*models.Car, error) {
	query := r.client.Collection(carsCollection).Where("available", "==", true)
	return r.collect(ctx, query)
}

// GetByOwnerExternalID retrieves the cars listed by a specific user. The
// equality filter runs in the store, not client-side.
func (r *firestoreCarRepository) GetByOwnerExternalID(ctx context.Context, externalID string) ([]*models.Car, error) {
	if externalID == "" {
		return nil, errors.New("externalID cannot be empty for GetByOwnerExternalID operation")
	}
	query := r.client.Collection(carsCollection).Where("ownerExternalId", "==", externalID)
	return r.collect(ctx, query)
}

func (r *firestoreCarRepository) collect(ctx context.Context, query firestore.Query) ([]*models.Car, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var cars []*models.Car
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate cars: %w", err)
		}

		var car models.Car
		if err := doc.DataTo(&car); err != nil {
			log.Printf("Error decoding car data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		car.ID = doc.Ref.ID
		cars = append(cars, &car)
	}
	return cars, nil
}

// Patch applies a sparse field-update set to an existing car. Fields absent
// from the set keep their prior values; this is never a whole-record replace.
func (r *firestoreCarRepository) Patch(ctx context.Context, carID string, updates models.FieldUpdates) error {
	if carID == "" {
		return errors.New("carID cannot be empty for Patch operation")
	}
	if len(updates) == 0 {
		return errors.New("updates cannot be empty for Patch operation")
	}

	fieldUpdates := make([]firestore.Update, 0, len(updates)+1)
	for field, value := range updates {
		fieldUpdates = append(fieldUpdates, firestore.Update{Path: field, Value: value})
	}
	fieldUpdates = append(fieldUpdates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := r.client.Collection(carsCollection).Doc(carID).Update(ctx, fieldUpdates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("car with ID '%s' not found for patch: %w", carID, ErrNotFound)
		}
		return fmt.Errorf("failed to patch car with ID '%s': %w", carID, err)
	}
	return nil
}

// Delete removes a car document. The existence precondition turns the silent
// delete-of-nothing into a detectable ErrNotFound.
func (r *firestoreCarRepository) Delete(ctx context.Context, carID string) error {
	if carID == "" {
		return errors.New("carID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(carsCollection).Doc(carID).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
			return fmt.Errorf("car with ID '%s' not found for deletion: %w", carID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete car with ID '%s': %w", carID, err)
	}
	return nil
}
