package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentwheels-backend-go/internal/db"
	"rentwheels-backend-go/internal/models"
)

// ErrCarNotFound is returned when a car is not found.
var ErrCarNotFound = errors.New("car not found")

// defaultSeats is applied when the admin create form omits the seat count.
const defaultSeats = 4

// carService implements the CarService interface.
type carService struct {
	carRepo  db.CarRepository
	userRepo db.UserRepository
}

// NewCarService creates a new CarService instance.
func NewCarService(carRepo db.CarRepository, userRepo db.UserRepository) CarService {
	return &carService{carRepo: carRepo, userRepo: userRepo}
}

// ListCars returns every car record.
func (s *carService) ListCars(ctx context.Context) ([]*models.Car, error) {
	cars, err := s.carRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

// ListAvailableCars returns cars whose available flag is set.
func (s *carService) ListAvailableCars(ctx context.Context) ([]*models.Car, error) {
	cars, err := s.carRepo.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available cars: %w", err)
	}
	return cars, nil
}

// GetCar retrieves a single car by ID.
func (s *carService) GetCar(ctx context.Context, carID string) (*models.Car, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrCarNotFound, carID)
		}
		return nil, fmt.Errorf("failed to get car '%s': %w", carID, err)
	}
	return car, nil
}

// CreateCar creates a car from the admin create form. Admin only. Name and
// image are required; numeric fields default to 0 (seats to 4) when absent,
// and blank optional strings are stored as absent fields.
func (s *carService) CreateCar(ctx context.Context, callerID string, req models.CreateCarRequest) (*models.Car, error) {
	if err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return nil, err
	}
	if req.Name == "" || req.ImageURL == "" {
		return nil, fmt.Errorf("%w: name and imageUrl are required", ErrValidation)
	}

	car := &models.Car{
		Name:         req.Name,
		Brand:        req.Brand,
		Model:        req.Model,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Seats:        defaultSeats,
		ImageURL:     req.ImageURL,
		LogoURL:      req.LogoURL,
		Available:    true,
		Description:  req.Description,
		Location:     req.Location,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if car.Brand == "" {
		car.Brand = req.Name
	}
	if req.Year != nil {
		car.Year = *req.Year
	}
	if req.PricePerDay != nil {
		car.PricePerDay = *req.PricePerDay
	}
	if req.Seats != nil {
		car.Seats = *req.Seats
	}
	if req.Available != nil {
		car.Available = *req.Available
	}

	if _, err := s.carRepo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}
	return car, nil
}

// UpdateCar applies a sparse partial update. Admin only. Only fields present
// in the request are changed; everything else keeps its prior value.
func (s *carService) UpdateCar(ctx context.Context, callerID, carID string, req models.UpdateCarRequest) (*models.Car, error) {
	if err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return nil, err
	}

	updates := buildCarFieldUpdates(req)
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	if err := s.carRepo.Patch(ctx, carID, updates); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrCarNotFound, carID)
		}
		return nil, fmt.Errorf("failed to update car '%s': %w", carID, err)
	}
	return s.GetCar(ctx, carID)
}

// buildCarFieldUpdates converts the pointer-field request into the sparse
// field-update set passed to the store.
func buildCarFieldUpdates(req models.UpdateCarRequest) models.FieldUpdates {
	updates := models.FieldUpdates{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.PricePerDay != nil {
		updates["pricePerDay"] = *req.PricePerDay
	}
	if req.FuelType != nil {
		updates["fuelType"] = *req.FuelType
	}
	if req.Transmission != nil {
		updates["transmission"] = *req.Transmission
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}
	if req.ImageURL != nil {
		updates["imageUrl"] = *req.ImageURL
	}
	if req.LogoURL != nil {
		updates["logoUrl"] = *req.LogoURL
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	return updates
}

// DeleteCar removes a car record. Admin only. A missing target is the
// DeleteResultNotFound outcome, not an error.
func (s *carService) DeleteCar(ctx context.Context, callerID, carID string) (DeleteResult, error) {
	if err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return "", err
	}

	if err := s.carRepo.Delete(ctx, carID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return DeleteResultNotFound, nil
		}
		return "", fmt.Errorf("failed to delete car '%s': %w", carID, err)
	}
	return DeleteResultDeleted, nil
}

// ListCarsByOwner returns the cars listed by a specific user. Admin only.
func (s *carService) ListCarsByOwner(ctx context.Context, callerID, ownerExternalID string) ([]*models.Car, error) {
	if err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return nil, err
	}
	cars, err := s.carRepo.GetByOwnerExternalID(ctx, ownerExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars for owner '%s': %w", ownerExternalID, err)
	}
	return cars, nil
}
