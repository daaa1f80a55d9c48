package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rentwheels-backend-go/internal/db"
	"rentwheels-backend-go/internal/models"
)

// In-memory repository fakes for service tests. They implement the db
// interfaces over maps and report the same sentinel errors the Firestore and
// Redis implementations map to.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ExternalID]; ok {
		return db.ErrAlreadyExists
	}
	cp := *user
	r.users[user.ExternalID] = &cp
	return nil
}

func (r *memUserRepo) GetByExternalID(_ context.Context, externalID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[externalID]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) SetRole(_ context.Context, externalID, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[externalID]
	if !ok {
		return db.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, externalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[externalID]; !ok {
		return db.ErrNotFound
	}
	delete(r.users, externalID)
	return nil
}

// seedAdmin inserts an ADMIN user and returns its external ID.
func (r *memUserRepo) seedAdmin() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users["admin-1"] = &models.User{ExternalID: "admin-1", Name: "Admin", Role: models.RoleAdmin}
	return "admin-1"
}

type memCarRepo struct {
	mu        sync.Mutex
	cars      map[string]*models.Car
	nextID    int
	createErr error // injected Create failure
}

func newMemCarRepo() *memCarRepo {
	return &memCarRepo{cars: make(map[string]*models.Car)}
}

func (r *memCarRepo) Create(_ context.Context, car *models.Car) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return "", r.createErr
	}
	r.nextID++
	id := fmt.Sprintf("car-%d", r.nextID)
	car.ID = id
	cp := *car
	r.cars[id] = &cp
	return id, nil
}

func (r *memCarRepo) GetByID(_ context.Context, carID string) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cars[carID]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCarRepo) GetAll(_ context.Context) ([]*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Car, 0, len(r.cars))
	for _, c := range r.cars {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCarRepo) GetAvailable(_ context.Context) ([]*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Car
	for _, c := range r.cars {
		if c.Available {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCarRepo) GetByOwnerExternalID(_ context.Context, externalID string) ([]*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Car
	for _, c := range r.cars {
		if c.OwnerExternalID == externalID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCarRepo) Patch(_ context.Context, carID string, updates models.FieldUpdates) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cars[carID]
	if !ok {
		return db.ErrNotFound
	}
	for field, value := range updates {
		switch field {
		case "name":
			c.Name = value.(string)
		case "brand":
			c.Brand = value.(string)
		case "model":
			c.Model = value.(string)
		case "year":
			c.Year = value.(int)
		case "pricePerDay":
			c.PricePerDay = value.(float64)
		case "fuelType":
			c.FuelType = value.(string)
		case "transmission":
			c.Transmission = value.(string)
		case "seats":
			c.Seats = value.(int)
		case "imageUrl":
			c.ImageURL = value.(string)
		case "logoUrl":
			c.LogoURL = value.(string)
		case "available":
			c.Available = value.(bool)
		case "description":
			c.Description = value.(string)
		case "location":
			c.Location = value.(string)
		default:
			return fmt.Errorf("unexpected update field %q", field)
		}
	}
	return nil
}

func (r *memCarRepo) Delete(_ context.Context, carID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cars[carID]; !ok {
		return db.ErrNotFound
	}
	delete(r.cars, carID)
	return nil
}

type memDraftRepo struct {
	mu     sync.Mutex
	drafts map[string]*models.ListingDraft
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{drafts: make(map[string]*models.ListingDraft)}
}

func (r *memDraftRepo) Save(_ context.Context, draft *models.ListingDraft, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *draft
	r.drafts[draft.ID] = &cp
	return nil
}

func (r *memDraftRepo) Get(_ context.Context, draftID string) (*models.ListingDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[draftID]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *memDraftRepo) Delete(_ context.Context, draftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[draftID]; !ok {
		return db.ErrNotFound
	}
	delete(r.drafts, draftID)
	return nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings []*models.Booking
	nextID   int
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{}
}

func (r *memBookingRepo) Create(_ context.Context, booking *models.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := fmt.Sprintf("booking-%d", r.nextID)
	booking.ID = id
	cp := *booking
	r.bookings = append(r.bookings, &cp)
	return id, nil
}

func (r *memBookingRepo) GetByUserID(_ context.Context, userID string) ([]*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}
