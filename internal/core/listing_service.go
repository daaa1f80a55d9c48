package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentwheels-backend-go/internal/db"
	"rentwheels-backend-go/internal/models"
)

// ErrDraftNotFound is returned when a draft is unknown, expired, or owned by
// someone else. Foreign drafts are deliberately indistinguishable from
// missing ones.
var ErrDraftNotFound = errors.New("listing draft not found")

// listingService implements the ListingService interface: a four-step wizard
// whose draft lives in the draft store and whose submission is the single
// create call against the record store.
type listingService struct {
	draftRepo db.DraftRepository
	carRepo   db.CarRepository
	draftTTL  time.Duration
}

// NewListingService creates a new ListingService instance.
func NewListingService(draftRepo db.DraftRepository, carRepo db.CarRepository, draftTTL time.Duration) ListingService {
	return &listingService{
		draftRepo: draftRepo,
		carRepo:   carRepo,
		draftTTL:  draftTTL,
	}
}

// StartDraft opens a fresh draft at step 1 for the caller.
func (s *listingService) StartDraft(ctx context.Context, ownerExternalID string) (*models.ListingDraft, error) {
	if ownerExternalID == "" {
		return nil, fmt.Errorf("%w: owner identity is required", ErrValidation)
	}

	draft := &models.ListingDraft{
		ID:              uuid.NewString(),
		OwnerExternalID: ownerExternalID,
		Step:            models.DraftFirstStep,
	}
	if err := s.draftRepo.Save(ctx, draft, s.draftTTL); err != nil {
		return nil, fmt.Errorf("failed to start draft: %w", err)
	}
	return draft, nil
}

// GetDraft retrieves a draft, scoped to its owner.
func (s *listingService) GetDraft(ctx context.Context, ownerExternalID, draftID string) (*models.ListingDraft, error) {
	return s.loadOwned(ctx, ownerExternalID, draftID)
}

// UpdateDraft merges the provided fields into the draft. Selecting a logo
// also defaults the draft name to the brand display name when no name has
// been entered yet. Seat and window deltas apply stepper semantics: the
// result never drops below zero and is unbounded above.
func (s *listingService) UpdateDraft(ctx context.Context, ownerExternalID, draftID string, req models.UpdateDraftRequest) (*models.ListingDraft, error) {
	draft, err := s.loadOwned(ctx, ownerExternalID, draftID)
	if err != nil {
		return nil, err
	}

	if req.Logo != nil {
		draft.Logo = *req.Logo
		if draft.Name == "" {
			draft.Name = brandDisplayName(*req.Logo)
		}
	}
	if req.Name != nil {
		draft.Name = *req.Name
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.Model != nil {
		draft.Model = *req.Model
	}
	if req.Year != nil {
		draft.Year = *req.Year
	}
	if req.ImageURL != nil {
		draft.ImageURL = *req.ImageURL
	}
	if req.Price != nil {
		draft.Price = *req.Price
	}
	if req.SeatsDelta != nil {
		draft.Seats = clampCount(draft.Seats + *req.SeatsDelta)
	}
	if req.WindowsDelta != nil {
		draft.Windows = clampCount(draft.Windows + *req.WindowsDelta)
	}
	if req.Automatic != nil {
		draft.Automatic = *req.Automatic
	}

	if err := s.draftRepo.Save(ctx, draft, s.draftTTL); err != nil {
		return nil, fmt.Errorf("failed to save draft '%s': %w", draftID, err)
	}
	return draft, nil
}

// NextStep advances the wizard, clamped at the last step.
func (s *listingService) NextStep(ctx context.Context, ownerExternalID, draftID string) (*models.ListingDraft, error) {
	return s.moveStep(ctx, ownerExternalID, draftID, 1)
}

// PrevStep moves the wizard back, clamped at the first step.
func (s *listingService) PrevStep(ctx context.Context, ownerExternalID, draftID string) (*models.ListingDraft, error) {
	return s.moveStep(ctx, ownerExternalID, draftID, -1)
}

func (s *listingService) moveStep(ctx context.Context, ownerExternalID, draftID string, delta int) (*models.ListingDraft, error) {
	draft, err := s.loadOwned(ctx, ownerExternalID, draftID)
	if err != nil {
		return nil, err
	}

	step := draft.Step + delta
	if step < models.DraftFirstStep {
		step = models.DraftFirstStep
	}
	if step > models.DraftLastStep {
		step = models.DraftLastStep
	}
	draft.Step = step

	if err := s.draftRepo.Save(ctx, draft, s.draftTTL); err != nil {
		return nil, fmt.Errorf("failed to save draft '%s': %w", draftID, err)
	}
	return draft, nil
}

// Submit validates the draft and issues exactly one create call. A draft
// without a name or image is rejected before any storage call. On create
// failure the draft is left intact so the caller can retry; on success the
// draft is discarded.
func (s *listingService) Submit(ctx context.Context, ownerExternalID, draftID string) (*models.Car, error) {
	draft, err := s.loadOwned(ctx, ownerExternalID, draftID)
	if err != nil {
		return nil, err
	}

	if draft.Name == "" || draft.ImageURL == "" {
		return nil, fmt.Errorf("%w: name and imageUrl are required to list a car", ErrValidation)
	}

	brand := draft.Logo
	if brand == "" {
		brand = draft.Name
	}
	transmission := "Manual"
	if draft.Automatic {
		transmission = "Automatic"
	}

	car := &models.Car{
		Name:            draft.Name,
		Brand:           brand,
		Model:           draft.Model,
		Year:            draft.Year,
		PricePerDay:     draft.Price,
		Transmission:    transmission,
		Seats:           draft.Seats,
		ImageURL:        draft.ImageURL,
		Available:       true,
		Description:     draft.Description,
		OwnerExternalID: ownerExternalID,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	if _, err := s.carRepo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car from draft '%s': %w", draftID, err)
	}

	// The listing exists; a stale draft is only a nuisance, so a failed
	// cleanup is logged rather than surfaced.
	if err := s.draftRepo.Delete(ctx, draftID); err != nil {
		log.Printf("Warning: failed to delete submitted draft '%s': %v", draftID, err)
	}
	return car, nil
}

func (s *listingService) loadOwned(ctx context.Context, ownerExternalID, draftID string) (*models.ListingDraft, error) {
	draft, err := s.draftRepo.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrDraftNotFound, draftID)
		}
		return nil, fmt.Errorf("failed to get draft '%s': %w", draftID, err)
	}
	if draft.OwnerExternalID != ownerExternalID {
		return nil, fmt.Errorf("%w: '%s'", ErrDraftNotFound, draftID)
	}
	return draft, nil
}

// clampCount floors a stepper value at zero. There is no upper bound.
func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// brandDisplayName turns a brand slug like "alfa-romeo" into "Alfa Romeo".
func brandDisplayName(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
