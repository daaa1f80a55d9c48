package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentwheels-backend-go/internal/db"
	"rentwheels-backend-go/internal/models"
)

func newTestListingService() (ListingService, *memDraftRepo, *memCarRepo) {
	draftRepo := newMemDraftRepo()
	carRepo := newMemCarRepo()
	svc := NewListingService(draftRepo, carRepo, 30*time.Minute)
	return svc, draftRepo, carRepo
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

// fullDraftUpdate fills a draft with everything a submit needs.
func fullDraftUpdate() models.UpdateDraftRequest {
	return models.UpdateDraftRequest{
		Logo:       strPtr("porsche"),
		Name:       strPtr("Roadster"),
		Model:      strPtr("911"),
		Year:       intPtr(2022),
		ImageURL:   strPtr("https://storage.googleapis.com/bucket/roadster.jpg"),
		Price:      floatPtr(250),
		SeatsDelta: intPtr(2),
		Automatic:  boolPtr(true),
	}
}

func TestStartDraftBeginsAtStepOne(t *testing.T) {
	svc, _, _ := newTestListingService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}
	if draft.ID == "" {
		t.Fatalf("expected a draft ID")
	}
	if draft.Step != 1 {
		t.Fatalf("expected step 1, got %d", draft.Step)
	}
	if draft.OwnerExternalID != "user-1" {
		t.Fatalf("expected owner user-1, got %q", draft.OwnerExternalID)
	}
}

func TestStepNavigationClampsAtBounds(t *testing.T) {
	svc, _, _ := newTestListingService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}

	// Back from step 1 stays at step 1.
	d, err := svc.PrevStep(ctx, "user-1", draft.ID)
	if err != nil {
		t.Fatalf("PrevStep: %v", err)
	}
	if d.Step != 1 {
		t.Fatalf("expected step clamped at 1, got %d", d.Step)
	}

	// Forward past step 4 stays at step 4.
	for i := 0; i < 6; i++ {
		if d, err = svc.NextStep(ctx, "user-1", draft.ID); err != nil {
			t.Fatalf("NextStep: %v", err)
		}
	}
	if d.Step != 4 {
		t.Fatalf("expected step clamped at 4, got %d", d.Step)
	}
}

func TestUpdateDraftStepperClampsAtZero(t *testing.T) {
	svc, _, _ := newTestListingService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}

	// Decrement at zero is a no-op.
	d, err := svc.UpdateDraft(ctx, "user-1", draft.ID, models.UpdateDraftRequest{SeatsDelta: intPtr(-1)})
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	if d.Seats != 0 {
		t.Fatalf("expected seats clamped at 0, got %d", d.Seats)
	}

	// Increments are unbounded.
	d, err = svc.UpdateDraft(ctx, "user-1", draft.ID, models.UpdateDraftRequest{
		SeatsDelta:   intPtr(50),
		WindowsDelta: intPtr(3),
	})
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	if d.Seats != 50 {
		t.Fatalf("expected 50 seats, got %d", d.Seats)
	}
	if d.Windows != 3 {
		t.Fatalf("expected 3 windows, got %d", d.Windows)
	}

	d, err = svc.UpdateDraft(ctx, "user-1", draft.ID, models.UpdateDraftRequest{WindowsDelta: intPtr(-10)})
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	if d.Windows != 0 {
		t.Fatalf("expected windows clamped at 0, got %d", d.Windows)
	}
}

func TestUpdateDraftLogoDefaultsName(t *testing.T) {
	svc, _, _ := newTestListingService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}

	d, err := svc.UpdateDraft(ctx, "user-1", draft.ID, models.UpdateDraftRequest{Logo: strPtr("alfa-romeo")})
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	if d.Name != "Alfa Romeo" {
		t.Fatalf("expected defaulted name 'Alfa Romeo', got %q", d.Name)
	}

	// A name typed by the user is never overwritten by a later logo pick.
	if _, err := svc.UpdateDraft(ctx, "user-1", d.ID, models.UpdateDraftRequest{Name: strPtr("My Speedster")}); err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	d, err = svc.UpdateDraft(ctx, "user-1", d.ID, models.UpdateDraftRequest{Logo: strPtr("bmw")})
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	if d.Name != "My Speedster" {
		t.Fatalf("expected name preserved, got %q", d.Name)
	}
	if d.Logo != "bmw" {
		t.Fatalf("expected logo updated to bmw, got %q", d.Logo)
	}
}

func TestDraftIsOwnerScoped(t *testing.T) {
	svc, _, _ := newTestListingService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}

	if _, err := svc.GetDraft(ctx, "user-2", draft.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound for foreign draft, got %v", err)
	}
	if _, err := svc.GetDraft(ctx, "user-1", "no-such-draft"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound for unknown draft, got %v", err)
	}
}

func TestSubmitRejectsIncompleteDraft(t *testing.T) {
	svc, draftRepo, carRepo := newTestListingService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}

	// Missing name and image.
	if _, err := svc.Submit(ctx, "user-1", draft.ID); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(carRepo.cars) != 0 {
		t.Fatalf("expected no car created, got %d", len(carRepo.cars))
	}
	// The draft survives a failed submit.
	if _, err := draftRepo.Get(ctx, draft.ID); err != nil {
		t.Fatalf("expected draft retained after failed submit: %v", err)
	}
}

func TestSubmitCreatesCarAndDiscardsDraft(t *testing.T) {
	svc, draftRepo, carRepo := newTestListingService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}
	if _, err := svc.UpdateDraft(ctx, "user-1", draft.ID, fullDraftUpdate()); err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}

	car, err := svc.Submit(ctx, "user-1", draft.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if car.Name != "Roadster" {
		t.Fatalf("expected name Roadster, got %q", car.Name)
	}
	if car.Brand != "porsche" {
		t.Fatalf("expected brand from logo, got %q", car.Brand)
	}
	if car.Transmission != "Automatic" {
		t.Fatalf("expected Automatic transmission, got %q", car.Transmission)
	}
	if !car.Available {
		t.Fatalf("expected new listing to be available")
	}
	if car.OwnerExternalID != "user-1" {
		t.Fatalf("expected owner user-1, got %q", car.OwnerExternalID)
	}
	if car.Seats != 2 {
		t.Fatalf("expected 2 seats, got %d", car.Seats)
	}
	if len(carRepo.cars) != 1 {
		t.Fatalf("expected exactly one car created, got %d", len(carRepo.cars))
	}
	if _, err := draftRepo.Get(ctx, draft.ID); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("expected draft discarded after submit, got %v", err)
	}
}

func TestSubmitFallsBackToNameForBrand(t *testing.T) {
	svc, _, _ := newTestListingService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}
	update := models.UpdateDraftRequest{
		Name:     strPtr("Kit Car"),
		ImageURL: strPtr("https://storage.googleapis.com/bucket/kit.jpg"),
	}
	if _, err := svc.UpdateDraft(ctx, "user-1", draft.ID, update); err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}

	car, err := svc.Submit(ctx, "user-1", draft.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if car.Brand != "Kit Car" {
		t.Fatalf("expected brand to fall back to name, got %q", car.Brand)
	}
	if car.Transmission != "Manual" {
		t.Fatalf("expected Manual transmission by default, got %q", car.Transmission)
	}
}

func TestSubmitKeepsDraftOnCreateFailure(t *testing.T) {
	svc, draftRepo, carRepo := newTestListingService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}
	if _, err := svc.UpdateDraft(ctx, "user-1", draft.ID, fullDraftUpdate()); err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}

	carRepo.createErr = errors.New("store unavailable")
	if _, err := svc.Submit(ctx, "user-1", draft.ID); err == nil {
		t.Fatalf("expected submit to fail")
	}
	if _, err := draftRepo.Get(ctx, draft.ID); err != nil {
		t.Fatalf("expected draft retained for retry: %v", err)
	}

	// The retry succeeds once the store recovers.
	carRepo.createErr = nil
	if _, err := svc.Submit(ctx, "user-1", draft.ID); err != nil {
		t.Fatalf("Submit retry: %v", err)
	}
	if len(carRepo.cars) != 1 {
		t.Fatalf("expected exactly one car after retry, got %d", len(carRepo.cars))
	}
}

func TestBrandDisplayName(t *testing.T) {
	cases := map[string]string{
		"bmw":         "Bmw",
		"alfa-romeo":  "Alfa Romeo",
		"land_rover":  "Land Rover",
		"mini cooper": "Mini Cooper",
	}
	for slug, want := range cases {
		if got := brandDisplayName(slug); got != want {
			t.Errorf("brandDisplayName(%q) = %q, want %q", slug, got, want)
		}
	}
}
