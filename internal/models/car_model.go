package models

import "time"

// Car represents a rentable car listing.
type Car struct {
	ID              string    `json:"id" firestore:"-"` // Document ID, auto-generated
	Name            string    `json:"name" firestore:"name"`
	Brand           string    `json:"brand" firestore:"brand"`
	Model           string    `json:"model" firestore:"model"`
	Year            int       `json:"year" firestore:"year"`
	PricePerDay     float64   `json:"pricePerDay" firestore:"pricePerDay"`
	FuelType        string    `json:"fuelType" firestore:"fuelType"`
	Transmission    string    `json:"transmission" firestore:"transmission"` // "Automatic" or "Manual"
	Seats           int       `json:"seats" firestore:"seats"`
	ImageURL        string    `json:"imageUrl" firestore:"imageUrl"`
	LogoURL         string    `json:"logoUrl,omitempty" firestore:"logoUrl,omitempty"`
	Available       bool      `json:"available" firestore:"available"`
	Description     string    `json:"description,omitempty" firestore:"description,omitempty"`
	Location        string    `json:"location,omitempty" firestore:"location,omitempty"`
	OwnerExternalID string    `json:"ownerExternalId,omitempty" firestore:"ownerExternalId,omitempty"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt       time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// FieldUpdates is a sparse field-update set for merge patches: keys present
// are the only fields changed. It is the unit passed to CarRepository.Patch.
type FieldUpdates map[string]interface{}
