package models

// CreateCarRequest represents the request body for the admin create-car form.
// Numeric fields are optional; absent values fall back to application
// defaults (0, except seats which defaults to 4).
type CreateCarRequest struct {
	Name         string   `json:"name" binding:"required"`
	Brand        string   `json:"brand,omitempty"`
	Model        string   `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty"`
	PricePerDay  *float64 `json:"pricePerDay,omitempty"`
	FuelType     string   `json:"fuelType,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Seats        *int     `json:"seats,omitempty"`
	ImageURL     string   `json:"imageUrl" binding:"required"`
	LogoURL      string   `json:"logoUrl,omitempty"`
	Available    *bool    `json:"available,omitempty"`
	Description  string   `json:"description,omitempty"`
	Location     string   `json:"location,omitempty"`
}

// UpdateCarRequest represents a sparse partial update of a car.
// Pointers distinguish fields to change from fields not provided; only keys
// present in the payload are written, everything else keeps its prior value.
type UpdateCarRequest struct {
	Name         *string  `json:"name,omitempty"`
	Brand        *string  `json:"brand,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty"`
	PricePerDay  *float64 `json:"pricePerDay,omitempty"`
	FuelType     *string  `json:"fuelType,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	Seats        *int     `json:"seats,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	LogoURL      *string  `json:"logoUrl,omitempty"`
	Available    *bool    `json:"available,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Location     *string  `json:"location,omitempty"`
}

// UpdateDraftRequest represents a sparse merge into a listing draft.
// SeatsDelta and WindowsDelta carry stepper semantics: the resulting count is
// clamped at zero from below and unbounded above.
type UpdateDraftRequest struct {
	Logo         *string  `json:"logo,omitempty"`
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	SeatsDelta   *int     `json:"seatsDelta,omitempty"`
	WindowsDelta *int     `json:"windowsDelta,omitempty"`
	Automatic    *bool    `json:"automatic,omitempty"`
}

// CreateBookingRequest represents the request body for a booking request.
// Status is not accepted from the client; new bookings are always "pending".
type CreateBookingRequest struct {
	CarID      string  `json:"carId" binding:"required"`
	StartDate  string  `json:"startDate" binding:"required"`
	EndDate    string  `json:"endDate" binding:"required"`
	TotalPrice float64 `json:"totalPrice"`
}

// SetRoleRequest represents the request body for the admin role toggle.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"` // "ADMIN" or "USER"
}
