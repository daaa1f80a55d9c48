package models

// Wizard step bounds. Step 1 selects a brand, step 2 collects specification
// fields, step 3 attaches the uploaded image, step 4 sets pricing.
const (
	DraftFirstStep = 1
	DraftLastStep  = 4
)

// ListingDraft is the server-held state of a car being composed through the
// listing wizard. Drafts live in Redis with a TTL and are never persisted to
// the record store; letting one expire loses it, which matches the
// abandon-the-dialog semantics of the wizard.
type ListingDraft struct {
	ID              string  `json:"id"`
	OwnerExternalID string  `json:"ownerExternalId"`
	Step            int     `json:"step"`
	Logo            string  `json:"logo,omitempty"`
	Name            string  `json:"name,omitempty"`
	Description     string  `json:"description,omitempty"`
	Model           string  `json:"model,omitempty"`
	Year            int     `json:"year,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	Price           float64 `json:"price,omitempty"`
	Seats           int     `json:"seats"`
	Windows         int     `json:"windows"`
	Automatic       bool    `json:"automatic"`
}
