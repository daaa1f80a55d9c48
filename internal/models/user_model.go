package models

import "time"

// Roles a user can hold. Role is optional on the stored record; an empty or
// missing role is read as RoleUser.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents a user in the system. The external identity (auth provider
// UID) doubles as the Firestore document ID, which is what makes the
// first-sign-in bootstrap an atomic create rather than a check-then-insert.
type User struct {
	ExternalID string    `json:"externalId" firestore:"externalId"` // Also the document ID
	Name       string    `json:"name" firestore:"name"`
	Email      string    `json:"email" firestore:"email"`
	Phone      string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role       string    `json:"role,omitempty" firestore:"role,omitempty"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt  time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// EffectiveRole returns the stored role, defaulting to RoleUser when unset.
func (u *User) EffectiveRole() string {
	if u == nil || u.Role == "" {
		return RoleUser
	}
	return u.Role
}
