// Package models holds the client-side projections of backend entities.
// All entities are owned by the backend; every value here is a disposable
// copy that is safe to discard and re-fetch at any time.
package models

import "time"

// Admin is the identity returned by the login endpoint.
type Admin struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session pairs the opaque bearer credential with the admin it belongs to.
// Presence of a non-empty Token means "authenticated" as far as the console
// is concerned; validity is only discovered lazily through 401 responses.
type Session struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// CastingCall is a staff-created posting describing a role or opportunity.
type CastingCall struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Deadline     string     `json:"deadline"`
	Status       CallStatus `json:"status"`
	CreatedBy    int64      `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Applications is embedded by the detail endpoint only.
	Applications []CastingApplication `json:"applications,omitempty"`
}

// CastingCallInput is the payload for create and update calls. Validation
// tags are checked client-side before any request is issued; the backend
// remains authoritative and its validation messages are surfaced verbatim.
type CastingCallInput struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description" validate:"required"`
	Requirements string     `json:"requirements,omitempty" validate:"-"`
	Deadline     string     `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status       CallStatus `json:"status,omitempty" validate:"omitempty,oneof=open closed"`
}
