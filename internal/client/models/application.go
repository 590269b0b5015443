package models

import "time"

// Gender values accepted by the backend.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// CastingApplication is a talent's submission against a casting call.
// CastingCallID is immutable after creation; Status only ever moves forward
// through the workflow engine's transition table.
type CastingApplication struct {
	ID              int64             `json:"id"`
	CastingCallID   int64             `json:"casting_call_id"`
	FullName        string            `json:"full_name"`
	Address         string            `json:"address"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email"`
	Gender          string            `json:"gender"`
	ExperienceStory string            `json:"experience_story"`
	ImagePath       string            `json:"image_path"`
	Status          ApplicationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	// CastingCall is embedded by list/detail endpoints when available.
	CastingCall *CastingCall `json:"casting_call,omitempty"`
	Videos      []Video      `json:"videos,omitempty"`
}

// CallTitle returns the embedded casting call title, or a generic fallback
// when the backend did not embed the relation.
func (a CastingApplication) CallTitle() string {
	if a.CastingCall != nil && a.CastingCall.Title != "" {
		return a.CastingCall.Title
	}
	return "Casting Call"
}

// Video is an audition video attached to an application. Read-only from the
// console's perspective.
type Video struct {
	ID                   int64  `json:"id"`
	CastingApplicationID int64  `json:"casting_application_id"`
	VideoPath            string `json:"video_path"`
	VideoURL             string `json:"video_url,omitempty"`
}
