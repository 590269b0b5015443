package models

// ApplicationStatus represents the triage status of a casting application.
//
// The backend sets Pending at submission time; the console only ever moves an
// application forward: Pending may become Shortlisted, Hired or Rejected, and
// Shortlisted may become Hired or Rejected. Hired and Rejected are terminal.
type ApplicationStatus string

const (
	// StatusPending means the application awaits staff review.
	StatusPending ApplicationStatus = "pending"

	// StatusShortlisted means the applicant was kept for further consideration.
	StatusShortlisted ApplicationStatus = "shortlisted"

	// StatusHired means the applicant was hired (terminal).
	StatusHired ApplicationStatus = "hired"

	// StatusRejected means the application was rejected (terminal).
	StatusRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses lists all statuses in lifecycle order.
var ApplicationStatuses = []ApplicationStatus{
	StatusPending,
	StatusShortlisted,
	StatusHired,
	StatusRejected,
}

// String returns the wire representation of the status.
func (s ApplicationStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the four known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition exists out of s.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusHired || s == StatusRejected
}

// CallStatus represents the open/closed state of a casting call. It is set
// independently by staff and is not derived from the deadline or from
// application counts.
type CallStatus string

const (
	CallStatusOpen   CallStatus = "open"
	CallStatusClosed CallStatus = "closed"
)

func (s CallStatus) String() string {
	return string(s)
}

func (s CallStatus) Valid() bool {
	return s == CallStatusOpen || s == CallStatusClosed
}
