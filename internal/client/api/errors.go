package api

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the gateway's error taxonomy. Callers match them
// with errors.Is; the concrete *StatusError carries the backend message.
var (
	// ErrUnavailable marks transport-level failures. The operation is left
	// retryable by re-invoking the user action; the gateway never retries.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks rejected credentials, at login or mid-session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a missing resource id.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks backend-rejected input on create/update.
	ErrValidation = errors.New("validation failed")
)

// StatusError is a structured error for any non-2xx backend response.
// Message carries the backend-provided text verbatim when present, so views
// can show actionable wording; Fields carries per-field validation messages.
type StatusError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

// Unwrap maps the HTTP status onto the taxonomy sentinel so callers can use
// errors.Is without inspecting status codes themselves.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	case 400, 422:
		return ErrValidation
	}
	return nil
}

// ErrorMessage extracts the user-facing text from any gateway error:
// the backend message when present, the error text otherwise.
func ErrorMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
