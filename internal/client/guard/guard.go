// Package guard decides whether a protected view may render. The decision is
// a cheap synchronous presence check over the session store; credential
// invalidation is detected reactively by the gateway's 401 handling, which
// clears the session and forces navigation through a Navigator.
package guard

import "github.com/castpro/console/internal/logging"

// Decision is the outcome of a guard check.
type Decision int

const (
	// Allow renders the requested view unchanged.
	Allow Decision = iota

	// RedirectLogin sends an unauthenticated caller to the login entry
	// point; nothing of the requested view is rendered and no protected
	// data fetch may be issued.
	RedirectLogin

	// RedirectDashboard sends an already-authenticated caller away from the
	// login view, so credentials cannot be re-submitted mid-session.
	RedirectDashboard
)

// SessionReader is the read-only session surface the guard consults.
type SessionReader interface {
	IsAuthenticated() bool
}

// Navigator is the single top-level navigation controller. The gateway's
// unauthorized handler forces the login entry point through it; it is a hard
// navigation that wins any race against further rendering.
type Navigator interface {
	// ForceLogin drops whatever view is active and shows login.
	// The session must already be cleared when this is called.
	ForceLogin(reason string)
}

type Guard struct {
	session SessionReader
	log     logging.Logger
}

func New(session SessionReader, log logging.Logger) *Guard {
	return &Guard{session: session, log: log.With("component", "guard")}
}

// Check gates a protected view: Allow when a credential is present,
// RedirectLogin otherwise. Presence only — no backend verification.
func (g *Guard) Check() Decision {
	if g.session.IsAuthenticated() {
		return Allow
	}
	return RedirectLogin
}

// CheckLogin gates the login view with the inverse rule: an authenticated
// caller is forwarded to the dashboard instead of seeing the form.
func (g *Guard) CheckLogin() Decision {
	if g.session.IsAuthenticated() {
		return RedirectDashboard
	}
	return Allow
}
