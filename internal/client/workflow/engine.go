// Package workflow enforces the application status lifecycle. Transitions
// are a closed table checked before any network call; each executed
// transition is followed by a re-fetch of the application so the view
// reflects the authoritative post-transition state, including backend-side
// side effects.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/models"
	"github.com/castpro/console/internal/client/registry"
	"github.com/castpro/console/internal/logging"
)

// Action is a staff-initiated transition request.
type Action string

const (
	ActionShortlist Action = "shortlist"
	ActionHire      Action = "hire"
	ActionReject    Action = "reject"
)

// actionOrder fixes the order actions are offered to views.
var actionOrder = []Action{ActionShortlist, ActionHire, ActionReject}

// transitions is the full from-state × action table. Absent entries are
// illegal; terminal states have no entries at all.
var transitions = map[models.ApplicationStatus]map[Action]models.ApplicationStatus{
	models.StatusPending: {
		ActionShortlist: models.StatusShortlisted,
		ActionHire:      models.StatusHired,
		ActionReject:    models.StatusRejected,
	},
	models.StatusShortlisted: {
		ActionHire:   models.StatusHired,
		ActionReject: models.StatusRejected,
	},
}

var (
	// ErrIllegalTransition is returned before any network call when the
	// requested action does not exist for the application's status.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrBusy is returned while another transition is still outstanding.
	ErrBusy = errors.New("transition already in progress")
)

// Target resolves the destination status for (from, action).
func Target(from models.ApplicationStatus, action Action) (models.ApplicationStatus, bool) {
	to, ok := transitions[from][action]
	return to, ok
}

// Actions returns the legal actions out of the given status, in display
// order. Terminal statuses yield none, which is how views hide the buttons.
func Actions(from models.ApplicationStatus) []Action {
	var out []Action
	for _, a := range actionOrder {
		if _, ok := transitions[from][a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Proposal is the first phase of a transition: a fully-resolved request the
// view must put in front of the user before Execute may run.
type Proposal struct {
	ApplicationID int64
	Applicant     string
	Action        Action
	From          models.ApplicationStatus
	To            models.ApplicationStatus
}

// Destructive marks the proposal for warning-style presentation. Reject is
// the only destructive transition.
func (p Proposal) Destructive() bool {
	return p.Action == ActionReject
}

// Prompt is the confirmation question naming the action and the applicant.
func (p Proposal) Prompt() string {
	return fmt.Sprintf("Are you sure you want to %s %s?", p.Action, p.Applicant)
}

// Engine drives confirmed transitions through the gateway. It is used from
// the single-threaded console loop, so the busy flag is a plain bool; it
// exists to refuse a second transition while one is outstanding.
type Engine struct {
	api  api.Client
	apps *registry.Applications
	log  logging.Logger
	busy bool
}

func NewEngine(apiClient api.Client, apps *registry.Applications, log logging.Logger) *Engine {
	return &Engine{api: apiClient, apps: apps, log: log.With("component", "workflow")}
}

// Busy reports whether a transition is currently outstanding. Views disable
// all transition actions for the application while this is true.
func (e *Engine) Busy() bool {
	return e.busy
}

// Propose validates the requested action against the transition table and
// returns the proposal to confirm. No network I/O happens here.
func (e *Engine) Propose(app models.CastingApplication, action Action) (Proposal, error) {
	to, ok := Target(app.Status, action)
	if !ok {
		return Proposal{}, fmt.Errorf("%w: %s from %s", ErrIllegalTransition, action, app.Status)
	}
	return Proposal{
		ApplicationID: app.ID,
		Applicant:     app.FullName,
		Action:        action,
		From:          app.Status,
		To:            to,
	}, nil
}

// Execute runs a confirmed proposal: set the status through the gateway,
// then re-fetch the application so the cached status is authoritative. The
// two calls are causally ordered and never issued concurrently. On any
// failure the cached status is left unchanged and the engine returns to
// non-busy so the user may retry.
func (e *Engine) Execute(ctx context.Context, p Proposal) (models.CastingApplication, error) {
	if e.busy {
		return models.CastingApplication{}, ErrBusy
	}
	e.busy = true
	defer func() { e.busy = false }()

	if _, err := e.api.SetApplicationStatus(ctx, p.ApplicationID, p.To); err != nil {
		e.log.Warn(ctx, "status transition failed",
			"application", p.ApplicationID, "action", p.Action, "err", err)
		return models.CastingApplication{}, err
	}

	app, err := e.apps.Refresh(ctx, p.ApplicationID)
	if err != nil {
		e.log.Warn(ctx, "re-fetch after transition failed",
			"application", p.ApplicationID, "err", err)
		return models.CastingApplication{}, err
	}

	e.log.Info(ctx, "status transition applied",
		"application", p.ApplicationID, "from", p.From, "to", app.Status)
	return app, nil
}
