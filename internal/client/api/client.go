package api

import (
	"context"

	"github.com/castpro/console/internal/client/models"
)

// Client is the single point of egress to the CastPro backend: all reads and
// mutations issued by the console go through these named operations. None of
// them retry automatically; retry policy, if any, is a caller concern.
type Client interface {
	// Login exchanges credentials for a bearer token and admin identity.
	Login(ctx context.Context, email, password string) (models.Session, error)
	// Logout invalidates the credential on the backend, best effort.
	Logout(ctx context.Context) error

	ListCastingCalls(ctx context.Context) ([]models.CastingCall, error)
	GetCastingCall(ctx context.Context, id int64) (models.CastingCall, error)
	CreateCastingCall(ctx context.Context, in models.CastingCallInput) (models.CastingCall, error)
	UpdateCastingCall(ctx context.Context, id int64, in models.CastingCallInput) (models.CastingCall, error)
	DeleteCastingCall(ctx context.Context, id int64) error

	ListApplications(ctx context.Context) ([]models.CastingApplication, error)
	GetApplication(ctx context.Context, id int64) (models.CastingApplication, error)
	// SetApplicationStatus issues PATCH /admin/applications/{id}/status.
	SetApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (models.CastingApplication, error)

	// Named convenience transitions over SetApplicationStatus.
	Shortlist(ctx context.Context, id int64) (models.CastingApplication, error)
	Hire(ctx context.Context, id int64) (models.CastingApplication, error)
	Reject(ctx context.Context, id int64) (models.CastingApplication, error)
}

// TokenSource supplies the current bearer credential for outgoing requests.
// An empty string means no credential is attached.
type TokenSource interface {
	Token() string
}
