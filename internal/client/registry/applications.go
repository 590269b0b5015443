package registry

import (
	"context"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/models"
	"github.com/castpro/console/internal/logging"
)

// Applications caches the application list between renders. Filtering is
// applied by the view layer over Cached() without touching the backend.
type Applications struct {
	api api.Client
	log logging.Logger

	cached []models.CastingApplication
	loaded bool
}

func NewApplications(apiClient api.Client, log logging.Logger) *Applications {
	return &Applications{api: apiClient, log: log.With("registry", "applications")}
}

// List fetches the full application list and replaces the cache.
func (r *Applications) List(ctx context.Context) ([]models.CastingApplication, error) {
	apps, err := r.api.ListApplications(ctx)
	if err != nil {
		return nil, err
	}
	r.cached = apps
	r.loaded = true
	return apps, nil
}

// Cached returns the current projection without any I/O.
func (r *Applications) Cached() []models.CastingApplication {
	return r.cached
}

func (r *Applications) Loaded() bool {
	return r.loaded
}

func (r *Applications) Invalidate() {
	r.cached = nil
	r.loaded = false
}

// Get fetches a single application fresh from the backend and reconciles the
// cached list entry. It is also the causal re-fetch after a status change:
// the workflow engine calls it after every successful transition so the view
// reflects the authoritative post-transition state.
func (r *Applications) Get(ctx context.Context, id int64) (models.CastingApplication, error) {
	app, err := r.api.GetApplication(ctx, id)
	if err != nil {
		return models.CastingApplication{}, err
	}
	r.reconcile(app)
	return app, nil
}

// Refresh is Get under its post-mutation name.
func (r *Applications) Refresh(ctx context.Context, id int64) (models.CastingApplication, error) {
	return r.Get(ctx, id)
}

func (r *Applications) reconcile(app models.CastingApplication) {
	if !r.loaded {
		return
	}
	for i := range r.cached {
		if r.cached[i].ID == app.ID {
			r.cached[i] = app
			return
		}
	}
}
