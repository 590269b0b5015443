// Package registry provides thin client-side caches over the gateway.
// Cached entries are disposable projections: every mutation re-fetches from
// the backend rather than merging locally, and any cache may be discarded
// and re-fetched at any time.
package registry

import (
	"context"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/models"
	"github.com/castpro/console/internal/logging"
)

// CastingCalls caches the casting call list between renders.
type CastingCalls struct {
	api api.Client
	log logging.Logger

	cached []models.CastingCall
	loaded bool
}

func NewCastingCalls(apiClient api.Client, log logging.Logger) *CastingCalls {
	return &CastingCalls{api: apiClient, log: log.With("registry", "casting_calls")}
}

// List fetches the full list and replaces the cache. On failure the previous
// cache is kept so a failed reload leaves the view empty-but-not-crashed.
func (r *CastingCalls) List(ctx context.Context) ([]models.CastingCall, error) {
	calls, err := r.api.ListCastingCalls(ctx)
	if err != nil {
		return nil, err
	}
	r.cached = calls
	r.loaded = true
	return calls, nil
}

// Cached returns the current projection without any I/O.
func (r *CastingCalls) Cached() []models.CastingCall {
	return r.cached
}

// Loaded reports whether List has succeeded at least once since the last
// Invalidate.
func (r *CastingCalls) Loaded() bool {
	return r.loaded
}

// Invalidate drops the cache; the next List starts from the backend.
func (r *CastingCalls) Invalidate() {
	r.cached = nil
	r.loaded = false
}

// Get fetches a single casting call (with embedded applications) and
// reconciles the cached list entry.
func (r *CastingCalls) Get(ctx context.Context, id int64) (models.CastingCall, error) {
	call, err := r.api.GetCastingCall(ctx, id)
	if err != nil {
		return models.CastingCall{}, err
	}
	r.reconcile(call)
	return call, nil
}

// Create posts a new casting call, then re-fetches the list so the cache
// reflects the authoritative state.
func (r *CastingCalls) Create(ctx context.Context, in models.CastingCallInput) (models.CastingCall, error) {
	call, err := r.api.CreateCastingCall(ctx, in)
	if err != nil {
		return models.CastingCall{}, err
	}
	r.reload(ctx)
	return call, nil
}

// Update edits an existing casting call, then re-fetches the list.
func (r *CastingCalls) Update(ctx context.Context, id int64, in models.CastingCallInput) (models.CastingCall, error) {
	call, err := r.api.UpdateCastingCall(ctx, id, in)
	if err != nil {
		return models.CastingCall{}, err
	}
	r.reload(ctx)
	return call, nil
}

// Delete removes a casting call. On success the entry disappears from the
// cache immediately and the list is re-fetched to reconcile; on failure the
// cache is left exactly as it was.
func (r *CastingCalls) Delete(ctx context.Context, id int64) error {
	if err := r.api.DeleteCastingCall(ctx, id); err != nil {
		return err
	}

	if r.loaded {
		kept := r.cached[:0]
		for _, c := range r.cached {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		r.cached = kept
	}
	r.reload(ctx)
	return nil
}

// reload re-fetches the list after a successful mutation. A failed reload is
// not an error for the mutation itself: the current projection stays in
// place and the next List fetches fresh anyway.
func (r *CastingCalls) reload(ctx context.Context) {
	if _, err := r.List(ctx); err != nil {
		r.log.Warn(ctx, "list reload after mutation failed", "err", err)
	}
}

func (r *CastingCalls) reconcile(call models.CastingCall) {
	if !r.loaded {
		return
	}
	for i := range r.cached {
		if r.cached[i].ID == call.ID {
			r.cached[i] = call
			return
		}
	}
}
