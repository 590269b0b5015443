package registry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/models"
	"github.com/castpro/console/internal/logging"
)

// fakeAPI implements only what the registries call; the embedded interface
// panics on anything else.
type fakeAPI struct {
	api.Client

	calls    []models.CastingCall
	callsErr error

	apps    []models.CastingApplication
	appsErr error

	getApp    models.CastingApplication
	getAppErr error

	deleteErr   error
	deletedIDs  []int64
	listFetches int
}

func (f *fakeAPI) ListCastingCalls(ctx context.Context) ([]models.CastingCall, error) {
	f.listFetches++
	if f.callsErr != nil {
		return nil, f.callsErr
	}
	return append([]models.CastingCall(nil), f.calls...), nil
}

func (f *fakeAPI) DeleteCastingCall(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	kept := f.calls[:0]
	for _, c := range f.calls {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.calls = kept
	return nil
}

func (f *fakeAPI) ListApplications(ctx context.Context) ([]models.CastingApplication, error) {
	if f.appsErr != nil {
		return nil, f.appsErr
	}
	return append([]models.CastingApplication(nil), f.apps...), nil
}

func (f *fakeAPI) GetApplication(ctx context.Context, id int64) (models.CastingApplication, error) {
	return f.getApp, f.getAppErr
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func threeCalls() []models.CastingCall {
	return []models.CastingCall{
		{ID: 5, Title: "Commercial"},
		{ID: 7, Title: "Feature Film"},
		{ID: 9, Title: "Series"},
	}
}

func TestCastingCalls_ListCaches(t *testing.T) {
	f := &fakeAPI{calls: threeCalls()}
	r := NewCastingCalls(f, testLogger())

	assert.False(t, r.Loaded())

	got, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.True(t, r.Loaded())
	assert.Len(t, r.Cached(), 3)
}

func TestCastingCalls_DeleteRemovesFromCache(t *testing.T) {
	f := &fakeAPI{calls: threeCalls()}
	r := NewCastingCalls(f, testLogger())
	_, err := r.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, r.Delete(context.Background(), 7))

	for _, c := range r.Cached() {
		assert.NotEqual(t, int64(7), c.ID)
	}
	assert.Len(t, r.Cached(), 2)
	assert.Equal(t, []int64{7}, f.deletedIDs)
}

func TestCastingCalls_DeleteFailureLeavesCacheUnchanged(t *testing.T) {
	f := &fakeAPI{calls: threeCalls(), deleteErr: &api.StatusError{Status: 500, Message: "boom"}}
	r := NewCastingCalls(f, testLogger())
	_, err := r.List(context.Background())
	require.NoError(t, err)

	err = r.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "boom", api.ErrorMessage(err))
	assert.Len(t, r.Cached(), 3)
}

func TestCastingCalls_DeleteSurvivesReloadFailure(t *testing.T) {
	f := &fakeAPI{calls: threeCalls()}
	r := NewCastingCalls(f, testLogger())
	_, err := r.List(context.Background())
	require.NoError(t, err)

	// Delete succeeds but the follow-up list reload does not.
	f.callsErr = errors.New("network down")
	require.NoError(t, r.Delete(context.Background(), 7))

	assert.Len(t, r.Cached(), 2)
}

func TestApplications_GetReconcilesCache(t *testing.T) {
	f := &fakeAPI{apps: []models.CastingApplication{
		{ID: 42, FullName: "Jordan Reyes", Status: models.StatusPending},
		{ID: 43, FullName: "Sam Lin", Status: models.StatusPending},
	}}
	r := NewApplications(f, testLogger())
	_, err := r.List(context.Background())
	require.NoError(t, err)

	f.getApp = models.CastingApplication{ID: 42, FullName: "Jordan Reyes", Status: models.StatusRejected}

	app, err := r.Refresh(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, app.Status)

	var cached models.CastingApplication
	for _, a := range r.Cached() {
		if a.ID == 42 {
			cached = a
		}
	}
	assert.Equal(t, models.StatusRejected, cached.Status)
}

func TestApplications_ListFailurePropagates(t *testing.T) {
	f := &fakeAPI{appsErr: &api.StatusError{Status: 500, Message: "oops"}}
	r := NewApplications(f, testLogger())

	_, err := r.List(context.Background())
	require.Error(t, err)
	assert.False(t, r.Loaded())
}

func TestApplications_Invalidate(t *testing.T) {
	f := &fakeAPI{apps: []models.CastingApplication{{ID: 1}}}
	r := NewApplications(f, testLogger())
	_, err := r.List(context.Background())
	require.NoError(t, err)

	r.Invalidate()
	assert.False(t, r.Loaded())
	assert.Empty(t, r.Cached())
}
