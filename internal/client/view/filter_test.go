package view

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castpro/console/internal/client/models"
)

func sampleApps() []models.CastingApplication {
	return []models.CastingApplication{
		{ID: 1, CastingCallID: 10, FullName: "Alice", Status: models.StatusPending},
		{ID: 2, CastingCallID: 10, FullName: "Bob", Status: models.StatusShortlisted},
		{ID: 3, CastingCallID: 20, FullName: "Carol", Status: models.StatusPending},
		{ID: 4, CastingCallID: 20, FullName: "Dave", Status: models.StatusHired},
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Filter
		wantErr bool
	}{
		{name: "empty", query: "", want: Filter{}},
		{name: "all is no restriction", query: "status=all", want: Filter{}},
		{name: "status only", query: "status=pending", want: Filter{Status: models.StatusPending}},
		{name: "call only", query: "casting_call_id=10", want: Filter{CastingCallID: 10}},
		{name: "both", query: "status=hired&casting_call_id=20", want: Filter{Status: models.StatusHired, CastingCallID: 20}},
		{name: "unknown status", query: "status=archived", wantErr: true},
		{name: "non numeric call id", query: "casting_call_id=abc", wantErr: true},
		{name: "negative call id", query: "casting_call_id=-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuery(tt.query)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterApplyIsPure(t *testing.T) {
	apps := sampleApps()

	got := Filter{Status: models.StatusPending}.Apply(apps)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	// Same inputs, same output.
	again := Filter{Status: models.StatusPending}.Apply(apps)
	assert.Equal(t, got, again)

	// The source list is left untouched.
	assert.Len(t, apps, 4)
}

func TestFilterApplyZeroReturnsInputUnchanged(t *testing.T) {
	apps := sampleApps()
	got := Filter{}.Apply(apps)
	assert.Equal(t, apps, got)
}

func TestFilterApplyCombined(t *testing.T) {
	apps := sampleApps()
	got := Filter{Status: models.StatusPending, CastingCallID: 20}.Apply(apps)
	require.Len(t, got, 1)
	assert.Equal(t, "Carol", got[0].FullName)
}

func TestFilterEncodeRoundTrip(t *testing.T) {
	f := Filter{Status: models.StatusShortlisted, CastingCallID: 7}

	raw := f.Encode()
	back, err := ParseQuery(raw)
	require.NoError(t, err)
	assert.Equal(t, f, back)

	// The zero filter encodes to nothing.
	assert.Equal(t, "", Filter{}.Encode())
	assert.Equal(t, url.Values{}, Filter{}.Query())
}

func TestCollect(t *testing.T) {
	calls := []models.CastingCall{
		{ID: 10, Status: models.CallStatusOpen},
		{ID: 20, Status: models.CallStatusClosed},
		{ID: 30, Status: models.CallStatusOpen},
	}

	s := Collect(calls, sampleApps())
	assert.Equal(t, 3, s.TotalCastings)
	assert.Equal(t, 2, s.OpenCastings)
	assert.Equal(t, 4, s.TotalApplications)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Shortlisted)
	assert.Equal(t, 1, s.Hired)
}

func TestRecent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	apps := []models.CastingApplication{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, CreatedAt: base.Add(time.Hour)},
	}

	got := Recent(apps, 2)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	// Input order preserved.
	assert.Equal(t, int64(1), apps[0].ID)

	// n larger than the list is fine.
	assert.Len(t, Recent(apps, 10), 3)
}
