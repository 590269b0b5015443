// Package view derives what the console shows from cached data: the
// application filter carried as URL-style query state, and the dashboard
// aggregates. Everything here is pure — no I/O, no cache mutation.
package view

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/castpro/console/internal/client/models"
)

// Query parameter names, shared with the web console's URL surface.
const (
	ParamStatus      = "status"
	ParamCastingCall = "casting_call_id"
)

// StatusAll is the explicit "no status restriction" value; an absent
// parameter means the same thing.
const StatusAll = "all"

// Filter is the visible-subset selection for the applications view. The
// zero value selects everything.
type Filter struct {
	// Status restricts to one triage status; empty means no restriction.
	Status models.ApplicationStatus

	// CastingCallID restricts to one owning casting call; 0 means no
	// restriction.
	CastingCallID int64
}

// ParseFilter reads a Filter from query values. Unknown statuses and
// non-numeric casting call ids are errors so a mistyped shared URL is called
// out instead of silently matching nothing.
func ParseFilter(v url.Values) (Filter, error) {
	var f Filter

	if s := v.Get(ParamStatus); s != "" && s != StatusAll {
		st := models.ApplicationStatus(s)
		if !st.Valid() {
			return Filter{}, fmt.Errorf("unknown status %q", s)
		}
		f.Status = st
	}

	if raw := v.Get(ParamCastingCall); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return Filter{}, fmt.Errorf("invalid %s %q", ParamCastingCall, raw)
		}
		f.CastingCallID = id
	}

	return f, nil
}

// ParseQuery parses a raw query string ("status=pending&casting_call_id=3").
func ParseQuery(raw string) (Filter, error) {
	v, err := url.ParseQuery(raw)
	if err != nil {
		return Filter{}, fmt.Errorf("invalid filter query: %w", err)
	}
	return ParseFilter(v)
}

// Apply returns the subset of apps matching the filter. It is deterministic
// over its inputs and performs no I/O; the zero filter returns the input
// unchanged.
func (f Filter) Apply(apps []models.CastingApplication) []models.CastingApplication {
	if f.IsZero() {
		return apps
	}

	out := make([]models.CastingApplication, 0, len(apps))
	for _, a := range apps {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.CastingCallID != 0 && a.CastingCallID != f.CastingCallID {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Query re-encodes the filter as URL values, omitting no-restriction
// parts, so the view state round-trips and stays shareable.
func (f Filter) Query() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set(ParamStatus, f.Status.String())
	}
	if f.CastingCallID != 0 {
		v.Set(ParamCastingCall, strconv.FormatInt(f.CastingCallID, 10))
	}
	return v
}

// Encode returns the canonical query-string form of the filter.
func (f Filter) Encode() string {
	return f.Query().Encode()
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return f.Status == "" && f.CastingCallID == 0
}
