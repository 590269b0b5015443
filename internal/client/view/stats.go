package view

import (
	"sort"

	"github.com/castpro/console/internal/client/models"
)

// Stats holds the dashboard counters, computed from the cached registries.
type Stats struct {
	TotalCastings     int
	OpenCastings      int
	TotalApplications int
	Pending           int
	Shortlisted       int
	Hired             int
}

// Collect computes dashboard stats over the cached casting calls and
// applications.
func Collect(calls []models.CastingCall, apps []models.CastingApplication) Stats {
	s := Stats{
		TotalCastings:     len(calls),
		TotalApplications: len(apps),
	}
	for _, c := range calls {
		if c.Status == models.CallStatusOpen {
			s.OpenCastings++
		}
	}
	for _, a := range apps {
		switch a.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusShortlisted:
			s.Shortlisted++
		case models.StatusHired:
			s.Hired++
		}
	}
	return s
}

// Recent returns up to n applications ordered newest first. The input slice
// is left untouched.
func Recent(apps []models.CastingApplication, n int) []models.CastingApplication {
	out := make([]models.CastingApplication, len(apps))
	copy(out, apps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
