package cli

import (
	"context"
	"fmt"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/view"
)

// recentCount is how many of the newest applications the dashboard shows.
const recentCount = 5

// Dashboard prints the overview counters and the newest applications.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	calls, err := a.calls.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load casting calls:", api.ErrorMessage(err))
		return nil
	}
	apps, err := a.apps.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load applications:", api.ErrorMessage(err))
		return nil
	}

	s := view.Collect(calls, apps)
	fmt.Fprintf(a.out, "Casting calls: %d (%d open)\n", s.TotalCastings, s.OpenCastings)
	fmt.Fprintf(a.out, "Applications:  %d (%d pending, %d shortlisted, %d hired)\n",
		s.TotalApplications, s.Pending, s.Shortlisted, s.Hired)

	recent := view.Recent(apps, recentCount)
	if len(recent) == 0 {
		return nil
	}
	fmt.Fprintln(a.out, "Latest applications:")
	for _, app := range recent {
		fmt.Fprintf(a.out, "%4d  %-12s  %-24s  %s\n", app.ID, app.Status, app.FullName, app.CallTitle())
	}
	return nil
}
