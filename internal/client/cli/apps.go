package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/media"
	"github.com/castpro/console/internal/client/view"
	"github.com/castpro/console/internal/client/workflow"
)

// ListApps fetches applications and prints the subset matching the optional
// filter query (e.g. "status=pending&casting_call_id=3").
func (a *App) ListApps(ctx context.Context, query string) error {
	if !a.requireAuth() {
		return nil
	}

	filter, err := view.ParseQuery(query)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	apps, err := a.apps.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load applications:", api.ErrorMessage(err))
		return nil
	}

	visible := filter.Apply(apps)
	if len(visible) == 0 {
		if filter.IsZero() {
			fmt.Fprintln(a.out, "No applications yet.")
		} else {
			fmt.Fprintf(a.out, "No applications match %q. Try 'apps' to see all %d.\n",
				filter.Encode(), len(apps))
		}
		return nil
	}

	for _, app := range visible {
		fmt.Fprintf(a.out, "%4d  %-12s  %-24s  %s\n", app.ID, app.Status, app.FullName, app.CallTitle())
	}
	if !filter.IsZero() {
		fmt.Fprintf(a.out, "%d of %d applications (filter: %s)\n", len(visible), len(apps), filter.Encode())
	}
	return nil
}

// ShowApp prints one application in full, with resolved media URLs and the
// transitions still available from its status.
func (a *App) ShowApp(ctx context.Context, arg string) error {
	if !a.requireAuth() {
		return nil
	}

	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	app, err := a.apps.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Application not found.")
			return nil
		}
		fmt.Fprintln(a.out, "Could not load application:", api.ErrorMessage(err))
		return nil
	}

	fmt.Fprintf(a.out, "#%d %s [%s]\n", app.ID, app.FullName, app.Status)
	fmt.Fprintf(a.out, "Casting call: %s\n", app.CallTitle())
	fmt.Fprintf(a.out, "Email: %s  Phone: %s  Gender: %s\n", app.Email, app.Phone, app.Gender)
	if app.Address != "" {
		fmt.Fprintf(a.out, "Address: %s\n", app.Address)
	}
	if app.ExperienceStory != "" {
		fmt.Fprintf(a.out, "Experience: %s\n", app.ExperienceStory)
	}
	fmt.Fprintf(a.out, "Photo: %s\n", media.StorageURL(a.baseURL, app.ImagePath, app.FullName))
	for _, v := range app.Videos {
		url := v.VideoURL
		if url == "" {
			url = media.StorageURL(a.baseURL, v.VideoPath, app.FullName)
		}
		fmt.Fprintf(a.out, "Video: %s\n", url)
	}

	if actions := workflow.Actions(app.Status); len(actions) > 0 {
		fmt.Fprintf(a.out, "Actions: %v\n", actions)
	}
	return nil
}

// Shortlist moves an application to shortlisted after confirmation.
func (a *App) Shortlist(ctx context.Context, arg string) error {
	return a.triage(ctx, arg, workflow.ActionShortlist)
}

// Hire moves an application to hired after confirmation.
func (a *App) Hire(ctx context.Context, arg string) error {
	return a.triage(ctx, arg, workflow.ActionHire)
}

// Reject moves an application to rejected. The confirmation carries the
// destructive warning since rejected is a dead end.
func (a *App) Reject(ctx context.Context, arg string) error {
	return a.triage(ctx, arg, workflow.ActionReject)
}

func (a *App) triage(ctx context.Context, arg string, action workflow.Action) error {
	if !a.requireAuth() {
		return nil
	}

	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	app, err := a.apps.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Application not found.")
			return nil
		}
		fmt.Fprintln(a.out, "Could not load application:", api.ErrorMessage(err))
		return nil
	}

	p, err := a.engine.Propose(app, action)
	if err != nil {
		if errors.Is(err, workflow.ErrIllegalTransition) {
			fmt.Fprintf(a.out, "Cannot %s an application that is %s.\n", action, app.Status)
			return nil
		}
		fmt.Fprintln(a.out, err)
		return nil
	}

	q := p.Prompt()
	if p.Destructive() {
		q += " This cannot be undone."
	}
	if !Confirm(a.reader, q, a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	updated, err := a.engine.Execute(ctx, p)
	if err != nil {
		if errors.Is(err, workflow.ErrBusy) {
			fmt.Fprintln(a.out, "Another transition is still in progress.")
			return nil
		}
		fmt.Fprintln(a.out, "Transition failed:", api.ErrorMessage(err))
		return nil
	}

	fmt.Fprintf(a.out, "%s is now %s.\n", updated.FullName, updated.Status)
	return nil
}
