package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/models"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// ListCalls fetches and prints the casting call registry.
func (a *App) ListCalls(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	calls, err := a.calls.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load casting calls:", api.ErrorMessage(err))
		return nil
	}
	if len(calls) == 0 {
		fmt.Fprintln(a.out, "No casting calls yet. Create one with 'newcall'.")
		return nil
	}

	for _, c := range calls {
		fmt.Fprintf(a.out, "%4d  %-8s  %-10s  %s\n", c.ID, c.Status, c.Deadline, c.Title)
	}
	return nil
}

// ShowCall prints one casting call with its applications.
func (a *App) ShowCall(ctx context.Context, arg string) error {
	if !a.requireAuth() {
		return nil
	}

	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	call, err := a.calls.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Casting call not found.")
			return nil
		}
		fmt.Fprintln(a.out, "Could not load casting call:", api.ErrorMessage(err))
		return nil
	}

	fmt.Fprintf(a.out, "#%d %s [%s]\n", call.ID, call.Title, call.Status)
	if call.Deadline != "" {
		fmt.Fprintf(a.out, "Deadline: %s\n", call.Deadline)
	}
	fmt.Fprintln(a.out, call.Description)
	if call.Requirements != "" {
		fmt.Fprintf(a.out, "Requirements: %s\n", call.Requirements)
	}
	if len(call.Applications) == 0 {
		fmt.Fprintln(a.out, "No applications yet.")
		return nil
	}

	byStatus := map[models.ApplicationStatus]int{}
	for _, app := range call.Applications {
		byStatus[app.Status]++
	}
	fmt.Fprintf(a.out, "Applications (%d):", len(call.Applications))
	for _, st := range models.ApplicationStatuses {
		if n := byStatus[st]; n > 0 {
			fmt.Fprintf(a.out, " %d %s", n, st)
		}
	}
	fmt.Fprintln(a.out)
	for _, app := range call.Applications {
		fmt.Fprintf(a.out, "%4d  %-12s  %s\n", app.ID, app.Status, app.FullName)
	}
	return nil
}

// callForm prompts for the casting call fields. Empty answers keep the
// value in cur, which carries the zero value on create.
func (a *App) callForm(cur models.CastingCallInput) (models.CastingCallInput, error) {
	in := cur

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return in, err
	}
	if title != "" {
		in.Title = title
	}

	desc, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return in, err
	}
	if desc != "" {
		in.Description = desc
	}

	reqs, err := GetSimpleText(a.reader, "Requirements (optional)", a.out)
	if err != nil {
		return in, err
	}
	if reqs != "" {
		in.Requirements = reqs
	}

	deadline, err := GetSimpleText(a.reader, "Deadline YYYY-MM-DD (optional)", a.out)
	if err != nil {
		return in, err
	}
	if deadline != "" {
		in.Deadline = deadline
	}

	status, err := GetSimpleText(a.reader, "Status open/closed (optional)", a.out)
	if err != nil {
		return in, err
	}
	if status != "" {
		in.Status = models.CallStatus(status)
	}

	return in, nil
}

// reportInvalid prints one line per failed validation so the user can fix
// the form without re-reading it all.
func (a *App) reportInvalid(err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				fmt.Fprintf(a.out, "%s is required.\n", fe.Field())
			case "datetime":
				fmt.Fprintf(a.out, "%s must be a date in YYYY-MM-DD form.\n", fe.Field())
			case "oneof":
				fmt.Fprintf(a.out, "%s must be one of: %s.\n", fe.Field(), fe.Param())
			default:
				fmt.Fprintf(a.out, "%s is invalid.\n", fe.Field())
			}
		}
		return
	}
	fmt.Fprintln(a.out, "Invalid input:", err)
}

// NewCall runs the create form and submits it.
func (a *App) NewCall(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	in, err := a.callForm(models.CastingCallInput{})
	if err != nil {
		return err
	}
	if err := a.validate.Struct(in); err != nil {
		a.reportInvalid(err)
		return nil
	}

	call, err := a.calls.Create(ctx, in)
	if err != nil {
		fmt.Fprintln(a.out, "Could not create casting call:", api.ErrorMessage(err))
		return nil
	}
	fmt.Fprintf(a.out, "Created casting call #%d %q.\n", call.ID, call.Title)
	return nil
}

// EditCall prefills the form from the current record and submits the update.
// Empty answers keep the current values.
func (a *App) EditCall(ctx context.Context, arg string) error {
	if !a.requireAuth() {
		return nil
	}

	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	cur, err := a.calls.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Casting call not found.")
			return nil
		}
		fmt.Fprintln(a.out, "Could not load casting call:", api.ErrorMessage(err))
		return nil
	}

	fmt.Fprintln(a.out, "Press Enter to keep the current value.")
	in, err := a.callForm(models.CastingCallInput{
		Title:        cur.Title,
		Description:  cur.Description,
		Requirements: cur.Requirements,
		Deadline:     cur.Deadline,
		Status:       cur.Status,
	})
	if err != nil {
		return err
	}
	if err := a.validate.Struct(in); err != nil {
		a.reportInvalid(err)
		return nil
	}

	call, err := a.calls.Update(ctx, id, in)
	if err != nil {
		fmt.Fprintln(a.out, "Could not update casting call:", api.ErrorMessage(err))
		return nil
	}
	fmt.Fprintf(a.out, "Updated casting call #%d %q.\n", call.ID, call.Title)
	return nil
}

// DeleteCall asks for confirmation, then deletes. The registry drops the
// record locally right away and reloads in the background of the same call.
func (a *App) DeleteCall(ctx context.Context, arg string) error {
	if !a.requireAuth() {
		return nil
	}

	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	call, err := a.calls.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Casting call not found.")
			return nil
		}
		fmt.Fprintln(a.out, "Could not load casting call:", api.ErrorMessage(err))
		return nil
	}

	q := fmt.Sprintf("Delete casting call %q and all its applications? This cannot be undone.", call.Title)
	if !Confirm(a.reader, q, a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.calls.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Could not delete casting call:", api.ErrorMessage(err))
		return nil
	}
	fmt.Fprintf(a.out, "Deleted casting call #%d.\n", id)
	return nil
}
