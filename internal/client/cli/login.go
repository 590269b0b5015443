package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/guard"
)

// Login runs the login form. An already-authenticated user is sent back to
// the dashboard instead, mirroring the inverse route guard.
func (a *App) Login(ctx context.Context) error {
	if a.guard.CheckLogin() == guard.RedirectDashboard {
		fmt.Fprintln(a.out, "Already logged in; showing dashboard.")
		return a.Dashboard(ctx)
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.validate.Var(email, "required,email"); err != nil {
		fmt.Fprintln(a.out, "That does not look like an email address.")
		return nil
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	if password == "" {
		fmt.Fprintln(a.out, "Password must not be empty.")
		return nil
	}

	sess, err := a.session.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Fprintln(a.out, "Invalid email or password.")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Fprintln(a.out, "Server unavailable, try again later.")
		default:
			fmt.Fprintln(a.out, "Login failed:", api.ErrorMessage(err))
		}
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", sess.Admin.Name)
	return nil
}

// Logout ends the session. The backend call is best-effort; the local
// credential is gone either way.
func (a *App) Logout(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}
	a.session.Logout(ctx)
	a.calls.Invalidate()
	a.apps.Invalidate()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
