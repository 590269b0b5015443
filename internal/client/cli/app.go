package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/config"
	"github.com/castpro/console/internal/client/guard"
	"github.com/castpro/console/internal/client/localdb"
	"github.com/castpro/console/internal/client/registry"
	"github.com/castpro/console/internal/client/session"
	"github.com/castpro/console/internal/client/workflow"
	"github.com/castpro/console/internal/logging"
)

// App wires the console together: the REST gateway, the durable session
// store, the registries, the workflow engine and the route guard. It is the
// single Navigator, so a 401 anywhere lands back on the login prompt.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	db      *sql.DB
	api     api.Client
	baseURL string
	session *session.Store
	guard   *guard.Guard
	calls   *registry.CastingCalls
	apps    *registry.Applications
	engine  *workflow.Engine

	validate *validator.Validate
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.StateDBPath)
	if err != nil {
		return nil, err
	}

	rest := api.NewRESTClient(cfg.APIBaseURL, cfg.RequestTimeout, log)

	store, err := session.NewStore(ctx, rest, db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	rest.SetTokenSource(store)

	a := &App{
		cfg:      cfg,
		log:      log.With("component", "console"),
		db:       db,
		api:      rest,
		baseURL:  rest.BaseURL(),
		session:  store,
		guard:    guard.New(store, log),
		validate: validator.New(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.calls = registry.NewCastingCalls(rest, log)
	a.apps = registry.NewApplications(rest, log)
	a.engine = workflow.NewEngine(rest, a.apps, log)

	// The session is cleared before the forced navigation, so by the time
	// the login prompt shows, no trace of the dead credential remains.
	rest.SetUnauthorizedHandler(func() {
		store.Clear(context.Background())
		a.ForceLogin("Your session has expired. Please log in again.")
	})

	return a, nil
}

// ForceLogin implements guard.Navigator: it drops the active view and
// invalidates the registries, so the next login starts from a cold cache.
func (a *App) ForceLogin(reason string) {
	a.calls.Invalidate()
	a.apps.Invalidate()
	fmt.Fprintln(a.out, reason)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if sess, ok := a.session.Current(); ok {
		return fmt.Sprintf("(%s)", sess.Admin.Name)
	}
	return ""
}

// Run starts the console loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "CastPro admin console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing state db", "err", err)
	}
}

// requireAuth gates a protected command the way a route guard gates a view:
// a missing credential redirects to login without issuing any fetch.
func (a *App) requireAuth() bool {
	if a.guard.Check() == guard.Allow {
		return true
	}
	fmt.Fprintln(a.out, "You must log in first (type 'login').")
	return false
}
