// Package session owns the console's only shared mutable state: the current
// admin session. It is written by Login, Logout and the gateway's 401
// handler, and read by the guard and by every outgoing request.
package session

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/castpro/console/internal/client/api"
	"github.com/castpro/console/internal/client/models"
	"github.com/castpro/console/internal/client/repositories/state"
	"github.com/castpro/console/internal/dbx"
	"github.com/castpro/console/internal/logging"
)

// Fixed keys in the durable state store. tokenKey matches the storage key
// the web console used for the same credential.
const (
	tokenKey = "admin_token"
	adminKey = "admin_profile"
)

// Store holds the active session in memory and mirrors it into the durable
// state database, so a restarted console resumes authenticated without a
// network round trip. All access is single-threaded (cooperative REPL), so
// no locking is required.
type Store struct {
	api api.Client
	db  *sql.DB
	log logging.Logger

	current models.Session
}

// NewStore builds a Store and seeds the active session from durable storage.
// A corrupt or absent stored session simply yields the unauthenticated state.
func NewStore(ctx context.Context, apiClient api.Client, db *sql.DB, log logging.Logger) (*Store, error) {
	s := &Store{api: apiClient, db: db, log: log.With("component", "session")}

	repo := state.NewSQLiteRepository(db)
	token, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return s, nil
	}

	s.current.Token = string(token)
	if raw, err := repo.Get(ctx, adminKey); err == nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.current.Admin); err != nil {
			s.log.Warn(ctx, "stored admin profile unreadable, keeping token only", "err", err)
		}
	}
	s.log.Info(ctx, "session restored", "admin", s.current.Admin.Email)
	return s, nil
}

// Login calls the backend credential endpoint and, on success, makes the
// returned session active and persists it. On failure the session state is
// left untouched; the error carries the backend message (errors.Is
// api.ErrUnauthorized for bad credentials, api.ErrUnavailable for transport
// failure).
func (s *Store) Login(ctx context.Context, email, password string) (models.Session, error) {
	sess, err := s.api.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}

	if err := s.persist(ctx, sess); err != nil {
		// The backend accepted the login; keep the session usable for this
		// process and warn that it will not survive a restart.
		s.log.Warn(ctx, "session not persisted", "err", err)
	}
	s.current = sess
	return sess, nil
}

func (s *Store) persist(ctx context.Context, sess models.Session) error {
	admin, err := json.Marshal(sess.Admin)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, adminKey, admin)
	})
}

// Logout invalidates the credential on the backend, best effort, then
// unconditionally clears local state. Logging out never depends on network
// availability.
func (s *Store) Logout(ctx context.Context) {
	if s.IsAuthenticated() {
		if err := s.api.Logout(ctx); err != nil {
			s.log.Warn(ctx, "backend logout failed, clearing local session anyway", "err", err)
		}
	}
	s.Clear(ctx)
}

// Clear wipes the session from memory and durable storage. It is also the
// first half of the gateway's 401 reaction and must complete before any
// forced navigation.
func (s *Store) Clear(ctx context.Context) {
	repo := state.NewSQLiteRepository(s.db)
	if err := repo.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear stored session", "err", err)
	}
	s.current = models.Session{}
}

// Current returns the active session without touching the network.
func (s *Store) Current() (models.Session, bool) {
	return s.current, s.IsAuthenticated()
}

// IsAuthenticated reports credential presence only; validity is discovered
// lazily via 401 responses.
func (s *Store) IsAuthenticated() bool {
	return s.current.Token != ""
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	return s.current.Token
}
