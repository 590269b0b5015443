package guard

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castpro/console/internal/logging"
)

type sessionStub bool

func (s sessionStub) IsAuthenticated() bool { return bool(s) }

func newGuard(authenticated bool) *Guard {
	return New(sessionStub(authenticated), logging.NewTextLogger(io.Discard, slog.LevelError))
}

func TestCheck_AbsentSessionRedirectsToLogin(t *testing.T) {
	assert.Equal(t, RedirectLogin, newGuard(false).Check())
}

func TestCheck_PresentSessionAllows(t *testing.T) {
	assert.Equal(t, Allow, newGuard(true).Check())
}

func TestCheckLogin_InverseRule(t *testing.T) {
	assert.Equal(t, Allow, newGuard(false).CheckLogin())
	assert.Equal(t, RedirectDashboard, newGuard(true).CheckLogin())
}
