package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castpro/console/internal/client/models"
	"github.com/castpro/console/internal/logging"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRESTClient(srv.URL+"/api", 5*time.Second, testLogger())
}

func TestDo_AttachesHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode([]models.CastingCall{})
	})
	c.SetTokenSource(staticToken("secret-token"))

	_, err := c.ListCastingCalls(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestDo_NoAuthorizationWithoutToken(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode([]models.CastingCall{})
	})
	c.SetTokenSource(staticToken(""))

	_, err := c.ListCastingCalls(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestLogin_DecodesSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/admin/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "admin@castpro.com", body["email"])

		_ = json.NewEncoder(w).Encode(models.Session{
			Token: "tok-1",
			Admin: models.Admin{ID: 1, Name: "Admin", Email: "admin@castpro.com"},
		})
	})

	s, err := c.Login(context.Background(), "admin@castpro.com", "right")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", s.Token)
	assert.Equal(t, "admin@castpro.com", s.Admin.Email)
}

func TestDo_Unauthorized_InvokesHandlerAndStillFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthenticated."})
	})

	evicted := false
	c.SetUnauthorizedHandler(func() { evicted = true })

	_, err := c.ListApplications(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, evicted, "401 must trigger the unauthorized handler")
	assert.Equal(t, "Unauthenticated.", ErrorMessage(err))
}

func TestDo_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "No query results"})
	})

	_, err := c.GetCastingCall(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDo_ValidationErrorCarriesFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "The title field is required.",
			"errors":  map[string][]string{"title": {"The title field is required."}},
		})
	})

	_, err := c.CreateCastingCall(context.Background(), models.CastingCallInput{})
	require.ErrorIs(t, err, ErrValidation)

	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "The title field is required.", serr.Message)
	assert.Contains(t, serr.Fields, "title")
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewRESTClient(url+"/api", time.Second, testLogger())
	_, err := c.ListCastingCalls(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSetApplicationStatus_WireShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/admin/applications/42/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "rejected", body["status"])

		_ = json.NewEncoder(w).Encode(models.CastingApplication{ID: 42, Status: models.StatusRejected})
	})

	app, err := c.Reject(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, app.Status)
}

func TestDeleteCastingCall_WireShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/admin/casting-calls/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteCastingCall(context.Background(), 7))
}

func TestStatusError_MessageFallback(t *testing.T) {
	err := &StatusError{Status: 500}
	assert.Equal(t, "backend responded 500", err.Error())
	assert.Nil(t, err.Unwrap())
}
