package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/castpro/console/internal/client/models"
	"github.com/castpro/console/internal/logging"
)

// RESTClient implements Client over the backend's JSON REST surface.
//
// Every outgoing request carries Accept: application/json, an X-Request-ID,
// and — when the TokenSource yields one — an Authorization bearer header.
// Every response is inspected uniformly: a 401 first invokes the registered
// unauthorized handler (session clear, then forced navigation to login) and
// the error is still returned, so in-flight callers can stop their own
// loading state rather than assume the call resolves.
type RESTClient struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            logging.Logger
}

// NewRESTClient builds a gateway for the given API base URL, e.g.
// "http://localhost:8000/api". tokens may be nil until SetTokenSource is
// called during wiring.
func NewRESTClient(baseURL string, timeout time.Duration, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "gateway"),
	}
}

// BaseURL returns the configured API base URL (used to derive media URLs).
func (c *RESTClient) BaseURL() string {
	return c.baseURL
}

// SetTokenSource installs the credential supplier consulted on every request.
func (c *RESTClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// SetUnauthorizedHandler installs the single process-wide reaction to a 401.
// The handler must clear the session before forcing navigation; the gateway
// itself has no navigation or session dependency.
func (c *RESTClient) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

// errorBody is the backend's JSON error envelope. Laravel-style validation
// responses additionally carry a per-field errors map.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *RESTClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		serr := &StatusError{Status: resp.StatusCode, Message: eb.Message, Fields: eb.Errors}
		c.log.Warn(ctx, "backend error", "method", method, "path", path,
			"request_id", requestID, "status", resp.StatusCode, "message", eb.Message)

		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			// Session clear and forced navigation happen inside the handler,
			// in that order, before any caller sees the error.
			c.onUnauthorized()
		}
		return serr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	var s models.Session
	err := c.do(ctx, http.MethodPost, "/admin/login", loginRequest{Email: email, Password: password}, &s)
	return s, err
}

func (c *RESTClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/logout", nil, nil)
}

func (c *RESTClient) ListCastingCalls(ctx context.Context) ([]models.CastingCall, error) {
	var calls []models.CastingCall
	err := c.do(ctx, http.MethodGet, "/admin/casting-calls", nil, &calls)
	return calls, err
}

func (c *RESTClient) GetCastingCall(ctx context.Context, id int64) (models.CastingCall, error) {
	var call models.CastingCall
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/casting-calls/%d", id), nil, &call)
	return call, err
}

func (c *RESTClient) CreateCastingCall(ctx context.Context, in models.CastingCallInput) (models.CastingCall, error) {
	var call models.CastingCall
	err := c.do(ctx, http.MethodPost, "/admin/casting-calls", in, &call)
	return call, err
}

func (c *RESTClient) UpdateCastingCall(ctx context.Context, id int64, in models.CastingCallInput) (models.CastingCall, error) {
	var call models.CastingCall
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/casting-calls/%d", id), in, &call)
	return call, err
}

func (c *RESTClient) DeleteCastingCall(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/casting-calls/%d", id), nil, nil)
}

func (c *RESTClient) ListApplications(ctx context.Context) ([]models.CastingApplication, error) {
	var apps []models.CastingApplication
	err := c.do(ctx, http.MethodGet, "/admin/applications", nil, &apps)
	return apps, err
}

func (c *RESTClient) GetApplication(ctx context.Context, id int64) (models.CastingApplication, error) {
	var app models.CastingApplication
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/applications/%d", id), nil, &app)
	return app, err
}

type statusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

func (c *RESTClient) SetApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (models.CastingApplication, error) {
	var app models.CastingApplication
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/applications/%d/status", id), statusRequest{Status: status}, &app)
	return app, err
}

func (c *RESTClient) Shortlist(ctx context.Context, id int64) (models.CastingApplication, error) {
	return c.SetApplicationStatus(ctx, id, models.StatusShortlisted)
}

func (c *RESTClient) Hire(ctx context.Context, id int64) (models.CastingApplication, error) {
	return c.SetApplicationStatus(ctx, id, models.StatusHired)
}

func (c *RESTClient) Reject(ctx context.Context, id int64) (models.CastingApplication, error) {
	return c.SetApplicationStatus(ctx, id, models.StatusRejected)
}
