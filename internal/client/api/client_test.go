package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarchenko/stockroom/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type pipeline struct {
	client *Client
	unauth int
	forbid int
}

func newPipeline(t *testing.T, handler http.HandlerFunc, token string) *pipeline {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := &pipeline{}
	faults := &Handler{
		OnUnauthenticated: func(context.Context) { p.unauth++ },
		OnForbidden:       func(context.Context) { p.forbid++ },
		Log:               testLogger(),
	}

	p.client = New(Options{
		BaseURL:  srv.URL,
		AuthBase: "/api/auth",
		Timeout:  5 * time.Second,
	}, TokenFunc(func() string { return token }), faults, testLogger())

	return p
}

func TestClient_GetDecodesResponse(t *testing.T) {
	p := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"hammer","quantity":3}`))
	}, "tok-1")

	var out struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}
	require.NoError(t, p.client.Get(context.Background(), "/api/products/1", &out))
	assert.Equal(t, "hammer", out.Name)
	assert.Equal(t, 3, out.Quantity)
}

func TestClient_UnauthenticatedTriggersGlobalRecovery(t *testing.T) {
	p := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "stale-token")

	err := p.client.Get(context.Background(), "/api/products", nil)

	var f *Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindUnauthenticated, f.Kind)
	assert.Equal(t, 1, p.unauth, "401 must escalate to the logout hook")
	assert.Zero(t, p.forbid)
}

func TestClient_ForbiddenTriggersRedirectOnly(t *testing.T) {
	p := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, "tok-1")

	err := p.client.Get(context.Background(), "/api/admin/users", nil)

	var f *Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindForbidden, f.Kind)
	assert.Equal(t, 1, p.forbid)
	assert.Zero(t, p.unauth, "403 must not end the session")
}

func TestClient_SigninFailureStaysLocal(t *testing.T) {
	p := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid username or password."}`))
	}, "")

	err := p.client.Post(context.Background(), "/api/auth/signin",
		map[string]string{"username": "alice", "password": "wrong"}, nil)

	var f *Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindUnauthenticated, f.Kind)
	assert.Equal(t, "Invalid username or password.", f.Message)
	assert.Zero(t, p.unauth, "a failed login must not trigger the global logout")
}

func TestClient_NetworkFault(t *testing.T) {
	faults := &Handler{Log: testLogger()}
	c := New(Options{
		BaseURL:  "http://127.0.0.1:1", // nothing listens here
		AuthBase: "/api/auth",
		Timeout:  500 * time.Millisecond,
	}, TokenFunc(func() string { return "" }), faults, testLogger())

	err := c.Get(context.Background(), "/api/products", nil)

	var f *Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindNetwork, f.Kind)
}

func TestClient_FaultIsReturnedEvenAfterSideEffect(t *testing.T) {
	p := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "tok-1")

	err := p.client.Delete(context.Background(), "/api/products/5")
	require.Error(t, err, "the classified fault must reach the caller even when recovery ran")
	require.Equal(t, 1, p.unauth)
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	p := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42}`))
	}, "tok-1")

	var out struct {
		ID int64 `json:"id"`
	}
	in := map[string]any{"name": "hammer"}
	require.NoError(t, p.client.Post(context.Background(), "/api/products", in, &out))

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"name":"hammer"}`, string(gotBody))
	assert.Equal(t, int64(42), out.ID)
}

func TestClient_ErrorsMatchWithErrorsAs(t *testing.T) {
	p := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, "tok-1")

	err := p.client.Get(context.Background(), "/api/products/99", nil)

	var f *Fault
	require.True(t, errors.As(err, &f))
	assert.Equal(t, http.StatusNotFound, f.StatusCode)
	assert.Equal(t, "/api/products/99", f.Path)
}
