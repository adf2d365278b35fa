package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testClient(t *testing.T, handler http.HandlerFunc, token string) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return api.New(api.Options{
		BaseURL:  srv.URL,
		AuthBase: "/api/auth",
		Timeout:  5 * time.Second,
	}, api.TokenFunc(func() string { return token }), &api.Handler{Log: testLogger()}, testLogger())
}

func TestSignIn_Success(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/signin", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "signin must not carry a bearer header")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 7, "username": "alice", "email": "alice@example.com",
			"roles": ["ROLE_USER"], "accessToken": "tok-123", "tokenType": "Bearer"
		}`))
	}, "")

	svc := NewAuthService(client, "/api/auth", testLogger())

	sess, err := svc.SignIn(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(7), sess.ID)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, []string{"ROLE_USER"}, sess.Roles)
	assert.Equal(t, "tok-123", sess.AccessToken)
	assert.Equal(t, "Bearer", sess.TokenType)
}

func TestSignIn_BadCredentialsSurfaceBackendMessage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid username or password."}`))
	}, "")

	svc := NewAuthService(client, "/api/auth", testLogger())

	_, err := svc.SignIn(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password.", err.Error())
}

func TestSignIn_ResponseWithoutTokenIsRejected(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "username": "alice"}`))
	}, "")

	svc := NewAuthService(client, "/api/auth", testLogger())

	_, err := svc.SignIn(context.Background(), "alice", "pw")
	require.Error(t, err)
}

func TestSignUp_SendsRolesArrayEvenWhenEmpty(t *testing.T) {
	var gotBody []byte
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/signup", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}, "")

	svc := NewAuthService(client, "/api/auth", testLogger())

	require.NoError(t, svc.SignUp(context.Background(), "bob", "bob@example.com", "pw", nil))
	assert.JSONEq(t,
		`{"username":"bob","email":"bob@example.com","password":"pw","roles":[]}`,
		string(gotBody))
}

func TestSignUp_ValidationFault(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Error: Username is already taken!"}`))
	}, "")

	svc := NewAuthService(client, "/api/auth", testLogger())

	err := svc.SignUp(context.Background(), "bob", "bob@example.com", "pw", nil)
	require.Error(t, err)
	assert.Equal(t, "Error: Username is already taken!", err.Error())
}
