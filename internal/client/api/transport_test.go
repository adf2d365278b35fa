package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, tokens TokenSource, path string) http.Header {
	t.Helper()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: &authTransport{
		base:     http.DefaultTransport,
		tokens:   tokens,
		authBase: "/api/auth",
	}}

	resp, err := client.Get(srv.URL + path)
	require.NoError(t, err)
	resp.Body.Close()
	return got
}

func TestAuthTransport_AttachesBearerWhenTokenExists(t *testing.T) {
	h := roundTrip(t, TokenFunc(func() string { return "tok-1" }), "/api/products")
	assert.Equal(t, "Bearer tok-1", h.Get("Authorization"))
}

func TestAuthTransport_SkipsAuthEndpoints(t *testing.T) {
	h := roundTrip(t, TokenFunc(func() string { return "tok-1" }), "/api/auth/signin")
	assert.Empty(t, h.Get("Authorization"), "signin must never carry a bearer header")
}

func TestAuthTransport_PassesThroughWithoutToken(t *testing.T) {
	h := roundTrip(t, TokenFunc(func() string { return "" }), "/api/products")
	assert.Empty(t, h.Get("Authorization"))
}

func TestAuthTransport_StampsRequestID(t *testing.T) {
	h := roundTrip(t, TokenFunc(func() string { return "tok-1" }), "/api/products")
	assert.NotEmpty(t, h.Get("X-Request-Id"))
}

func TestAuthTransport_DoesNotMutateOriginalRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	tr := &authTransport{
		base:     http.DefaultTransport,
		tokens:   TokenFunc(func() string { return "tok-1" }),
		authBase: "/api/auth",
	}

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/products", nil)
	require.NoError(t, err)

	resp, err := tr.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("X-Request-Id"))
}
