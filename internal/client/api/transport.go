package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token; "" means none.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to the TokenSource interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// authTransport attaches the bearer token to every outbound request except
// those targeting the credential-issuing endpoint family. When no token
// exists the request passes through unmodified: downstream authorization
// rejects it and the fault handler recovers. Never fails, never mutates
// session state.
type authTransport struct {
	base     http.RoundTripper
	tokens   TokenSource
	authBase string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("X-Request-Id", uuid.NewString())

	if !strings.HasPrefix(out.URL.Path, t.authBase) {
		if tok := t.tokens.Token(); tok != "" {
			out.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	return t.base.RoundTrip(out)
}
