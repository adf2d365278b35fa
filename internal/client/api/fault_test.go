package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		err    error
		want   Kind
	}{
		{name: "transport error", err: errors.New("dial tcp: refused"), want: KindNetwork},
		{name: "401", status: http.StatusUnauthorized, want: KindUnauthenticated},
		{name: "403", status: http.StatusForbidden, want: KindForbidden},
		{name: "404", status: http.StatusNotFound, want: KindNotFound},
		{name: "400", status: http.StatusBadRequest, want: KindClient},
		{name: "422", status: http.StatusUnprocessableEntity, want: KindClient},
		{name: "500", status: http.StatusInternalServerError, want: KindServer},
		{name: "503", status: http.StatusServiceUnavailable, want: KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Classify("/api/products", tt.status, nil, tt.err)
			assert.Equal(t, tt.want, f.Kind)
			assert.NotEmpty(t, f.Message)
		})
	}
}

func TestClassify_MessagePreference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "plain text payload", body: "product name already taken", want: "product name already taken"},
		{name: "json string payload", body: `"quantity must be positive"`, want: "quantity must be positive"},
		{name: "message field", body: `{"message":"validation failed","error":"ignored"}`, want: "validation failed"},
		{name: "error field", body: `{"error":"bad request"}`, want: "bad request"},
		{name: "empty body falls back to default", body: "", want: "Bad Request"},
		{name: "unrecognized json falls back to default", body: `{"detail":"x"}`, want: "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Classify("/api/products", http.StatusBadRequest, []byte(tt.body), nil)
			assert.Equal(t, tt.want, f.Message)
		})
	}
}

func TestClassify_DefaultMessages(t *testing.T) {
	t.Parallel()

	f := Classify("/api/products", 0, nil, errors.New("refused"))
	assert.Equal(t, "Unable to connect to server. Please check your connection.", f.Message)

	f = Classify("/api/products", http.StatusUnauthorized, nil, nil)
	assert.Equal(t, "Unauthorized access. Please login again.", f.Message)

	f = Classify("/api/products", http.StatusForbidden, nil, nil)
	assert.Equal(t, "Access denied. You do not have permission to access this resource.", f.Message)

	f = Classify("/api/products", http.StatusNotFound, nil, nil)
	assert.Equal(t, "The requested resource was not found.", f.Message)

	f = Classify("/api/products", http.StatusBadGateway, nil, nil)
	assert.Equal(t, "Server error. Please try again later.", f.Message)
}

func TestHandler_SideEffects(t *testing.T) {
	tests := []struct {
		name        string
		fault       *Fault
		wantUnauth  bool
		wantForbid  bool
	}{
		{
			name:       "unauthenticated triggers logout hook",
			fault:      &Fault{Kind: KindUnauthenticated, Path: "/api/products"},
			wantUnauth: true,
		},
		{
			name:       "forbidden triggers redirect hook",
			fault:      &Fault{Kind: KindForbidden, Path: "/api/admin/users"},
			wantForbid: true,
		},
		{
			name:  "not found stays local",
			fault: &Fault{Kind: KindNotFound, Path: "/api/products/99"},
		},
		{
			name:  "server fault stays local",
			fault: &Fault{Kind: KindServer, Path: "/api/products"},
		},
		{
			name:  "unauthenticated from signin is exempt",
			fault: &Fault{Kind: KindUnauthenticated, Path: "/api/auth/signin"},
		},
		{
			name:  "forbidden from signup is exempt",
			fault: &Fault{Kind: KindForbidden, Path: "/api/auth/signup"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var unauth, forbid bool
			h := &Handler{
				AuthBase:          "/api/auth",
				OnUnauthenticated: func(context.Context) { unauth = true },
				OnForbidden:       func(context.Context) { forbid = true },
			}

			h.Handle(context.Background(), tt.fault)

			assert.Equal(t, tt.wantUnauth, unauth)
			assert.Equal(t, tt.wantForbid, forbid)
		})
	}
}

func TestHandler_NilHooksDoNotPanic(t *testing.T) {
	h := &Handler{AuthBase: "/api/auth"}
	h.Handle(context.Background(), &Fault{Kind: KindUnauthenticated, Path: "/api/products"})
	h.Handle(context.Background(), &Fault{Kind: KindForbidden, Path: "/api/products"})
}
