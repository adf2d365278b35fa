package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/imarchenko/stockroom/internal/logging"
)

// Kind classifies a failed call by its origin signal.
type Kind int

const (
	// KindNetwork: the transport could not reach the backend at all.
	KindNetwork Kind = iota
	// KindUnauthenticated: the credential is missing, invalid or expired.
	KindUnauthenticated
	// KindForbidden: the credential is valid but insufficient.
	KindForbidden
	// KindNotFound: the target resource does not exist.
	KindNotFound
	// KindClient: the request was malformed (validation-type failures).
	KindClient
	// KindServer: the backend failed.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Fault is the classified outcome of a failed call. It implements error;
// the message is the single human-readable string shown to the user.
type Fault struct {
	Kind       Kind
	StatusCode int
	Path       string
	Message    string
}

func (f *Fault) Error() string {
	return f.Message
}

// Classify maps a transport error or a non-2xx response into a Fault.
// The message prefers, in order: a plain-string payload from the backend,
// a structured "message" field, a structured "error" field, then a generic
// per-kind default.
func Classify(path string, status int, body []byte, transportErr error) *Fault {
	if transportErr != nil {
		return &Fault{
			Kind:    KindNetwork,
			Path:    path,
			Message: "Unable to connect to server. Please check your connection.",
		}
	}

	f := &Fault{StatusCode: status, Path: path}

	switch {
	case status == http.StatusUnauthorized:
		f.Kind = KindUnauthenticated
		f.Message = "Unauthorized access. Please login again."
	case status == http.StatusForbidden:
		f.Kind = KindForbidden
		f.Message = "Access denied. You do not have permission to access this resource."
	case status == http.StatusNotFound:
		f.Kind = KindNotFound
		f.Message = "The requested resource was not found."
	case status >= 500:
		f.Kind = KindServer
		f.Message = "Server error. Please try again later."
	default:
		f.Kind = KindClient
		f.Message = http.StatusText(status)
		if f.Message == "" {
			f.Message = "Request failed."
		}
	}

	if msg := messageFromBody(body); msg != "" {
		f.Message = msg
	}

	return f
}

// messageFromBody extracts a human-readable message from a failure payload.
// Returns "" when the payload carries none.
func messageFromBody(body []byte) string {
	b := bytes.TrimSpace(body)
	if len(b) == 0 {
		return ""
	}

	// plain-text payload
	if !json.Valid(b) {
		return string(b)
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	return ""
}

// Handler performs the global recovery for classified faults: forced logout
// and redirect to login on an authentication failure, redirect to the
// access-denied destination on an authorization failure. Faults from the
// credential-issuing endpoints never trigger the global side effects, so a
// failed login cannot clear an unrelated, still-valid session.
type Handler struct {
	// AuthBase is the path prefix of the exempt endpoint family.
	AuthBase string

	// OnUnauthenticated and OnForbidden are wired by the application;
	// nil hooks are skipped.
	OnUnauthenticated func(ctx context.Context)
	OnForbidden       func(ctx context.Context)

	Log logging.Logger
}

// Handle runs the side effects appropriate to f. The caller still receives
// f afterwards, so local handling (stopping a spinner, showing the message)
// always happens.
func (h *Handler) Handle(ctx context.Context, f *Fault) {
	if h.AuthBase != "" && strings.HasPrefix(f.Path, h.AuthBase) {
		return
	}

	switch f.Kind {
	case KindUnauthenticated:
		if h.Log != nil {
			h.Log.Warn(ctx, "authentication failure, ending session", "path", f.Path)
		}
		if h.OnUnauthenticated != nil {
			h.OnUnauthenticated(ctx)
		}
	case KindForbidden:
		if h.Log != nil {
			h.Log.Warn(ctx, "authorization failure", "path", f.Path)
		}
		if h.OnForbidden != nil {
			h.OnForbidden(ctx)
		}
	}
}
