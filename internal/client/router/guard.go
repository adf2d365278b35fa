package router

import (
	"context"
	"net/url"

	"github.com/imarchenko/stockroom/internal/logging"
)

// Sessions is the view of session state the guards need.
type Sessions interface {
	IsLoggedIn() bool
	IsTokenExpired() bool
	HasAnyRole(roles ...string) bool
	Logout(ctx context.Context) error
}

// Decision is the outcome of a single guard check.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(redirectTo string) Decision {
	return Decision{RedirectTo: redirectTo}
}

// LoginRedirect builds the login destination carrying the originally
// requested path, so it can be resumed after a successful login.
func LoginRedirect(target string) string {
	q := url.Values{}
	q.Set("returnUrl", target)
	return PathLogin + "?" + q.Encode()
}

// AccessDeniedRedirect builds the access-denied destination, preserving the
// original target for diagnosis.
func AccessDeniedRedirect(target string) string {
	q := url.Values{}
	q.Set("from", target)
	return PathAccessDenied + "?" + q.Encode()
}

// Guard is a synchronous gate evaluated before a navigation proceeds.
type Guard interface {
	Check(ctx context.Context, route *Route, target string) Decision
}

// AuthGuard gates any route requiring a session. Side-effect-free on the
// allow path; its one side effect is the forced logout when the stored
// token turns out to be expired.
type AuthGuard struct {
	sessions Sessions
	log      logging.Logger
}

func NewAuthGuard(sessions Sessions, log logging.Logger) *AuthGuard {
	return &AuthGuard{sessions: sessions, log: log.With("guard", "auth")}
}

func (g *AuthGuard) Check(ctx context.Context, route *Route, target string) Decision {
	if !route.Access.RequiresAuth {
		return allow()
	}

	if !g.sessions.IsLoggedIn() {
		g.log.Debug(ctx, "not logged in, redirecting to login", "target", target)
		return deny(LoginRedirect(target))
	}

	if g.sessions.IsTokenExpired() {
		g.log.Info(ctx, "token expired, ending session", "target", target)
		_ = g.sessions.Logout(ctx)
		return deny(LoginRedirect(target))
	}

	return allow()
}

// RoleGuard gates routes requiring specific roles. It runs only after the
// AuthGuard allowed the navigation and never mutates session state. A denial
// redirects to the access-denied screen, not to login: the user is
// authenticated, just unauthorized.
type RoleGuard struct {
	sessions Sessions
	log      logging.Logger
}

func NewRoleGuard(sessions Sessions, log logging.Logger) *RoleGuard {
	return &RoleGuard{sessions: sessions, log: log.With("guard", "role")}
}

func (g *RoleGuard) Check(ctx context.Context, route *Route, target string) Decision {
	if len(route.Access.RequiredRoles) == 0 {
		return allow()
	}

	if g.sessions.HasAnyRole(route.Access.RequiredRoles...) {
		return allow()
	}

	g.log.Warn(ctx, "missing required role", "target", target, "required", route.Access.RequiredRoles)
	return deny(AccessDeniedRedirect(target))
}
