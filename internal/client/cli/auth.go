package cli

import (
	"context"
	"fmt"

	"github.com/imarchenko/stockroom/internal/client/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend. On
// success the navigation that was interrupted by the login redirect (the
// returnUrl of the current location) is resumed; without one, the user
// lands on the dashboard.
//
// The password byte slice is wiped before returning. A failed login prints
// the classified message and leaves any prior session untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if _, err := a.sessions.Login(ctx, username, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Login successful")

	target := a.nav.ReturnURL()
	if target == "" {
		target = "/user-dashboard"
	}
	return a.Open(ctx, target)
}

// Register prompts for account details and attempts to create a new
// account. On success it prints a confirmation; the user still has to log
// in afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.auth.SignUp(ctx, username, email, string(password), nil); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! You can now log in.")
	return nil
}

// Logout ends the session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout cleanup failed", "error", err)
	}
	return a.Open(ctx, router.PathLogin)
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(_ context.Context) error {
	sess := a.sessions.Current()
	if sess == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> roles=%v\n", sess.Username, sess.Email, sess.Roles)
	if a.sessions.IsTokenExpired() {
		fmt.Fprintln(a.out, "(token expired)")
	}
	return nil
}
