// Package router decides, per navigation, whether a screen may be entered.
//
// Navigation runs a two-stage pipeline with early exit: authenticate (is
// there a live session?), then authorize (does the session carry a required
// role?). A denied navigation redirects — to the login screen with the
// original target preserved as returnUrl, or to the access-denied screen.
package router
