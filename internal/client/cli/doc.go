// Package cli is the interactive inventory console: a REPL whose "open"
// command navigates between screens the way a browser navigates routes.
// Protected screens are gated by the auth and role guards; screens issue
// their backend calls through the authenticated API client.
package cli
