// Package api is the HTTP client for the inventory backend.
//
// Every outbound call runs through a fixed pipeline: the request
// authenticator (a RoundTripper decorator that attaches the bearer token),
// the transport, and the response fault handler (which classifies failures
// and performs the global recovery for authentication and authorization
// faults). Calls to the credential-issuing endpoints are exempt from both
// the bearer header and the global recovery.
package api
