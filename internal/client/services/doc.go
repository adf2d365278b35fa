// Package services contains the thin typed clients the console screens use
// to talk to the inventory backend. Every call rides the api.Client
// pipeline, so bearer credentials and fault recovery are uniform.
package services
