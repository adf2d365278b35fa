// Package token inspects bearer tokens locally, without network access.
//
// The only question it answers is "has this token expired?". The payload is
// decoded without signature verification: the backend remains the authority
// on token validity, this package merely avoids sending calls that are
// certain to be rejected.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// now is a test seam for the wall clock.
var now = time.Now

// Expired reports whether tok's exp claim is at or before the current time,
// at second granularity.
//
// Fail-closed: a malformed token, an undecodable payload, or a missing exp
// claim all report expired. Never the other way around.
func Expired(tok string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return now().Unix() >= exp.Unix()
}
