package session

import "slices"

// Session is the record of the currently authenticated identity and its
// bearer token. The JSON layout matches the backend's signin response and
// the durable slot.
type Session struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
}

// HasRole reports whether the session carries the given role name.
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.Roles, role)
}

// HasAnyRole reports whether the session carries at least one of the given
// role names.
func (s *Session) HasAnyRole(roles ...string) bool {
	if s == nil {
		return false
	}
	for _, role := range roles {
		if slices.Contains(s.Roles, role) {
			return true
		}
	}
	return false
}
