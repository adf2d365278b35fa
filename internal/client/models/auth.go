package models

// SignInRequest is the body of POST <auth-base>/signin.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResponse is the backend's successful signin payload.
type SignInResponse struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
}

// SignUpRequest is the body of POST <auth-base>/signup.
type SignUpRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}
