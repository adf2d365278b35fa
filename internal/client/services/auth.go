package services

import (
	"context"
	"fmt"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/models"
	"github.com/imarchenko/stockroom/internal/client/session"
	"github.com/imarchenko/stockroom/internal/logging"
)

// AuthService performs the credential exchange with the backend.
//
// Contract:
//   - SignIn: exchange username/password for a session; the error, when
//     non-nil, carries a single user-displayable message and no global
//     session mutation has happened.
//   - SignUp: create a new account; validation faults surface the backend's
//     message.
//
// SignIn satisfies the session store's Backend interface.
type AuthService interface {
	SignIn(ctx context.Context, username, password string) (*session.Session, error)
	SignUp(ctx context.Context, username, email, password string, roles []string) error
}

type authService struct {
	api      *api.Client
	authBase string
	log      logging.Logger
}

// NewAuthService constructs an AuthService calling the endpoint family
// rooted at authBase (e.g. "/api/auth").
func NewAuthService(client *api.Client, authBase string, log logging.Logger) AuthService {
	return &authService{api: client, authBase: authBase, log: log.With("component", "auth")}
}

func (a *authService) SignIn(ctx context.Context, username, password string) (*session.Session, error) {
	var resp models.SignInResponse
	err := a.api.Post(ctx, a.authBase+"/signin",
		models.SignInRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, fmt.Errorf("signin response carries no access token")
	}

	return &session.Session{
		ID:          resp.ID,
		Username:    resp.Username,
		Email:       resp.Email,
		Roles:       resp.Roles,
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}, nil
}

func (a *authService) SignUp(ctx context.Context, username, email, password string, roles []string) error {
	if roles == nil {
		roles = []string{}
	}
	return a.api.Post(ctx, a.authBase+"/signup", models.SignUpRequest{
		Username: username,
		Email:    email,
		Password: password,
		Roles:    roles,
	}, nil)
}
