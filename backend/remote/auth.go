package remote

import (
	"context"
	"encoding/json"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/domain"
	"github.com/pkg/errors"
)

type AuthService struct {
	client *apiclient.Client
}

func (a *AuthService) Login(ctx context.Context, credentials domain.LoginRequest) (domain.AuthResponse, error) {
	return a.authRequest(ctx, "/auth/login", credentials, "[AuthService.Login]")
}

func (a *AuthService) Register(ctx context.Context, data domain.RegisterRequest) (domain.AuthResponse, error) {
	return a.authRequest(ctx, "/auth/register", data, "[AuthService.Register]")
}

func (a *AuthService) Logout(ctx context.Context) error {
	return a.client.Post(ctx, "/auth/logout", nil, nil)
}

func (a *AuthService) GetCurrentUser(ctx context.Context) (domain.User, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, "/users/me", nil, &raw); err != nil {
		return domain.User{}, err
	}
	user, err := decode[wireUser](raw)
	if err != nil {
		return domain.User{}, err
	}
	return user.toDomain(), nil
}

func (a *AuthService) RefreshToken(ctx context.Context) (domain.AuthResponse, error) {
	return a.authRequest(ctx, "/auth/refresh", nil, "[AuthService.RefreshToken]")
}

// authRequest posts to an auth endpoint and decodes the {token, user}
// response. A success response missing either field is malformed and
// fatal to the operation; it is never retried.
func (a *AuthService) authRequest(ctx context.Context, endpoint string, body any, opName string) (domain.AuthResponse, error) {
	var raw json.RawMessage
	if err := a.client.Post(ctx, endpoint, body, &raw); err != nil {
		return domain.AuthResponse{}, err
	}

	resp, err := decode[wireAuthResponse](raw)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if resp.Token == "" {
		return domain.AuthResponse{}, errors.New(opName + " malformed response: missing token")
	}
	if resp.User == nil {
		return domain.AuthResponse{}, errors.New(opName + " malformed response: missing user")
	}

	return domain.AuthResponse{Token: resp.Token, User: resp.User.toDomain()}, nil
}
