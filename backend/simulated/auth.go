package simulated

import (
	"context"
	"net/http"
	"time"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Tokens issued by the simulated backend are real signed JWTs so a
// persisted token can be validated across process restarts, same as
// against the live backend. The secret is fixed; nothing here is a
// security boundary.
var tokenSecret = []byte("deadtood-simulated-backend")

const tokenLifetime = time.Hour

type AuthService struct {
	store *store
}

func (a *AuthService) Login(ctx context.Context, credentials domain.LoginRequest) (domain.AuthResponse, error) {
	if err := a.store.wait(ctx, authDelay); err != nil {
		return domain.AuthResponse{}, err
	}

	a.store.mu.RLock()
	acct, ok := a.store.accounts[credentials.Email]
	a.store.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword([]byte(acct.passwordHash), []byte(credentials.Password)) != nil {
		return domain.AuthResponse{}, &apiclient.Error{
			Message:    "Invalid email or password",
			StatusCode: http.StatusUnauthorized,
		}
	}

	token, err := a.issueToken(acct.user)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{Token: token, User: acct.user}, nil
}

func (a *AuthService) Register(ctx context.Context, data domain.RegisterRequest) (domain.AuthResponse, error) {
	if err := a.store.wait(ctx, authDelay); err != nil {
		return domain.AuthResponse{}, err
	}

	a.store.mu.Lock()
	if _, exists := a.store.accounts[data.Email]; exists {
		a.store.mu.Unlock()
		return domain.AuthResponse{}, &apiclient.Error{
			Message:    "Email already registered",
			StatusCode: http.StatusConflict,
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		a.store.mu.Unlock()
		return domain.AuthResponse{}, err
	}

	now := a.store.nowTime()
	user := domain.User{
		ID:        uuid.New().String(),
		Email:     data.Email,
		Name:      data.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.store.accounts[data.Email] = &account{user: user, passwordHash: string(hash)}
	a.store.mu.Unlock()

	token, err := a.issueToken(user)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{Token: token, User: user}, nil
}

func (a *AuthService) Logout(ctx context.Context) error {
	return a.store.wait(ctx, readDelay)
}

// GetCurrentUser validates the bearer token the transport currently
// holds, mirroring the live backend's GET /users/me.
func (a *AuthService) GetCurrentUser(ctx context.Context) (domain.User, error) {
	if err := a.store.wait(ctx, listDelay); err != nil {
		return domain.User{}, err
	}

	user, err := a.currentUser()
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (a *AuthService) RefreshToken(ctx context.Context) (domain.AuthResponse, error) {
	if err := a.store.wait(ctx, listDelay); err != nil {
		return domain.AuthResponse{}, err
	}

	user, err := a.currentUser()
	if err != nil {
		return domain.AuthResponse{}, err
	}
	token, err := a.issueToken(user)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{Token: token, User: user}, nil
}

func (a *AuthService) issueToken(user domain.User) (string, error) {
	now := a.store.nowTime()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tokenSecret)
}

func (a *AuthService) currentUser() (domain.User, error) {
	unauthorized := &apiclient.Error{
		Message:    "Invalid or expired token",
		StatusCode: http.StatusUnauthorized,
	}

	if a.store.tokenFn == nil {
		return domain.User{}, unauthorized
	}
	raw := a.store.tokenFn()
	if raw == "" {
		return domain.User{}, unauthorized
	}

	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return tokenSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.store.nowTime))
	if err != nil || !parsed.Valid {
		return domain.User{}, unauthorized
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, unauthorized
	}
	email, _ := claims["email"].(string)

	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	acct, ok := a.store.accounts[email]
	if !ok {
		return domain.User{}, unauthorized
	}
	return acct.user, nil
}
