package simulated_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/backend/simulated"
	"github.com/deadtood/appcore/domain"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	sim := newBackend(t)

	t.Run("seeded credentials succeed", func(t *testing.T) {
		resp, err := sim.Auth.Login(ctx, domain.LoginRequest{
			Email:    simulated.SeedEmail,
			Password: simulated.SeedPassword,
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, simulated.SeedEmail, resp.User.Email)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, err := sim.Auth.Login(ctx, domain.LoginRequest{
			Email:    simulated.SeedEmail,
			Password: "nope",
		})
		require.Error(t, err)
		status, ok := apiclient.StatusCode(err)
		require.True(t, ok)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		_, err := sim.Auth.Login(ctx, domain.LoginRequest{
			Email:    "ghost@example.com",
			Password: simulated.SeedPassword,
		})
		require.Error(t, err)
		require.False(t, apiclient.IsNetwork(err))
		status, _ := apiclient.StatusCode(err)
		require.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	sim := newBackend(t)

	resp, err := sim.Auth.Register(ctx, domain.RegisterRequest{
		Email:    "new@example.com",
		Password: "hunter22",
		Name:     "New Student",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "new@example.com", resp.User.Email)
	require.Equal(t, "New Student", resp.User.Name)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := sim.Auth.Register(ctx, domain.RegisterRequest{
			Email:    "new@example.com",
			Password: "other",
		})
		require.Error(t, err)
		status, _ := apiclient.StatusCode(err)
		require.Equal(t, http.StatusConflict, status)
	})

	t.Run("registered account can log in", func(t *testing.T) {
		again, err := sim.Auth.Login(ctx, domain.LoginRequest{
			Email:    "new@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		require.Equal(t, "New Student", again.User.Name)
	})
}

func TestAuthService_TokenValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("issued token resolves the current user", func(t *testing.T) {
		var held string
		sim := simulated.New(
			simulated.WithLatency(0),
			simulated.WithTokenSource(func() string { return held }),
		)

		resp, err := sim.Auth.Login(ctx, domain.LoginRequest{
			Email:    simulated.SeedEmail,
			Password: simulated.SeedPassword,
		})
		require.NoError(t, err)
		held = resp.Token

		user, err := sim.Auth.GetCurrentUser(ctx)
		require.NoError(t, err)
		require.Equal(t, simulated.SeedEmail, user.Email)

		refreshed, err := sim.Auth.RefreshToken(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, refreshed.Token)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		sim := simulated.New(
			simulated.WithLatency(0),
			simulated.WithTokenSource(func() string { return "not-a-jwt" }),
		)

		_, err := sim.Auth.GetCurrentUser(ctx)
		require.Error(t, err)
		status, _ := apiclient.StatusCode(err)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("no token source is unauthorized", func(t *testing.T) {
		sim := simulated.New(simulated.WithLatency(0))
		_, err := sim.Auth.GetCurrentUser(ctx)
		require.Error(t, err)
		status, _ := apiclient.StatusCode(err)
		require.Equal(t, http.StatusUnauthorized, status)
	})
}
