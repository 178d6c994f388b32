package service

import (
	"context"
	"testing"

	"github.com/verumrexo/tip-harmony/internal/config"
	"github.com/verumrexo/tip-harmony/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, pin string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		PINHash:      string(hash),
		JWTSecret:    "test-secret",
		SessionHours: 12,
	}
}

func TestLoginIssuesSessionToken(t *testing.T) {
	cfg := authConfig(t, "4271")
	svc := NewAuthService(cfg)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "4271"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 12*3600, resp.ExpiresIn)

	// The token must verify against the same secret and carry the shared role.
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "staff", claims["role"])
}

func TestLoginRejectsWrongPIN(t *testing.T) {
	svc := NewAuthService(authConfig(t, "4271"))

	_, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "0000"})
	assert.Error(t, err)
}

func TestLoginRejectsWhenUnconfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{JWTSecret: "x", SessionHours: 1})

	_, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "4271"})
	assert.Error(t, err)
}
