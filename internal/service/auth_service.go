package service

import (
	"context"
	"errors"
	"time"

	"github.com/verumrexo/tip-harmony/internal/config"
	"github.com/verumrexo/tip-harmony/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService implements the shared-PIN gate: one bcrypt-hashed PIN for
// the whole team, exchanged for a short-lived JWT session. There are no
// user accounts.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.PINHash == "" {
		return nil, errors.New("PIN is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PINHash), []byte(req.PIN)); err != nil {
		return nil, errors.New("invalid PIN")
	}

	now := time.Now()
	lifetime := time.Duration(s.cfg.SessionHours) * time.Hour
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "staff",
		"iat":  now.Unix(),
		"exp":  now.Add(lifetime).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.SessionHours * 3600,
	}, nil
}
