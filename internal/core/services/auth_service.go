package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid access token")

// AuthService issues session tokens for a self-declared email. There is no
// credential check: identity only scopes votes and allow-lists.
type AuthService struct {
	userRepo   ports.UserRepository
	jwtSecret  []byte
	sessionTTL time.Duration
	clock      ports.Clock
	logger     *slog.Logger
}

func NewAuthService(userRepo ports.UserRepository, jwtSecret string, sessionTTL time.Duration, opts ...Option) *AuthService {
	o := buildOptions(opts)
	if jwtSecret == "" {
		o.logger.Warn("JWT_SECRET not set")
	}
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		clock:      o.clock,
		logger:     o.logger,
	}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *AuthService) StartSession(ctx context.Context, email, name string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return "", domain.ErrInvalidEmail
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		user = &domain.User{
			ID:        uuid.New(),
			Email:     email,
			Name:      strings.TrimSpace(name),
			CreatedAt: s.clock.Now(),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return "", fmt.Errorf("failed to create user: %w", err)
		}
		s.logger.Info("user created", "user_id", user.ID)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

func (s *AuthService) ParseAccessToken(token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject", ErrInvalidToken)
	}
	return userID, nil
}

func (s *AuthService) generateAccessToken(user *domain.User) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   now.Add(s.sessionTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
