package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fastbite/ordering-api/internal/api/metrics"
	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// AuthService implements credential verification and token issuing.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login authenticates a regular account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	principal, err := s.verify(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(principal)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues(principal.Role).Inc()
	s.logger.Info().Int64("user_id", principal.UserID).Str("role", principal.Role).Msg("login")
	return token, principal, nil
}

// AdminLogin authenticates an account and requires the admin role. The
// password is checked first: a caller without valid credentials learns
// nothing about the account's role.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	principal, err := s.verify(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	if principal.Role != domain.RoleAdmin {
		metrics.AuthFailuresTotal.WithLabelValues("role").Inc()
		return "", nil, domain.ErrForbidden
	}

	token, err := s.generateToken(principal)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues(principal.Role).Inc()
	s.logger.Info().Int64("user_id", principal.UserID).Msg("admin login")
	return token, principal, nil
}

func (s *AuthService) verify(ctx context.Context, email, password string) (*domain.Principal, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("unknown_email").Inc()
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthFailuresTotal.WithLabelValues("password").Inc()
		return nil, domain.ErrUnauthorized
	}

	return &domain.Principal{
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		Role:        user.Role,
	}, nil
}

func (s *AuthService) generateToken(p *domain.Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":     p.UserID,
		"first_name":  p.FirstName,
		"last_name":   p.LastName,
		"email":       p.Email,
		"phonenumber": p.PhoneNumber,
		"address":     p.Address,
		"role":        p.Role,
		"iat":         now.Unix(),
		"exp":         now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
