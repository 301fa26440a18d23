package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

type stubUserRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func testAccount(t *testing.T, role string) *domain.User {
	return &domain.User{
		ID:           7,
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "secret"),
		Role:         role,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "alice@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return testAccount(t, domain.RoleUser), nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour, zerolog.Nop())

	token, principal, err := svc.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if principal.UserID != 7 || principal.Role != domain.RoleUser {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["role"] != domain.RoleUser || claims["email"] != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("token has no expiry")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "secret")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return testAccount(t, domain.RoleUser), nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_AdminLogin_RejectsNonAdmin(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return testAccount(t, domain.RoleUser), nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour, zerolog.Nop())

	_, _, err := svc.AdminLogin(context.Background(), "alice@example.com", "secret")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// A wrong password on the admin endpoint must fail on the password, not the
// role, so it cannot be used to probe which accounts are admins.
func TestAuthService_AdminLogin_PasswordCheckedBeforeRole(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return testAccount(t, domain.RoleUser), nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour, zerolog.Nop())

	_, _, err := svc.AdminLogin(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_AdminLogin_Success(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return testAccount(t, domain.RoleAdmin), nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour, zerolog.Nop())

	token, principal, err := svc.AdminLogin(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if token == "" || principal.Role != domain.RoleAdmin {
		t.Fatalf("unexpected result: token=%q principal=%+v", token, principal)
	}
}
