package ports

import (
	"context"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// AuthService verifies credentials and issues access tokens.
type AuthService interface {
	// Login authenticates a regular account by email and password.
	Login(ctx context.Context, email, password string) (string, *domain.Principal, error)
	// AdminLogin authenticates an account and additionally requires the
	// admin role. The password is compared before the role so the endpoint
	// cannot be used to probe which accounts are admins.
	AdminLogin(ctx context.Context, email, password string) (string, *domain.Principal, error)
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// RegisterUserInput carries the fields for account creation. Role is set by
// the service, never by the caller.
type RegisterUserInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
}

// UpdateUserInput carries a partial account update. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Password    *string
	PhoneNumber *string
	Address     *string
}

// UserService manages accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	RegisterAdmin(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
