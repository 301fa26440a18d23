package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"golang.org/x/crypto/bcrypt"

	"github.com/fastbite/ordering-api/internal/api/handler"
	"github.com/fastbite/ordering-api/internal/api/middleware"
	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
	"github.com/fastbite/ordering-api/internal/core/service"
)

const testSecret = "test-secret"

type stubCategoryService struct {
	created []string
}

func (s *stubCategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	s.created = append(s.created, name)
	return &domain.Category{ID: 1, Name: name}, nil
}

func (s *stubCategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return nil, domain.ErrCategoryNotFound
}

func (s *stubCategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: 1, Name: "pizzas"}}, nil
}

func (s *stubCategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	return &domain.Category{ID: id, Name: name}, nil
}

func (s *stubCategoryService) Delete(ctx context.Context, id int64) error {
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
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

type stubUserService struct{}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	return &domain.User{ID: 1, Email: input.Email, Role: domain.RoleUser}, nil
}

func (s *stubUserService) RegisterAdmin(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	return &domain.User{ID: 1, Email: input.Email, Role: domain.RoleAdmin}, nil
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

func (s *stubUserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return nil
}

// newTestServer wires the real middleware chain, validator and error handler
// around stub services, mirroring the production route setup.
func newTestServer(categories ports.CategoryService, users ports.UserService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	auth := middleware.Auth(testSecret)
	adminOnly := middleware.RequireRole("admin")
	ownerOrAdmin := middleware.RequireOwnerOrRole("id", "admin")

	categoryHandler := handler.NewCategoryHandler(categories)
	userHandler := handler.NewUserHandler(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"a@b.com": {ID: 7, Email: "a@b.com", PasswordHash: string(hash), Role: domain.RoleUser},
	}}
	authService := service.NewAuthService(repo, testSecret, time.Hour, zerolog.Nop())
	authHandler := handler.NewAuthHandler(authService, users)

	v1 := e.Group("/api/v1")
	v1.POST("/auth/user/login", authHandler.Login)
	v1.POST("/auth/admin/login", authHandler.AdminLogin)
	v1.POST("/categories", categoryHandler.Create, auth, adminOnly)
	v1.GET("/categories", categoryHandler.List)
	v1.PUT("/users/:id", userHandler.Update, auth, ownerOrAdmin)

	return e
}

func mintToken(t *testing.T, userID int64, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	return resp.Error.Message
}

func TestLogin_ReturnsTokenAndUser(t *testing.T) {
	e := newTestServer(&stubCategoryService{}, &stubUserService{})

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/user/login", "", `{"email":"a@b.com","password":"right"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string            `json:"token"`
		User  *domain.Principal `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("missing token")
	}
	if resp.User == nil || resp.User.UserID != 7 {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestAdminLogin_NonAdminAccount(t *testing.T) {
	e := newTestServer(&stubCategoryService{}, &stubUserService{})

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/admin/login", "", `{"email":"a@b.com","password":"right"}`)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Forbidden" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAdminRoute_NoToken(t *testing.T) {
	e := newTestServer(&stubCategoryService{}, &stubUserService{})

	rec := doJSON(e, http.MethodPost, "/api/v1/categories", "", `{"name":"pizzas"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Unauthorized" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAdminRoute_GarbageToken(t *testing.T) {
	e := newTestServer(&stubCategoryService{}, &stubUserService{})

	rec := doJSON(e, http.MethodPost, "/api/v1/categories", "not-a-jwt", `{"name":"pizzas"}`)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "invalid token" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAdminRoute_UserToken(t *testing.T) {
	stub := &stubCategoryService{}
	e := newTestServer(stub, &stubUserService{})

	rec := doJSON(e, http.MethodPost, "/api/v1/categories", mintToken(t, 7, "user"), `{"name":"pizzas"}`)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Forbidden" {
		t.Fatalf("unexpected message %q", msg)
	}
	if len(stub.created) != 0 {
		t.Fatalf("service called despite 403")
	}
}

func TestAdminRoute_AdminToken(t *testing.T) {
	stub := &stubCategoryService{}
	e := newTestServer(stub, &stubUserService{})

	rec := doJSON(e, http.MethodPost, "/api/v1/categories", mintToken(t, 1, "admin"), `{"name":"pizzas"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(stub.created) != 1 || stub.created[0] != "pizzas" {
		t.Fatalf("unexpected service calls: %v", stub.created)
	}
}

func TestAdminRoute_ValidationFailure(t *testing.T) {
	stub := &stubCategoryService{}
	e := newTestServer(stub, &stubUserService{})

	rec := doJSON(e, http.MethodPost, "/api/v1/categories", mintToken(t, 1, "admin"), `{"name":"x"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); !strings.Contains(msg, "name: must be at least 2 characters") {
		t.Fatalf("unexpected message %q", msg)
	}
	if len(stub.created) != 0 {
		t.Fatalf("service called despite validation failure")
	}
}

func TestPublicRoute_NoTokenNeeded(t *testing.T) {
	e := newTestServer(&stubCategoryService{}, &stubUserService{})

	rec := doJSON(e, http.MethodGet, "/api/v1/categories", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOwnerRoute_OwnAccount(t *testing.T) {
	e := newTestServer(&stubCategoryService{}, &stubUserService{})

	rec := doJSON(e, http.MethodPut, "/api/v1/users/7", mintToken(t, 7, "user"), `{"first_name":"Alice"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestOwnerRoute_OtherAccount(t *testing.T) {
	e := newTestServer(&stubCategoryService{}, &stubUserService{})

	rec := doJSON(e, http.MethodPut, "/api/v1/users/8", mintToken(t, 7, "user"), `{"first_name":"Alice"}`)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestOwnerRoute_AdminOnAnyAccount(t *testing.T) {
	e := newTestServer(&stubCategoryService{}, &stubUserService{})

	rec := doJSON(e, http.MethodPut, "/api/v1/users/8", mintToken(t, 1, "admin"), `{"first_name":"Alice"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
