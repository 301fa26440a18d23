package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// AuthHandler handles login and account registration.
type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	FirstName   string `json:"first_name"  validate:"required,min=2,max=50"`
	LastName    string `json:"last_name"   validate:"required,min=2,max=50"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=5,max=100"`
	PhoneNumber string `json:"phonenumber" validate:"omitempty,min=7,max=20"`
	Address     string `json:"address"     validate:"required,min=5,max=100,address"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  *domain.Principal `json:"user"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// Login authenticates a customer account and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/auth/user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, principal, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: principal})
}

// AdminLogin authenticates an account and additionally requires the admin
// role.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, principal, err := h.authService.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: principal})
}

// Signup registers a customer account. The role is always "user"; admin
// accounts are created through the admin-gated route.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/users [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	return h.register(c, false)
}

// AdminSignup registers an admin account. Admin only.
//
// @Summary      Register a new admin account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/v1/users/admin [post]
func (h *AuthHandler) AdminSignup(c echo.Context) error {
	return h.register(c, true)
}

func (h *AuthHandler) register(c echo.Context, admin bool) error {
	var req signupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := ports.RegisterUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	var (
		user *domain.User
		err  error
	)
	if admin {
		user, err = h.userService.RegisterAdmin(c.Request().Context(), input)
	} else {
		user, err = h.userService.Register(c.Request().Context(), input)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{Message: "User created", User: user})
}
