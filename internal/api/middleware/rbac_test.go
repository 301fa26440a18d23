package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

func requestContext(e *echo.Echo, paramName, paramValue string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	return c
}

func TestRequireRole_Allowed(t *testing.T) {
	e := echo.New()
	c := requestContext(e, "", "")
	SetPrincipal(c, domain.Principal{UserID: 1, Role: domain.RoleAdmin})

	called := false
	handler := RequireRole("admin")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	e := echo.New()
	c := requestContext(e, "", "")
	SetPrincipal(c, domain.Principal{UserID: 2, Role: domain.RoleUser})

	handler := RequireRole("admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	e := echo.New()
	c := requestContext(e, "", "")

	handler := RequireRole("admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRequireOwnerOrRole_Owner(t *testing.T) {
	e := echo.New()
	c := requestContext(e, "id", "42")
	SetPrincipal(c, domain.Principal{UserID: 42, Role: domain.RoleUser})

	called := false
	handler := RequireOwnerOrRole("id", "admin")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireOwnerOrRole_Admin(t *testing.T) {
	e := echo.New()
	c := requestContext(e, "id", "42")
	SetPrincipal(c, domain.Principal{UserID: 1, Role: domain.RoleAdmin})

	called := false
	handler := RequireOwnerOrRole("id", "admin")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireOwnerOrRole_Stranger(t *testing.T) {
	e := echo.New()
	c := requestContext(e, "id", "42")
	SetPrincipal(c, domain.Principal{UserID: 7, Role: domain.RoleUser})

	handler := RequireOwnerOrRole("id", "admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireOwnerOrRole_NonNumericParam(t *testing.T) {
	e := echo.New()
	c := requestContext(e, "id", "abc")
	SetPrincipal(c, domain.Principal{UserID: 7, Role: domain.RoleUser})

	handler := RequireOwnerOrRole("id", "admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
