package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body %q: %v", rec.Body.String(), err)
	}
	return rec, resp
}

func TestErrorHandler_AuthMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{domain.ErrInvalidToken, http.StatusForbidden, "invalid token"},
		{domain.ErrForbidden, http.StatusForbidden, "Forbidden"},
	}

	for _, tc := range cases {
		rec, resp := handle(t, tc.err)
		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		if resp.Error.Message != tc.message || resp.Error.Status != tc.status {
			t.Fatalf("%v: unexpected body %+v", tc.err, resp.Error)
		}
	}
}

func TestErrorHandler_NotFoundMapping(t *testing.T) {
	cases := []struct {
		err     error
		message string
	}{
		{domain.ErrUserNotFound, "User not found"},
		{domain.ErrProductNotFound, "Product not found"},
		{domain.ErrOrderNotFound, "Order not found"},
		{domain.ErrCouponNotFound, "Coupon not found"},
	}

	for _, tc := range cases {
		rec, resp := handle(t, tc.err)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%v: expected 404, got %d", tc.err, rec.Code)
		}
		if resp.Error.Message != tc.message {
			t.Fatalf("%v: unexpected message %q", tc.err, resp.Error.Message)
		}
	}
}

func TestErrorHandler_EmailTaken(t *testing.T) {
	rec, resp := handle(t, domain.ErrEmailTaken)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp.Error.Message != "Email is already in use" {
		t.Fatalf("unexpected message %q", resp.Error.Message)
	}
}

func TestErrorHandler_WrappedSentinel(t *testing.T) {
	rec, _ := handle(t, fmt.Errorf("find user: %w", domain.ErrUserNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped sentinel, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, resp := handle(t, echo.NewHTTPError(http.StatusBadRequest, "name: is required"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp.Error.Message != "name: is required" {
		t.Fatalf("unexpected message %q", resp.Error.Message)
	}
}

// Storage and other internal failures must never leak their text.
func TestErrorHandler_InternalErrorIsOpaque(t *testing.T) {
	rec, resp := handle(t, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp.Error.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp.Error.Message)
	}
}
