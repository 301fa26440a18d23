package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fastbite/ordering-api/internal/core/domain"
)

// errorBody is the payload inside the error envelope.
type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// errorResponse is the canonical error envelope for all API errors:
// {"error": {"message": "...", "status": N}}.
type errorResponse struct {
	Error errorBody `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Translates the users.email unique violation to a fixed message so
//     storage error text never reaches a client.
//   - Logs unexpected errors internally and returns a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: errorBody{Message: msg, Status: code}})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, validation 400s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Auth pipeline errors.
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, "invalid token"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Email is already in use"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusBadRequest, err.Error()
	}

	// Missing entities.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrMealNotFound):
		return http.StatusNotFound, "Meal not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found"
	case errors.Is(err, domain.ErrTagNotFound):
		return http.StatusNotFound, "Tag not found"
	case errors.Is(err, domain.ErrCouponNotFound):
		return http.StatusNotFound, "Coupon not found"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, domain.ErrFeedbackNotFound):
		return http.StatusNotFound, "Feedback not found"
	case errors.Is(err, domain.ErrAnnouncementNotFound):
		return http.StatusNotFound, "Announcement not found"
	case errors.Is(err, domain.ErrDailyMenuNotFound):
		return http.StatusNotFound, "Daily menu entry not found"
	case errors.Is(err, domain.ErrLocationNotFound):
		return http.StatusNotFound, "Location not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
