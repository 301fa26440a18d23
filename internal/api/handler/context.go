package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/api/middleware"
	"github.com/fastbite/ordering-api/internal/core/domain"
)

// errorResponse mirrors the envelope produced by the central error handler.
// Declared here so the generated API docs can reference it.
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

// ctxPrincipal extracts the Principal injected by the Auth middleware.
// Its absence on a protected route means the middleware was skipped, which
// is treated as an unauthenticated request, never as an open door.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}

// bind decodes the request payload into req and runs validation. All
// handlers go through here so malformed payloads and rule violations fail
// the same way everywhere.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
