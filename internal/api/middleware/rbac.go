package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/api/metrics"
	"github.com/fastbite/ordering-api/internal/core/domain"
)

// RequireRole enforces role-based access control. The route must run behind
// Auth: a request with no attached Principal fails with 401, a Principal
// whose role is not in the allowed set fails with 403.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := CurrentPrincipal(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			if _, ok := allowed[p.Role]; !ok {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireOwnerOrRole allows a request through when the Principal holds one of
// the allowed roles OR when the numeric path parameter equals the Principal's
// own user id. This is the "owner-or-admin" gate used on self-service routes
// (a user may view, update, or delete their own account and read their own
// orders and feedback; admins may do so for anyone).
func RequireOwnerOrRole(param string, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := CurrentPrincipal(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			if _, ok := allowed[p.Role]; ok {
				return next(c)
			}

			targetID, err := strconv.ParseInt(c.Param(param), 10, 64)
			if err == nil && p.Owns(targetID) {
				return next(c)
			}

			metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
			return domain.ErrForbidden
		}
	}
}
