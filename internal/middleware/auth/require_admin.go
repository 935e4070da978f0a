package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hearthglow/storefront/internal/logging"
	"github.com/hearthglow/storefront/internal/models"
	"github.com/hearthglow/storefront/internal/session"
)

const PrincipalKey = "principal"

type Middleware struct {
	Sessions *session.Service
}

// RequireAdmin rejects the request unless the session resolves to an admin.
// The admin UI keys its redirect-to-login behavior off the exact 401 body.
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context())

		principal, err := m.Sessions.Resolve(c)
		if err != nil {
			l.Error("session_resolve_failed", "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}
		if principal == nil || principal.Role != models.RoleAdmin {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		c.Set(PrincipalKey, principal)
		return next(c)
	}
}

// FromContext returns the principal a guard placed in the echo context.
func FromContext(c echo.Context) (*session.Principal, bool) {
	p, ok := c.Get(PrincipalKey).(*session.Principal)
	return p, ok
}
