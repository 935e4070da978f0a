package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hearthglow/storefront/internal/logging"
	"github.com/hearthglow/storefront/internal/models"
	"github.com/hearthglow/storefront/internal/session"
)

type AuthHandler struct {
	DB       *gorm.DB
	Sessions *session.Service
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	var user models.User
	if err := h.DB.WithContext(ctx).
		Where("email = ?", strings.ToLower(req.Email)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid email or password"})
		}
		l.Error("login_failed", "status", 500, "error", err)
		return internalError(c)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid email or password"})
	}

	token, exp, err := h.Sessions.Issue(&user)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return internalError(c)
	}

	c.SetCookie(session.CreateCookie(session.CookieName, token, "/", exp))

	return c.JSON(http.StatusOK, echo.Map{
		"user": session.Principal{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
		},
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if err := h.Sessions.Revoke(cookie.Value); err != nil {
			l.Warn("logout_revoke_failed", "error", err)
		}
	}

	expired := time.Now().Add(-1 * time.Hour)
	c.SetCookie(session.CreateCookie(session.CookieName, "", "/", expired))

	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// GetSession reports the caller's principal, or a null user when no valid
// session exists. The admin UI polls this on load.
func (h *AuthHandler) GetSession(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.get_session")

	principal, err := h.Sessions.Resolve(c)
	if err != nil {
		l.Error("get_session_failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": principal})
}
