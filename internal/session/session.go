package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/hearthglow/storefront/internal/models"
)

const (
	CookieName = "session_token"
	Lifetime   = 30 * 24 * time.Hour
)

// Principal is the authenticated caller resolved from a session cookie.
type Principal struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type Service struct {
	DB     *gorm.DB
	Secret []byte
}

func CreateCookie(name string, value string, path string, exp_time time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp_time,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}

	return cookie
}

// Issue signs a session token for the user, persists its jti for revocation
// and returns the raw token string.
func (s *Service) Issue(user *models.User) (string, time.Time, error) {
	exp := time.Now().Add(Lifetime)
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"jti":  jti,
		"exp":  exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := t.SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, err
	}

	row := models.Session{
		Token:     jti,
		UserID:    user.ID,
		ExpiresAt: exp,
		Revoked:   false,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return "", time.Time{}, fmt.Errorf("db error: %w", err)
	}

	return raw, exp, nil
}

// Resolve returns the principal for the request's session cookie, or nil when
// no valid session exists. Only storage failures are reported as errors.
func (s *Service) Resolve(c echo.Context) (*Principal, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}

	t, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !t.Valid {
		return nil, nil
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil
	}
	jti, ok := claims["jti"].(string)
	if !ok {
		return nil, nil
	}

	var stored models.Session
	if err := s.DB.Where("token = ?", jti).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, nil
	}

	var user models.User
	if err := s.DB.First(&user, stored.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &Principal{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}

// Revoke marks the session row behind the cookie's jti as revoked.
func (s *Service) Revoke(rawToken string) error {
	t, _, err := jwt.NewParser().ParseUnverified(rawToken, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("cannot parse token: %w", err)
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("cannot parse claims")
	}
	jti, ok := claims["jti"].(string)
	if !ok {
		return errors.New("token missing jti")
	}

	if err := s.DB.Model(&models.Session{}).
		Where("token = ?", jti).
		Update("revoked", true).Error; err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
