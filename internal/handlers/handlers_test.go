package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hearthglow/storefront/internal/config"
	authmw "github.com/hearthglow/storefront/internal/middleware/auth"
	"github.com/hearthglow/storefront/internal/models"
	"github.com/hearthglow/storefront/internal/session"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	DB       *gorm.DB
	Sessions *session.Service
	MW       *authmw.Middleware

	Auth     *AuthHandler
	Admin    *AdminHandler
	Products *ProductHandler
	Orders   *OrderHandler
	Settings *SettingsHandler
	Sitemap  *SitemapHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Shared-cache memory DB so the pool's connections all see one database.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	sessions := &session.Service{DB: db, Secret: []byte("test-secret")}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		DB:       db,
		Sessions: sessions,
		MW:       &authmw.Middleware{Sessions: sessions},
		Auth:     &AuthHandler{DB: db, Sessions: sessions},
		Admin:    &AdminHandler{DB: db},
		Products: &ProductHandler{DB: db},
		Orders:   &OrderHandler{DB: db},
		Settings: &SettingsHandler{DB: db},
		Sitemap:  &SitemapHandler{DB: db, SiteURL: "https://shop.example.com"},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createUser(t *testing.T, email, password, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, env.DB.Create(user).Error)
	return user
}

func (env *testEnv) sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	token, _, err := env.Sessions.Issue(user)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token, Path: "/"}
}

func (env *testEnv) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	admin := env.createUser(t, "admin@example.com", "admin_password", models.RoleAdmin)
	return env.sessionCookie(t, admin)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
