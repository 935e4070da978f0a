package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/hearthglow/storefront/internal/models"
	"github.com/hearthglow/storefront/internal/sitemap"
)

func TestGetSitemap(t *testing.T) {
	env := newTestEnv(t)

	for _, slug := range []string{"a", "b"} {
		require.NoError(t, env.DB.Create(&models.Product{
			Slug: slug, Name: slug, ShortDesc: slug, Price: 1, Category: models.CategorySoap,
		}).Error)
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/sitemap.xml", nil)
	require.NoError(t, env.Sitemap.GetSitemap(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/xml")

	var set sitemap.URLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))

	// 8 static entries + 2 product entries
	require.Len(t, set.URLs, 10)
	require.Equal(t, "https://shop.example.com/", set.URLs[0].Loc)
	require.Equal(t, "1.0", set.URLs[0].Priority)

	var productEntries int
	for _, u := range set.URLs[1:] {
		if strings.Contains(u.Loc, "/products/") && u.LastMod != "" {
			productEntries++
			require.Equal(t, "0.7", u.Priority)
		} else {
			require.Equal(t, "0.8", u.Priority)
		}
	}
	require.Equal(t, 2, productEntries)
}
