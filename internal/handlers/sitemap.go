package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/hearthglow/storefront/internal/logging"
	"github.com/hearthglow/storefront/internal/models"
	"github.com/hearthglow/storefront/internal/sitemap"
)

type SitemapHandler struct {
	DB      *gorm.DB
	SiteURL string
}

func (h *SitemapHandler) GetSitemap(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sitemap.get")

	var products []models.Product
	if err := h.DB.WithContext(ctx).
		Select("slug", "updated_at").
		Order("slug ASC").
		Find(&products).Error; err != nil {
		l.Error("sitemap_failed", "status", 500, "error", err)
		return internalError(c)
	}

	data, err := sitemap.Marshal(sitemap.Build(h.SiteURL, products))
	if err != nil {
		l.Error("sitemap_failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.Blob(http.StatusOK, "application/xml", data)
}
