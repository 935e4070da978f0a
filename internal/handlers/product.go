package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/hearthglow/storefront/internal/logging"
	"github.com/hearthglow/storefront/internal/models"
)

type ProductHandler struct {
	DB *gorm.DB
}

// GetProducts lists the catalog, optionally filtered. A category outside
// {soap, candle} is ignored rather than rejected. Free-text search matches
// name or short description, case-insensitively.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	q := h.DB.WithContext(ctx).Model(&models.Product{})

	category := c.QueryParam("category")
	if category == models.CategorySoap || category == models.CategoryCandle {
		q = q.Where("category = ?", category)
	}

	if search := c.QueryParam("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(short_desc) LIKE ?", pattern, pattern)
	}

	var products []models.Product
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		l.Error("get_products_failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product_by_slug")

	slug := c.Param("slug")

	var product models.Product
	if err := h.DB.WithContext(ctx).Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		l.Error("get_product_by_slug_failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, product)
}
