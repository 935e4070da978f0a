package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/hearthglow/storefront/internal/logging"
	authmw "github.com/hearthglow/storefront/internal/middleware/auth"
	"github.com/hearthglow/storefront/internal/models"
)

type AdminHandler struct {
	DB *gorm.DB
}

// The createdAt key is camelCase like the stats keys: the admin UI consumes
// this surface as-is.
type customerRow struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// logger tags admin reads with the acting principal the guard resolved.
func (h *AdminHandler) logger(c echo.Context, name string) *slog.Logger {
	l := logging.FromContext(c.Request().Context()).With("handler", name)
	if p, ok := authmw.FromContext(c); ok {
		l = l.With("admin", p.Email)
	}
	return l
}

// GetStats issues the four dashboard counters concurrently and combines them
// once all complete. Any sub-query failure fails the whole aggregate.
func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	l := h.logger(c, "admin.get_stats")

	var (
		totalProducts  int64
		totalOrders    int64
		totalRevenue   float64
		totalCustomers int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.DB.WithContext(gctx).Model(&models.Product{}).Count(&totalProducts).Error
	})
	g.Go(func() error {
		return h.DB.WithContext(gctx).Model(&models.Order{}).Count(&totalOrders).Error
	})
	g.Go(func() error {
		return h.DB.WithContext(gctx).Model(&models.Order{}).
			Select("COALESCE(SUM(total), 0)").Scan(&totalRevenue).Error
	})
	g.Go(func() error {
		return h.DB.WithContext(gctx).Model(&models.User{}).
			Where("role = ?", models.RoleCustomer).Count(&totalCustomers).Error
	})

	if err := g.Wait(); err != nil {
		l.Error("get_stats_failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"totalProducts":  totalProducts,
		"totalOrders":    totalOrders,
		"totalRevenue":   totalRevenue,
		"totalCustomers": totalCustomers,
	})
}

func (h *AdminHandler) GetCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := h.logger(c, "admin.get_customers")

	var customers []customerRow
	if err := h.DB.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", models.RoleCustomer).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		l.Error("get_customers_failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, customers)
}

func (h *AdminHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := h.logger(c, "admin.get_orders")

	var orders []models.Order
	if err := h.DB.WithContext(ctx).
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		l.Error("get_orders_failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, orders)
}
