package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/hearthglow/storefront/internal/events"
	"github.com/hearthglow/storefront/internal/logging"
	"github.com/hearthglow/storefront/internal/models"
)

type OrderHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

func (h *OrderHandler) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("event_publish_failed", "error", err)
	}
}

// TrackOrder looks up an order by reference and email. The email match is
// exact after lowercasing the input; the order id match is case-sensitive
// substring containment, so customers can enter a partial reference. The
// asymmetry is a preserved contract (see /orders/track in the API docs) and
// the substring check runs in Go so it does not depend on LIKE collation.
func (h *OrderHandler) TrackOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.track")

	orderID := c.QueryParam("orderId")
	email := c.QueryParam("email")
	if orderID == "" || email == "" {
		return badRequest(c, "orderId and email are required")
	}

	var orders []models.Order
	if err := h.DB.WithContext(ctx).
		Preload("Items.Product").
		Where("email = ?", strings.ToLower(email)).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		l.Error("track_order_failed", "status", 500, "error", err)
		return internalError(c)
	}

	for i := range orders {
		if strings.Contains(orders[i].ID, orderID) {
			h.publish(c, orders[i].ID, map[string]any{
				"type":    "order_tracked",
				"orderID": orders[i].ID,
				"at":      time.Now().UTC().Format(time.RFC3339),
			})
			return c.JSON(http.StatusOK, orders[i])
		}
	}

	return notFound(c, "Order not found")
}

// GetOrderBySession resolves a Stripe checkout session to the internal order
// id. Only the id leaves the handler: the caller is a just-completed checkout
// redirect and must not see other order data.
func (h *OrderHandler) GetOrderBySession(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_by_session")

	sessionID := c.Param("sessionId")

	var order models.Order
	if err := h.DB.WithContext(ctx).
		Select("id").
		Where("stripe_session_id = ?", sessionID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Order not found")
		}
		l.Error("get_order_by_session_failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, echo.Map{"orderId": order.ID})
}
