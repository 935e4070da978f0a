package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hearthglow/storefront/internal/models"
)

func seedOrder(t *testing.T, env *testEnv) models.Order {
	t.Helper()
	product := models.Product{Slug: "lavender-soap", Name: "Lavender Soap", ShortDesc: "calming", Price: 8.5, Category: models.CategorySoap}
	require.NoError(t, env.DB.Create(&product).Error)

	order := models.Order{
		ID:              "XAB12Y",
		Email:           "buyer@example.com",
		StripeSessionID: "cs_test_123",
		Total:           17,
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: 2, Price: 8.5},
		},
	}
	require.NoError(t, env.DB.Create(&order).Error)
	return order
}

func TestTrackOrderRequiresParams(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders/track", nil)
	require.NoError(t, env.Orders.TrackOrder(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, c = env.doJSONRequest(http.MethodGet, "/api/v1/orders/track?orderId=AB12", nil)
	require.NoError(t, env.Orders.TrackOrder(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackOrderSubstringIdAndCaseInsensitiveEmail(t *testing.T) {
	env := newTestEnv(t)
	seedOrder(t, env)

	// partial id, email in a different case than stored
	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders/track?orderId=AB12&email=Buyer@Example.COM", nil)
	require.NoError(t, env.Orders.TrackOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	order := decodeBody[models.Order](t, rec)
	require.Equal(t, "XAB12Y", order.ID)
	require.Len(t, order.Items, 1)
	require.Equal(t, "Lavender Soap", order.Items[0].Product.Name)
}

func TestTrackOrderSucceedsWithoutProducer(t *testing.T) {
	env := newTestEnv(t)
	seedOrder(t, env)

	// Event publishing is best-effort: a handler with no producer wired
	// still tracks orders.
	require.Nil(t, env.Orders.Producer)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders/track?orderId=XAB12Y&email=buyer@example.com", nil)
	require.NoError(t, env.Orders.TrackOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTrackOrderIdSubstringIsCaseSensitive(t *testing.T) {
	env := newTestEnv(t)
	seedOrder(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders/track?orderId=ab12&email=buyer@example.com", nil)
	require.NoError(t, env.Orders.TrackOrder(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrackOrderWrongEmailIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	seedOrder(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders/track?orderId=AB12&email=other@example.com", nil)
	require.NoError(t, env.Orders.TrackOrder(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderBySessionReturnsOnlyOrderID(t *testing.T) {
	env := newTestEnv(t)
	seedOrder(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders/session/cs_test_123", nil)
	c.SetParamNames("sessionId")
	c.SetParamValues("cs_test_123")
	require.NoError(t, env.Orders.GetOrderBySession(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "XAB12Y", body["orderId"])
	require.Len(t, body, 1)
}

func TestGetOrderBySessionUnknownIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	seedOrder(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders/session/cs_other", nil)
	c.SetParamNames("sessionId")
	c.SetParamValues("cs_other")
	require.NoError(t, env.Orders.GetOrderBySession(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
