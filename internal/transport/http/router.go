package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/hearthglow/storefront/internal/handlers"
	authmw "github.com/hearthglow/storefront/internal/middleware/auth"
)

type Deps struct {
	DB              *gorm.DB
	AuthHandler     *handlers.AuthHandler
	AdminHandler    *handlers.AdminHandler
	ProductHandler  *handlers.ProductHandler
	OrderHandler    *handlers.OrderHandler
	SettingsHandler *handlers.SettingsHandler
	SitemapHandler  *handlers.SitemapHandler
	SearchHandler   *handlers.SearchHandler
	AuthMiddleware  *authmw.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.GET("/sitemap.xml", d.SitemapHandler.GetSitemap)

	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)
	auth.GET("/session", d.AuthHandler.GetSession)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:slug", d.ProductHandler.GetProductBySlug)

	orders := v1.Group("/orders")
	orders.GET("/track", d.OrderHandler.TrackOrder)
	orders.GET("/session/:sessionId", d.OrderHandler.GetOrderBySession)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}

	// The /admin/*/public surface is unauthenticated by design: it feeds the
	// storefront shell and must never fail a page render.
	pub := v1.Group("/admin")
	pub.GET("/animation-settings/public", d.SettingsHandler.GetAnimationSettings)
	pub.GET("/carousel-settings/public", d.SettingsHandler.GetCarouselSettings)
	pub.GET("/design-settings/public", d.SettingsHandler.GetDesignSettings)
	pub.GET("/carousel-slides/public", d.SettingsHandler.GetCarouselSlides)
	pub.GET("/homepage-content/public", d.SettingsHandler.GetHomepageContent)
	pub.GET("/static-content/public", d.SettingsHandler.GetStaticContent)
	pub.GET("/static-content/public/:key", d.SettingsHandler.GetStaticContentByKey)
	pub.POST("/design-settings/refresh", d.SettingsHandler.RefreshDesignSettings)

	admin := v1.Group("/admin", d.AuthMiddleware.RequireAdmin)
	admin.GET("/stats", d.AdminHandler.GetStats)
	admin.GET("/customers", d.AdminHandler.GetCustomers)
	admin.GET("/orders", d.AdminHandler.GetOrders)
}
