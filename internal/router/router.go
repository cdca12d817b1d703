// Package router defines how HTTP routes are registered for the API.
// Read endpoints are public so the dashboard can render without a
// session; everything that mutates inventory requires a valid access
// token, and reference-data writes additionally require the admin role.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/emsinv/ems-inventory/internal/handler"
	"github.com/emsinv/ems-inventory/internal/middleware"
)

// RegisterRoutes registers routes that carry no middleware at all.
// Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints. Register, login,
// refresh and logout live under /api/auth and need no existing session;
// /api/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	me := e.Group("/api")
	me.Use(middleware.JWTAuth(jwtSecret))
	me.GET("/me", a.Me)
}

// API bundles the handlers for the inventory endpoints.
type API struct {
	Dashboard *handler.DashboardHandler
	Equipment *handler.EquipmentHandler
	Usage     *handler.UsageHandler
	Alerts    *handler.AlertHandler
	Category  *handler.CategoryHandler
}

// RegisterAPI registers the inventory endpoints. cacheMW wraps the
// read-heavy dashboard and alert aggregations; pass nil to skip caching.
func RegisterAPI(e *echo.Echo, api API, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	// Aggregate views, cacheable.
	dash := e.Group("/api/dashboard")
	if cacheMW != nil {
		dash.Use(cacheMW)
	}
	dash.GET("/stats", api.Dashboard.Stats)
	dash.GET("/category-stats", api.Dashboard.CategoryStats)
	dash.GET("/recent-usage", api.Dashboard.RecentUsage)
	dash.GET("/critical-items", api.Dashboard.CriticalItems)

	alerts := e.Group("/api/alerts")
	if cacheMW != nil {
		alerts.Use(cacheMW)
	}
	alerts.GET("/expiring", api.Alerts.Expiring)
	alerts.GET("/low-stock", api.Alerts.LowStock)

	// Public reads.
	e.GET("/api/categories", api.Category.List)
	e.GET("/api/categories/:id", api.Category.Get)
	e.GET("/api/equipment", api.Equipment.List)
	e.GET("/api/equipment/:id", api.Equipment.Get)
	e.GET("/api/usage-history", api.Usage.List)
	e.GET("/api/alert-settings", api.Alerts.List)

	// Mutations require an authenticated caller.
	auth := e.Group("/api")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.POST("/equipment", api.Equipment.Create)
	auth.PUT("/equipment/:id", api.Equipment.Update)
	auth.POST("/equipment/:id/stock", api.Equipment.UpdateStock)
	auth.POST("/usage-history", api.Usage.Create)

	// Reference data writes are admin only.
	admin := e.Group("/api")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("admin"))
	admin.POST("/categories", api.Category.Create)
	admin.POST("/alert-settings", api.Alerts.Create)
}
