package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/iliyamo/sakila-rental-api/internal/handler" // handlers implementing each endpoint
)

// RegisterRoutes registers the unauthenticated service routes: the root
// banner and the liveness/readiness probes.
func RegisterRoutes(e *echo.Echo, h *handler.HealthHandler) {
    e.GET("/", handler.Home)
    e.GET("/healthz", handler.Health)
    e.GET("/readyz", h.Ready)
}

// RegisterAuth exposes the staff login.  It answers 404 while
// authentication is disabled.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
    e.POST("/api/auth/login", a.Login)
}

// RegisterCatalog registers the read-only film, actor and category
// endpoints.  Static segments (top, revenue) take precedence over :id.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler) {
    g := e.Group("/api")
    g.GET("/films/top", h.TopFilms)
    g.GET("/films/revenue", h.TopRevenue)
    g.GET("/films/:id", h.GetFilm)
    g.GET("/actors/top", h.TopActors)
    g.GET("/actors/:id", h.GetActor)
    g.GET("/categories/top", h.TopCategories)
}

// RegisterCustomers registers customer search, CRUD and history.  guard
// wraps the routes that write to the store.
func RegisterCustomers(e *echo.Echo, h *handler.CustomerHandler, guard echo.MiddlewareFunc) {
    g := e.Group("/api/customers")
    g.GET("", h.Search)
    g.GET("/top", h.TopCustomers)
    g.GET("/:id/details", h.Details)

    g.POST("", h.Create, guard)
    g.PUT("/:id", h.Update, guard)
    g.DELETE("/:id", h.Delete, guard)
}

// RegisterRentals registers the rental return endpoint behind guard.
func RegisterRentals(e *echo.Echo, h *handler.RentalHandler, guard echo.MiddlewareFunc) {
    e.PUT("/api/rentals/:id/return", h.Return, guard)
}
