package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sanadimo/internal/handler"
)

// RegisterRoutes registers the health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the static catalog endpoints.  cache wraps
// every route; pass a pass-through middleware to disable caching.
func RegisterPublic(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
    g := e.Group("/v1", cache)
    g.GET("/restaurant", h.Restaurant)
    g.GET("/menu", h.Menu)
    g.GET("/menu/:category", h.MenuCategory)
    g.GET("/gallery", h.Gallery)
    g.GET("/gallery/:id", h.GalleryImage)
}
