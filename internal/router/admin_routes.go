package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sanadimo/internal/handler"
    "github.com/iliyamo/sanadimo/internal/middleware"
)

// RegisterAdmin registers the admin login and the OWNER-only message
// inbox.  The inbox is skipped when m is nil (no database configured).
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler, m *handler.MessageHandler, jwtSecret string, limit echo.MiddlewareFunc) {
    e.POST("/v1/auth/login", a.Login, limit)

    g := e.Group(
        "/v1/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(handler.RoleOwner),
    )
    g.GET("/me", a.Me)
    if m == nil {
        return
    }
    g.GET("/messages", m.List)
    g.GET("/messages/:id", m.Get)
    g.DELETE("/messages/:id", m.Delete)
}
