package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sanadimo/internal/handler"
)

// RegisterVisitor registers the routes that act on the visitor's own
// session: cart, toasts and the contact form.  session must attach the
// session to the context; limit guards the contact submission only.
func RegisterVisitor(
    e *echo.Echo,
    cart *handler.CartHandler,
    toasts *handler.ToastHandler,
    contact *handler.ContactHandler,
    session echo.MiddlewareFunc,
    limit echo.MiddlewareFunc,
) {
    g := e.Group("/v1", session)

    g.GET("/cart", cart.Get)
    g.GET("/cart/stream", cart.Stream)
    g.POST("/cart/items", cart.AddItem)
    g.PATCH("/cart/items/:id", cart.UpdateItem)
    g.DELETE("/cart/items/:id", cart.RemoveItem)
    g.DELETE("/cart", cart.Clear)

    g.GET("/toasts", toasts.List)
    g.GET("/toasts/stream", toasts.Stream)
    g.DELETE("/toasts/:id", toasts.Dismiss)

    g.POST("/contact", contact.Submit, limit)
    g.POST("/contact/validate", contact.ValidateField)
}
