package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"

    "github.com/iliyamo/sanadimo/internal/cart"
    "github.com/iliyamo/sanadimo/internal/catalog"
    "github.com/iliyamo/sanadimo/internal/middleware"
    "github.com/iliyamo/sanadimo/internal/store"
    "github.com/iliyamo/sanadimo/internal/toast"
)

// CartHandler exposes the visitor's cart.  Every route runs behind the
// session middleware.
type CartHandler struct{}

func NewCartHandler() *CartHandler { return &CartHandler{} }

type cartResp struct {
    Version  uint64          `json:"version"`
    Items    []cart.Line     `json:"items"`
    Count    int             `json:"count"`
    Total    decimal.Decimal `json:"total"`
    Currency string          `json:"currency"`
}

func renderCart(s store.Snapshot[cart.Line]) any {
    lines := s.Items()
    if lines == nil {
        lines = []cart.Line{}
    }
    return cartResp{
        Version:  s.Version,
        Items:    lines,
        Count:    cart.ItemCount(lines),
        Total:    cart.Total(lines),
        Currency: catalog.Currency,
    }
}

func noSession(c echo.Context) error {
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no session"})
}

// Get: GET /v1/cart
func (h *CartHandler) Get(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return noSession(c)
    }
    return c.JSON(http.StatusOK, renderCart(s.Cart.Snapshot()))
}

type addItemReq struct {
    PackageID string `json:"package_id"`
}

// AddItem: POST /v1/cart/items {"package_id": "..."}.  Title and price
// come from the menu, never from the client.
func (h *CartHandler) AddItem(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return noSession(c)
    }
    var req addItemReq
    if err := c.Bind(&req); err != nil || req.PackageID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "package_id required"})
    }
    pkg, ok := catalog.PackageByID(req.PackageID)
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
    }
    s.Cart.AddItem(cart.Item{ID: pkg.ID, Title: pkg.Title, Price: pkg.Price, Image: pkg.Image})
    s.Toasts.Show(pkg.Title+" "+msgAddedToCart, toast.KindSuccess, 0)
    return c.JSON(http.StatusOK, renderCart(s.Cart.Snapshot()))
}

type updateItemReq struct {
    Quantity *int `json:"quantity"`
}

// UpdateItem: PATCH /v1/cart/items/:id {"quantity": n}.  A quantity of
// zero or less removes the line; an id not in the cart is ignored.
func (h *CartHandler) UpdateItem(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return noSession(c)
    }
    var req updateItemReq
    if err := c.Bind(&req); err != nil || req.Quantity == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity required"})
    }
    s.Cart.UpdateQuantity(c.Param("id"), *req.Quantity)
    return c.JSON(http.StatusOK, renderCart(s.Cart.Snapshot()))
}

// RemoveItem: DELETE /v1/cart/items/:id
func (h *CartHandler) RemoveItem(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return noSession(c)
    }
    id := c.Param("id")
    before := s.Cart.Snapshot().Len()
    s.Cart.RemoveItem(id)
    snap := s.Cart.Snapshot()
    if snap.Len() < before {
        s.Toasts.Show(msgRemovedFromCart, toast.KindInfo, 0)
    }
    return c.JSON(http.StatusOK, renderCart(snap))
}

// Clear: DELETE /v1/cart
func (h *CartHandler) Clear(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return noSession(c)
    }
    s.Cart.Clear()
    return c.JSON(http.StatusOK, renderCart(s.Cart.Snapshot()))
}

// Stream: GET /v1/cart/stream, one "cart" event per change.
func (h *CartHandler) Stream(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return noSession(c)
    }
    defer s.Hold()()
    return streamSnapshots(c, "cart", s.Cart.Subscribe, renderCart)
}
