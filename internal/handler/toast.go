package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sanadimo/internal/middleware"
    "github.com/iliyamo/sanadimo/internal/store"
    "github.com/iliyamo/sanadimo/internal/toast"
)

// ToastHandler exposes the visitor's notifications.
type ToastHandler struct{}

func NewToastHandler() *ToastHandler { return &ToastHandler{} }

type toastResp struct {
    Version uint64               `json:"version"`
    Toasts  []toast.Notification `json:"toasts"`
}

func renderToasts(s store.Snapshot[toast.Notification]) any {
    items := s.Items()
    if items == nil {
        items = []toast.Notification{}
    }
    return toastResp{Version: s.Version, Toasts: items}
}

// List: GET /v1/toasts
func (h *ToastHandler) List(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return noSession(c)
    }
    return c.JSON(http.StatusOK, renderToasts(s.Toasts.Snapshot()))
}

// Dismiss: DELETE /v1/toasts/:id.  Dismissing an unknown or already
// removed toast is not an error.
func (h *ToastHandler) Dismiss(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return noSession(c)
    }
    removed := s.Toasts.Dismiss(c.Param("id"))
    return c.JSON(http.StatusOK, echo.Map{"dismissed": removed})
}

// Stream: GET /v1/toasts/stream, one "toasts" event per change.
func (h *ToastHandler) Stream(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return noSession(c)
    }
    defer s.Hold()()
    return streamSnapshots(c, "toasts", s.Toasts.Subscribe, renderToasts)
}
