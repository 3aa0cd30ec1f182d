package handler

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sanadimo/internal/model"
    "github.com/iliyamo/sanadimo/internal/repository"
    "github.com/iliyamo/sanadimo/internal/validation"
)

// MessageStore is the part of repository.MessageRepo the admin endpoints
// use.
type MessageStore interface {
    List(ctx context.Context, msgType string, limit, offset int) ([]*model.ContactMessage, error)
    GetByID(ctx context.Context, id uint64) (*model.ContactMessage, error)
    Delete(ctx context.Context, id uint64) error
}

// MessageHandler lets the admin read stored contact messages.
type MessageHandler struct {
    Store MessageStore
}

func NewMessageHandler(s MessageStore) *MessageHandler {
    return &MessageHandler{Store: s}
}

func parseID(c echo.Context) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    return id, err == nil && id > 0
}

// List: GET /v1/admin/messages?type=reservation&limit=20&offset=0
func (h *MessageHandler) List(c echo.Context) error {
    msgType := c.QueryParam("type")
    if msgType != "" && !validation.MessageType(msgType).Valid() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown type"})
    }
    limit, _ := strconv.Atoi(c.QueryParam("limit"))
    offset, _ := strconv.Atoi(c.QueryParam("offset"))
    if limit > 200 {
        limit = 200
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    msgs, err := h.Store.List(ctx, msgType, limit, offset)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"messages": msgs})
}

// Get: GET /v1/admin/messages/:id
func (h *MessageHandler) Get(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    m, err := h.Store.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, m)
}

// Delete: DELETE /v1/admin/messages/:id
func (h *MessageHandler) Delete(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Store.Delete(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
