package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog"

    "github.com/iliyamo/sanadimo/internal/contact"
    "github.com/iliyamo/sanadimo/internal/middleware"
    "github.com/iliyamo/sanadimo/internal/toast"
    "github.com/iliyamo/sanadimo/internal/validation"
)

// ContactHandler accepts the contact and reservation form.
type ContactHandler struct {
    Svc *contact.Service
    Log zerolog.Logger
}

func NewContactHandler(svc *contact.Service, log zerolog.Logger) *ContactHandler {
    return &ContactHandler{Svc: svc, Log: log}
}

// Submit: POST /v1/contact
//
//	422 {"errors": {field: message}, "message": ...} when a field is invalid
//	202 {"message": ...} once the form was handed to the submitter
//	502 {"error": ...} when the submitter failed
//
// Success and submitter failure also raise a toast for the visitor.
func (h *ContactHandler) Submit(c echo.Context) error {
    var req validation.Request
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    sess := middleware.CurrentSession(c)

    errs, err := h.Svc.Submit(c.Request().Context(), req.Form())
    if errs.HasErrors() {
        field, _, _ := errs.First()
        return c.JSON(http.StatusUnprocessableEntity, echo.Map{
            "errors":      errs,
            "first_field": field,
            "message":     msgFormError,
        })
    }
    if err != nil {
        h.Log.Error().Err(err).Str("type", req.MessageType).Msg("contact submit failed")
        if sess != nil {
            sess.Toasts.Show(msgSubmitFailed, toast.KindError, 0)
        }
        return c.JSON(http.StatusBadGateway, echo.Map{"error": msgSubmitFailed})
    }
    if sess != nil {
        sess.Toasts.Show(msgSubmitted, toast.KindSuccess, 0)
    }
    return c.JSON(http.StatusAccepted, echo.Map{"message": msgSubmitted})
}

type validateFieldReq struct {
    Field string `json:"field"`
    Value string `json:"value"`
}

// ValidateField: POST /v1/contact/validate {"field": ..., "value": ...}
// runs the live check for one field.
func (h *ContactHandler) ValidateField(c echo.Context) error {
    var req validateFieldReq
    if err := c.Bind(&req); err != nil || req.Field == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "field required"})
    }
    msg, bad := h.Svc.ValidateField(req.Field, req.Value)
    if bad {
        return c.JSON(http.StatusOK, echo.Map{"field": req.Field, "valid": false, "error": msg})
    }
    return c.JSON(http.StatusOK, echo.Map{"field": req.Field, "valid": true})
}
