package handler

import (
    "crypto/subtle"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sanadimo/internal/config"
    "github.com/iliyamo/sanadimo/internal/utils"
)

// RoleOwner is the role carried by admin tokens.
const RoleOwner = "OWNER"

// AuthHandler logs the restaurant admin in.  There is a single admin whose
// email and bcrypt hash come from the environment.
type AuthHandler struct {
    Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
    return &AuthHandler{Cfg: cfg}
}

type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

// Login: POST /v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    email := strings.ToLower(strings.TrimSpace(req.Email))
    if email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }
    if h.Cfg.AdminEmail == "" || h.Cfg.AdminPasswordHash == "" {
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "admin login disabled"})
    }

    admin := strings.ToLower(h.Cfg.AdminEmail)
    emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(admin)) == 1
    // always run bcrypt so a wrong email costs as much as a wrong password
    passOK := utils.VerifyPassword(h.Cfg.AdminPasswordHash, req.Password)
    if !emailOK || !passOK {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, admin, RoleOwner, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "user":   echo.Map{"email": admin, "role": RoleOwner},
        "access": tokenPart{Token: access.Token, Expires: access.Exp},
    })
}

// Me: GET /v1/admin/me
func (h *AuthHandler) Me(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "user_id": c.Get("user_id"),
        "role":    c.Get("role"),
    })
}
