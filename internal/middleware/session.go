package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sanadimo/internal/config"
    "github.com/iliyamo/sanadimo/internal/session"
)

const sessionKey = "session"

// Session attaches the visitor's session to the context.  A missing or
// malformed cookie gets a fresh id and a new cookie; an id whose session
// was evicted is reused with an empty cart.
func Session(m *session.Manager, cfg config.SessionConfig) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            id := ""
            if ck, err := c.Cookie(cfg.CookieName); err == nil && session.ValidID(ck.Value) {
                id = ck.Value
            }
            if id == "" {
                id = session.NewID()
                c.SetCookie(&http.Cookie{
                    Name:     cfg.CookieName,
                    Value:    id,
                    Path:     "/",
                    HttpOnly: true,
                    Secure:   cfg.Secure,
                    SameSite: http.SameSiteLaxMode,
                })
            }
            c.Set(sessionKey, m.Get(id))
            return next(c)
        }
    }
}

// CurrentSession returns the session stored by Session, or nil when the
// route is not behind that middleware.
func CurrentSession(c echo.Context) *session.Session {
    s, _ := c.Get(sessionKey).(*session.Session)
    return s
}
