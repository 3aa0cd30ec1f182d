package middleware

// identity.go resolves who is making a request, for rate limit keys and
// logging.  An authenticated admin is identified by the JWT subject, a
// visitor by the session id, anyone else is "anon".

import "github.com/labstack/echo/v4"

func currentUserID(c echo.Context) string {
    if v, ok := c.Get("user_id").(string); ok && v != "" {
        return v
    }
    if s := CurrentSession(c); s != nil {
        return "sid-" + s.ID
    }
    return "anon"
}
