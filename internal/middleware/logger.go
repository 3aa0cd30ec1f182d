package middleware

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog"
)

// RequestLogger logs one line per request with method, uri, status and
// latency.  Client and server errors are logged under their own message
// so they are easy to grep for.  Streaming endpoints are logged when the
// stream ends.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                c.Error(err) // let echo write the response so the status is final
            }

            req, res := c.Request(), c.Response()
            ev := log.Info()
            msg := "request"
            switch {
            case res.Status >= 500:
                ev, msg = log.Error(), "server error"
            case res.Status >= 400:
                msg = "client error"
            }
            ev = ev.
                Str("method", req.Method).
                Str("uri", req.RequestURI).
                Int("status", res.Status).
                Dur("latency", time.Since(start)).
                Str("ip", c.RealIP())
            if res.Status >= 400 {
                ev = ev.Str("status_text", http.StatusText(res.Status)).Int64("bytes_out", res.Size)
            }
            if err != nil {
                ev = ev.Err(err)
            }
            ev.Msg(msg)
            return nil
        }
    }
}
