package handler

import (
    "encoding/json"
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sanadimo/internal/store"
)

// heartbeatEvery keeps idle event streams from being cut by proxies.
var heartbeatEvery = 15 * time.Second

// streamSnapshots writes every snapshot delivered by subscribe as a
// Server-Sent Event named event until the client goes away.  Snapshots
// the client is too slow to read are skipped in favour of the newest one,
// so the stream never falls behind the store and never blocks it.
func streamSnapshots[T any](
    c echo.Context,
    event string,
    subscribe func(func(store.Snapshot[T])) func(),
    render func(store.Snapshot[T]) any,
) error {
    latest := make(chan store.Snapshot[T], 1)
    unsubscribe := subscribe(func(s store.Snapshot[T]) {
        select {
        case latest <- s:
        default:
            select {
            case <-latest:
            default:
            }
            latest <- s
        }
    })
    defer unsubscribe()

    res := c.Response()
    res.Header().Set(echo.HeaderContentType, "text/event-stream")
    res.Header().Set(echo.HeaderCacheControl, "no-cache")
    res.Header().Set(echo.HeaderConnection, "keep-alive")
    res.Header().Set("X-Accel-Buffering", "no")
    res.WriteHeader(http.StatusOK)
    res.Flush()

    ping := time.NewTicker(heartbeatEvery)
    defer ping.Stop()
    ctx := c.Request().Context()
    for {
        select {
        case <-ctx.Done():
            return nil
        case <-ping.C:
            if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
                return nil
            }
            res.Flush()
        case s := <-latest:
            data, err := json.Marshal(render(s))
            if err != nil {
                return err
            }
            if _, err := fmt.Fprintf(res, "id: %d\nevent: %s\ndata: %s\n\n", s.Version, event, data); err != nil {
                return nil
            }
            res.Flush()
        }
    }
}
