// Package toast holds transient visitor notifications that remove
// themselves after a time-to-live or when dismissed, whichever comes
// first.
package toast

import (
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/sanadimo/internal/store"
)

// Kind classifies a notification for display.
type Kind string

const (
    KindSuccess Kind = "success"
    KindError   Kind = "error"
    KindInfo    Kind = "info"
)

// DefaultTTL is used when Show receives a non-positive ttl.
const DefaultTTL = 3000 * time.Millisecond

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
    switch k {
    case KindSuccess, KindError, KindInfo:
        return true
    }
    return false
}

// Notification is one visible toast.
type Notification struct {
    ID        string        `json:"id"`
    Message   string        `json:"message"`
    Kind      Kind          `json:"type"`
    TTL       time.Duration `json:"-"`
    TTLMillis int64         `json:"duration"`
    CreatedAt time.Time     `json:"created_at"`
}

type state uint8

const (
    active state = iota
    removed
)

type entry struct {
    state state
    timer Timer
}

// Queue is an insertion-ordered list of notifications.
type Queue struct {
    clock Clock
    items *store.Store[Notification]

    mu      sync.Mutex
    entries map[string]*entry
    closed  bool
}

// NewQueue returns an empty queue using clock for expiry.  A nil clock
// means the wall clock.
func NewQueue(clock Clock) *Queue {
    if clock == nil {
        clock = RealClock{}
    }
    return &Queue{
        clock:   clock,
        items:   store.New[Notification](),
        entries: make(map[string]*entry),
    }
}

// Subscribe registers fn for every change; see store.Store.Subscribe.
func (q *Queue) Subscribe(fn func(store.Snapshot[Notification])) func() {
    return q.items.Subscribe(fn)
}

// Snapshot returns the visible notifications, oldest first.
func (q *Queue) Snapshot() store.Snapshot[Notification] { return q.items.Snapshot() }

// Show appends a notification and schedules its removal after ttl.  An
// empty kind means success; a non-positive ttl means DefaultTTL.
func (q *Queue) Show(message string, kind Kind, ttl time.Duration) Notification {
    if kind == "" {
        kind = KindSuccess
    }
    if ttl <= 0 {
        ttl = DefaultTTL
    }
    n := Notification{
        ID:        uuid.NewString(),
        Message:   message,
        Kind:      kind,
        TTL:       ttl,
        TTLMillis: ttl.Milliseconds(),
        CreatedAt: q.clock.Now(),
    }

    q.mu.Lock()
    if q.closed {
        q.mu.Unlock()
        return n
    }
    e := &entry{state: active}
    q.entries[n.ID] = e
    q.items.Update(func(items []Notification) []Notification { return append(items, n) })
    e.timer = q.clock.AfterFunc(ttl, func() { q.expire(n.ID) })
    q.mu.Unlock()
    return n
}

// Dismiss removes the notification with id.  It reports whether a visible
// notification was removed; repeated or late calls do nothing.
func (q *Queue) Dismiss(id string) bool {
    q.mu.Lock()
    defer q.mu.Unlock()
    e, ok := q.entries[id]
    if !ok || e.state != active {
        return false
    }
    if e.timer != nil {
        e.timer.Stop()
    }
    q.removeLocked(id, e)
    return true
}

func (q *Queue) expire(id string) {
    q.mu.Lock()
    defer q.mu.Unlock()
    e, ok := q.entries[id]
    if !ok || e.state != active {
        return
    }
    q.removeLocked(id, e)
}

// removeLocked marks e removed and drops it from the visible list.  The
// entry itself is forgotten too: ids are random UUIDs and never reissued,
// so a late timer for id finds nothing and returns.
func (q *Queue) removeLocked(id string, e *entry) {
    e.state = removed
    delete(q.entries, id)
    q.items.Update(func(items []Notification) []Notification {
        out := items[:0]
        for _, n := range items {
            if n.ID != id {
                out = append(out, n)
            }
        }
        return out
    })
}

// Close stops every pending timer and clears the queue.  Show after Close
// returns the notification without displaying it.
func (q *Queue) Close() {
    q.mu.Lock()
    defer q.mu.Unlock()
    if q.closed {
        return
    }
    q.closed = true
    for id, e := range q.entries {
        if e.timer != nil {
            e.timer.Stop()
        }
        e.state = removed
        delete(q.entries, id)
    }
    q.items.Set(nil)
}
