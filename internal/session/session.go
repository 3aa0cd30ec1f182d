// Package session keeps the per-visitor state that lives on the server: a
// cart and a toast queue, keyed by the id stored in the visitor's cookie.
// Sessions live in memory only and are evicted after an idle period.
package session

import (
    "context"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/rs/zerolog"

    "github.com/iliyamo/sanadimo/internal/cart"
    "github.com/iliyamo/sanadimo/internal/toast"
)

// Session is one visitor's state.
type Session struct {
    ID     string
    Cart   *cart.Cart
    Toasts *toast.Queue

    m        *Manager
    lastSeen time.Time // guarded by Manager.mu
    streams  int       // open event streams, guarded by Manager.mu
}

// Hold keeps s alive while an event stream is subscribed to it: Sweep
// never evicts a held session.  release ends the hold and counts as a
// visit.  It is safe to call more than once.
func (s *Session) Hold() (release func()) {
    s.m.mu.Lock()
    s.streams++
    s.m.mu.Unlock()

    var once sync.Once
    return func() {
        once.Do(func() {
            s.m.mu.Lock()
            s.streams--
            s.lastSeen = s.m.clock.Now()
            s.m.mu.Unlock()
        })
    }
}

// Manager owns every live session.
type Manager struct {
    mu       sync.Mutex
    sessions map[string]*Session
    idle     time.Duration
    clock    toast.Clock
}

// NewManager returns a Manager evicting sessions idle for longer than
// idle.  clock drives both LastSeen and the toast timers; nil means the
// wall clock.
func NewManager(idle time.Duration, clock toast.Clock) *Manager {
    if clock == nil {
        clock = toast.RealClock{}
    }
    return &Manager{sessions: map[string]*Session{}, idle: idle, clock: clock}
}

// NewID returns a fresh session id.
func NewID() string { return uuid.NewString() }

// ValidID reports whether id looks like an id issued by NewID.
func ValidID(id string) bool {
    _, err := uuid.Parse(id)
    return err == nil && len(id) == 36
}

// Get returns the session for id, creating it when absent, and marks it as
// seen.
func (m *Manager) Get(id string) *Session {
    m.mu.Lock()
    defer m.mu.Unlock()
    s, ok := m.sessions[id]
    if !ok {
        s = &Session{ID: id, Cart: cart.New(), Toasts: toast.NewQueue(m.clock), m: m}
        m.sessions[id] = s
    }
    s.lastSeen = m.clock.Now()
    return s
}

// Lookup returns the session for id without creating or touching it.
func (m *Manager) Lookup(id string) (*Session, bool) {
    m.mu.Lock()
    defer m.mu.Unlock()
    s, ok := m.sessions[id]
    return s, ok
}

// LastSeen returns when s was last requested through Get.
func (m *Manager) LastSeen(s *Session) time.Time {
    m.mu.Lock()
    defer m.mu.Unlock()
    return s.lastSeen
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
    m.mu.Lock()
    defer m.mu.Unlock()
    return len(m.sessions)
}

// Sweep evicts sessions not seen since now-idle and stops their toast
// timers.  Held sessions are kept.  It returns the number evicted.
func (m *Manager) Sweep(now time.Time) int {
    cutoff := now.Add(-m.idle)
    var evicted []*Session

    m.mu.Lock()
    for id, s := range m.sessions {
        if s.streams == 0 && s.lastSeen.Before(cutoff) {
            delete(m.sessions, id)
            evicted = append(evicted, s)
        }
    }
    m.mu.Unlock()

    for _, s := range evicted {
        s.Toasts.Close()
    }
    return len(evicted)
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration, log zerolog.Logger) {
    t := time.NewTicker(interval)
    defer t.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-t.C:
            if n := m.Sweep(m.clock.Now()); n > 0 {
                log.Debug().Int("evicted", n).Int("live", m.Len()).Msg("session sweep")
            }
        }
    }
}
