package session

import (
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/sanadimo/internal/cart"
    "github.com/iliyamo/sanadimo/internal/store"
    "github.com/iliyamo/sanadimo/internal/toast"
)

type stubTimer struct{ stopped *bool }

func (t stubTimer) Stop() bool { *t.stopped = true; return true }

type stubClock struct {
    mu     sync.Mutex
    now    time.Time
    timers []*bool
}

func (c *stubClock) Now() time.Time {
    c.mu.Lock()
    defer c.mu.Unlock()
    return c.now
}

func (c *stubClock) AfterFunc(time.Duration, func()) toast.Timer {
    c.mu.Lock()
    defer c.mu.Unlock()
    stopped := new(bool)
    c.timers = append(c.timers, stopped)
    return stubTimer{stopped: stopped}
}

func (c *stubClock) set(t time.Time) {
    c.mu.Lock()
    c.now = t
    c.mu.Unlock()
}

func TestGetCreatesOnceAndTouches(t *testing.T) {
    start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
    clock := &stubClock{now: start}
    m := NewManager(time.Hour, clock)

    id := NewID()
    s := m.Get(id)
    s.Cart.AddItem(cart.Item{ID: "soup-1", Title: "ხარჩო"})

    clock.set(start.Add(10 * time.Minute))
    again := m.Get(id)
    assert.Same(t, s, again)
    assert.Equal(t, 1, cart.ItemCount(again.Cart.Snapshot().Items()))
    assert.Equal(t, start.Add(10*time.Minute), m.LastSeen(again))
    assert.Equal(t, 1, m.Len())
}

func TestSweepEvictsIdleAndStopsTimers(t *testing.T) {
    start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
    clock := &stubClock{now: start}
    m := NewManager(time.Hour, clock)

    old := m.Get("old")
    old.Toasts.Show("დამატებულია კალათაში", toast.KindSuccess, 0)

    clock.set(start.Add(50 * time.Minute))
    m.Get("fresh")

    assert.Equal(t, 1, m.Sweep(start.Add(61*time.Minute)))
    _, ok := m.Lookup("old")
    assert.False(t, ok)
    _, ok = m.Lookup("fresh")
    assert.True(t, ok)

    require.Len(t, clock.timers, 1)
    assert.True(t, *clock.timers[0])
    assert.Equal(t, 0, old.Toasts.Snapshot().Len())
}

func TestValidID(t *testing.T) {
    assert.True(t, ValidID(NewID()))
    assert.False(t, ValidID(""))
    assert.False(t, ValidID("not-a-uuid"))
    assert.False(t, ValidID("{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"))
}

func TestHeldSessionSurvivesSweep(t *testing.T) {
    start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
    clock := &stubClock{now: start}
    m := NewManager(time.Hour, clock)

    id := NewID()
    s := m.Get(id)
    var seen []int
    unsubscribe := s.Cart.Subscribe(func(snap store.Snapshot[cart.Line]) {
        seen = append(seen, snap.Len())
    })
    defer unsubscribe()
    release := s.Hold()

    assert.Zero(t, m.Sweep(start.Add(2*time.Hour)))
    live := m.Get(id)
    require.Same(t, s, live)
    live.Cart.AddItem(cart.Item{ID: "soup-1", Title: "ხარჩო"})
    assert.Equal(t, []int{0, 1}, seen)

    clock.set(start.Add(3 * time.Hour))
    release()
    release()
    assert.Equal(t, start.Add(3*time.Hour), m.LastSeen(s))
    assert.Zero(t, m.Sweep(start.Add(3*time.Hour+30*time.Minute)))
    assert.Equal(t, 1, m.Sweep(start.Add(5*time.Hour)))
}
