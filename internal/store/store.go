// Package store provides a small observable, ordered collection.  Every
// mutation publishes a new immutable Snapshot to all subscribers; the
// cart and toast packages build on it.
package store

import "sync"

// Snapshot is an immutable view of a Store at one version.  Versions
// increase by one on every mutation.
type Snapshot[T any] struct {
    Version uint64
    items   []T
}

// Items returns a copy of the snapshot contents in order.
func (s Snapshot[T]) Items() []T {
    out := make([]T, len(s.items))
    copy(out, s.items)
    return out
}

// Len reports the number of items in the snapshot.
func (s Snapshot[T]) Len() int { return len(s.items) }

// subscriber delivers snapshots to one callback, dropping any snapshot
// older than the last one it delivered.
type subscriber[T any] struct {
    mu   sync.Mutex
    last uint64
    seen bool
    fn   func(Snapshot[T])
}

func (s *subscriber[T]) deliver(snap Snapshot[T]) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.seen && snap.Version <= s.last {
        return
    }
    s.seen = true
    s.last = snap.Version
    s.fn(snap)
}

// Store holds an ordered sequence of T and notifies subscribers after
// every mutation.  It is safe for concurrent use.  Callbacks may read the
// store but must not mutate it synchronously.
type Store[T any] struct {
    mu      sync.Mutex
    items   []T
    version uint64
    subs    map[uint64]*subscriber[T]
    nextID  uint64
}

// New returns a Store seeded with a copy of initial.
func New[T any](initial ...T) *Store[T] {
    items := make([]T, len(initial))
    copy(items, initial)
    return &Store[T]{items: items, subs: make(map[uint64]*subscriber[T])}
}

// Snapshot returns the current contents.
func (s *Store[T]) Snapshot() Snapshot[T] {
    s.mu.Lock()
    defer s.mu.Unlock()
    return Snapshot[T]{Version: s.version, items: s.items}
}

// Subscribe registers fn and immediately calls it with the current
// snapshot.  The returned function unregisters fn; calling it more than
// once is harmless.
func (s *Store[T]) Subscribe(fn func(Snapshot[T])) (unsubscribe func()) {
    sub := &subscriber[T]{fn: fn}
    s.mu.Lock()
    id := s.nextID
    s.nextID++
    s.subs[id] = sub
    snap := Snapshot[T]{Version: s.version, items: s.items}
    s.mu.Unlock()
    sub.deliver(snap)

    var once sync.Once
    return func() {
        once.Do(func() {
            s.mu.Lock()
            delete(s.subs, id)
            s.mu.Unlock()
        })
    }
}

// Update replaces the sequence with fn(copy of current items).  fn owns
// the slice it receives and may modify or return it.
func (s *Store[T]) Update(fn func(items []T) []T) {
    s.mu.Lock()
    cur := make([]T, len(s.items))
    copy(cur, s.items)
    s.commitLocked(fn(cur))
}

// Set replaces the sequence with a copy of items.
func (s *Store[T]) Set(items []T) {
    next := make([]T, len(items))
    copy(next, items)
    s.mu.Lock()
    s.commitLocked(next)
}

// commitLocked publishes next as a new version.  It must be called with
// s.mu held and releases it before running callbacks.
func (s *Store[T]) commitLocked(next []T) {
    if next == nil {
        next = []T{}
    }
    s.items = next
    s.version++
    snap := Snapshot[T]{Version: s.version, items: next}
    subs := make([]*subscriber[T], 0, len(s.subs))
    for _, sub := range s.subs {
        subs = append(subs, sub)
    }
    s.mu.Unlock()
    for _, sub := range subs {
        sub.deliver(snap)
    }
}
