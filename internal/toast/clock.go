package toast

import "time"

// Timer is the part of *time.Timer the queue needs.
type Timer interface {
    Stop() bool
}

// Clock schedules one-shot callbacks.
type Clock interface {
    Now() time.Time
    AfterFunc(d time.Duration, f func()) Timer
}

// RealClock is backed by the time package.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
