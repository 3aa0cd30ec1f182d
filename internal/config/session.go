package config

import "time"

// SessionConfig controls the in-memory visitor sessions that own each
// visitor's cart and toast queue.
type SessionConfig struct {
    CookieName    string
    IdleTimeout   time.Duration // sessions unseen for this long are evicted
    SweepInterval time.Duration
    Secure        bool // set the Secure flag on the cookie
}

func LoadSessionConfig() SessionConfig {
    c := SessionConfig{
        CookieName:    envStr("SESSION_COOKIE", "sid"),
        IdleTimeout:   envDur("SESSION_IDLE_TIMEOUT", 2*time.Hour),
        SweepInterval: envDur("SESSION_SWEEP_INTERVAL", 5*time.Minute),
        Secure:        envBool("SESSION_COOKIE_SECURE", false),
    }
    if c.SweepInterval <= 0 {
        c.SweepInterval = time.Minute
    }
    return c
}
