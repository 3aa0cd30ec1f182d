package config

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
    t.Setenv("APP_PORT", "8080")
    t.Setenv("JWT_SECRET", "s3cret")
    t.Setenv("DB_USER", "")
    t.Setenv("RABBITMQ_URL", "")
    t.Setenv("AMQP_URL", "amqp://legacy/")

    cfg := Load()
    assert.Equal(t, "8080", cfg.Port)
    assert.Equal(t, 60, cfg.AccessTTLMin)
    assert.Equal(t, 5*time.Second, cfg.SubmitTimeout)
    assert.Equal(t, "amqp://legacy/", cfg.RabbitURL)
    assert.False(t, cfg.DBEnabled())
}

func TestRateLimitClamps(t *testing.T) {
    t.Setenv("RATE_LIMIT_CAPACITY", "0")
    t.Setenv("RATE_LIMIT_REFILL_EVERY", "30s")
    t.Setenv("RATE_LIMIT_TTL", "1s")

    rl := LoadRateLimitConfig()
    assert.Equal(t, 1, rl.Capacity)
    assert.Equal(t, 1, rl.RefillTokens)
    assert.Equal(t, 30*time.Second, rl.RefillInterval)
    assert.Equal(t, 150*time.Second, rl.TTL)
    assert.Equal(t, "ip_route", rl.KeyStrategy)
}

func TestCacheAndSessionConfig(t *testing.T) {
    t.Setenv("CACHE_METHODS", "get, head,")
    t.Setenv("CACHE_ENABLED", "off")
    c := LoadCacheConfig()
    assert.False(t, c.Enabled)
    assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, c.Methods)

    t.Setenv("SESSION_SWEEP_INTERVAL", "-1s")
    s := LoadSessionConfig()
    assert.Equal(t, "sid", s.CookieName)
    assert.Equal(t, time.Minute, s.SweepInterval)
}

func TestRedisOptionsFromURL(t *testing.T) {
    t.Setenv("REDIS_URL", "redis://:pw@cache.local:6380/2")
    opts, err := redisOptions()
    require.NoError(t, err)
    assert.Equal(t, "cache.local:6380", opts.Addr)
    assert.Equal(t, "pw", opts.Password)
    assert.Equal(t, 2, opts.DB)
}

func TestRedisDisabled(t *testing.T) {
    t.Setenv("REDIS_DISABLED", "1")
    assert.Nil(t, NewRedisClient())
}
