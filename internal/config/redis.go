package config

// Redis backs the contact form rate limiter and the catalog response cache.
// Both degrade to pass-through middleware when the client is nil, so a
// missing or unreachable Redis never keeps the site from starting.

import (
    "context"
    "crypto/tls"
    "os"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from the environment:
//
//	REDIS_URL            redis:// or rediss:// URL, wins over the rest
//	REDIS_HOST/REDIS_PORT or REDIS_ADDR
//	REDIS_PASSWORD, REDIS_DB
//	REDIS_TLS            "true" or "1"
//	REDIS_DISABLED       skip Redis entirely
//
// It returns nil when Redis is disabled or does not answer a ping.
func NewRedisClient() *redis.Client {
    if envBool("REDIS_DISABLED", false) {
        return nil
    }
    opts, err := redisOptions()
    if err != nil {
        return nil
    }
    client := redis.NewClient(opts)
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        _ = client.Close()
        return nil
    }
    return client
}

func redisOptions() (*redis.Options, error) {
    if u := os.Getenv("REDIS_URL"); u != "" {
        return redis.ParseURL(u)
    }
    addr := envStr("REDIS_ADDR", "localhost:6379")
    if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
        addr = host + ":" + port
    }
    var tlsConf *tls.Config
    if v := os.Getenv("REDIS_TLS"); strings.EqualFold(v, "true") || v == "1" {
        tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
    }
    return &redis.Options{
        Addr:      addr,
        Password:  os.Getenv("REDIS_PASSWORD"),
        DB:        envInt("REDIS_DB", 0),
        TLSConfig: tlsConf,
    }, nil
}
