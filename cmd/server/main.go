package main

import (
    "context"
    "errors"
    "net"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/rs/zerolog"

    "github.com/iliyamo/sanadimo/internal/config"
    "github.com/iliyamo/sanadimo/internal/contact"
    "github.com/iliyamo/sanadimo/internal/database"
    "github.com/iliyamo/sanadimo/internal/handler"
    "github.com/iliyamo/sanadimo/internal/logger"
    "github.com/iliyamo/sanadimo/internal/middleware"
    "github.com/iliyamo/sanadimo/internal/queue"
    "github.com/iliyamo/sanadimo/internal/repository"
    "github.com/iliyamo/sanadimo/internal/router"
    queue_publisher "github.com/iliyamo/sanadimo/internal/service"
    "github.com/iliyamo/sanadimo/internal/session"
    "github.com/iliyamo/sanadimo/internal/validation"
)

func main() {
    cfg := config.Load()
    log := logger.New(cfg.Env)

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Warn().Msg("redis unavailable: response cache and rate limit disabled")
    } else {
        defer rdb.Close()
    }

    var messages *repository.MessageRepo
    if cfg.DBEnabled() {
        db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
        if err != nil {
            log.Fatal().Err(err).Msg("open database")
        }
        defer db.Close()
        if err := database.EnsureSchema(ctx, db); err != nil {
            log.Fatal().Err(err).Msg("ensure schema")
        }
        messages = repository.NewMessageRepo(db)
    }

    submitter := pickSubmitter(ctx, cfg, messages, log)

    sessCfg := config.LoadSessionConfig()
    sessions := session.NewManager(sessCfg.IdleTimeout, nil)
    go sessions.Run(ctx, sessCfg.SweepInterval, log)

    e := echo.New()
    e.HideBanner = true
    e.HidePort = true
    // request contexts end with ctx so open event streams let Shutdown finish
    e.Server.BaseContext = func(net.Listener) context.Context { return ctx }
    e.Use(echomw.Recover())
    e.Use(middleware.RequestLogger(log))

    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    svc := contact.NewService(submitter, validation.Validator{}, cfg.SubmitTimeout)

    router.RegisterRoutes(e)
    router.RegisterPublic(e, handler.NewCatalogHandler(), middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
    router.RegisterVisitor(e,
        handler.NewCartHandler(),
        handler.NewToastHandler(),
        handler.NewContactHandler(svc, log),
        middleware.Session(sessions, sessCfg),
        limiter,
    )
    var inbox *handler.MessageHandler
    if messages != nil {
        inbox = handler.NewMessageHandler(messages)
    }
    router.RegisterAdmin(e, handler.NewAuthHandler(cfg), inbox, cfg.JWTSecret, limiter)

    addr := ":" + cfg.Port
    go func() {
        log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
        if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
            log.Fatal().Err(err).Msg("server stopped")
        }
    }()

    <-ctx.Done()
    log.Info().Msg("shutting down")
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := e.Shutdown(shutdownCtx); err != nil {
        log.Error().Err(err).Msg("shutdown")
    }
}

// pickSubmitter prefers the broker, then the database, then a log line.
// With both broker and database configured the contact consumer runs in
// this process.
func pickSubmitter(ctx context.Context, cfg config.Config, messages *repository.MessageRepo, log zerolog.Logger) contact.Submitter {
    switch {
    case cfg.RabbitURL != "":
        if messages != nil {
            c := &queue.Consumer{URL: cfg.RabbitURL, Saver: messages, Log: log}
            go func() {
                if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
                    log.Error().Err(err).Msg("contact consumer stopped")
                }
            }()
        }
        return queue_publisher.New(cfg.RabbitURL, log)
    case messages != nil:
        return contact.StoreSubmitter{Saver: messages}
    default:
        log.Warn().Msg("no broker or database configured: contact forms are only logged")
        return contact.LogSubmitter{Log: log}
    }
}
