package main // Entry point package

import (
    "context"
    "errors"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/iliyamo/sakila-rental-api/internal/config"   // Internal config loader
    "github.com/iliyamo/sakila-rental-api/internal/database" // MySQL pool
    "github.com/iliyamo/sakila-rental-api/internal/handler"
    "github.com/iliyamo/sakila-rental-api/internal/logging"
    "github.com/iliyamo/sakila-rental-api/internal/metrics"
    "github.com/iliyamo/sakila-rental-api/internal/queue"
    "github.com/iliyamo/sakila-rental-api/internal/router" // Internal router setup
    "github.com/iliyamo/sakila-rental-api/internal/service"
)

func main() {
    cfg := config.Load() // Load environment config
    logging.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        logging.Fatal().Err(err).Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("database connection failed")
    }
    defer db.Close()

    rdb := config.NewRedisClient()
    if rdb == nil {
        logging.Warn().Msg("redis unavailable; rate limiting disabled")
    } else {
        defer rdb.Close()
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    var events handler.EventPublisher = service.NopPublisher{}
    if cfg.Events.Enabled {
        pub := service.NewEventPublisher(cfg.Events.URL, cfg.Events.Queue)
        defer pub.Close()
        events = pub
        go func() {
            if err := queue.StartAuditConsumer(ctx, cfg.Events.URL, cfg.Events.Queue, cfg.Events.LogDir); err != nil && !errors.Is(err, context.Canceled) {
                logging.Error().Err(err).Msg("audit consumer stopped")
            }
        }()
    }
    if cfg.Auth.Enabled() {
        logging.Info().Str("user", cfg.Auth.AdminUser).Msg("staff authentication enabled on write routes")
    }

    e := router.New(router.Deps{
        Cfg:       cfg,
        RateLimit: config.LoadRateLimitConfig(),
        DB:        db,
        Redis:     rdb,
        Events:    events,
        Metrics:   metrics.New(),
    })

    addr := ":" + cfg.Port
    go func() {
        logging.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
        if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logging.Fatal().Err(err).Msg("server failed")
        }
    }()

    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := e.Shutdown(shutdownCtx); err != nil {
        logging.Error().Err(err).Msg("graceful shutdown failed")
    }
}
