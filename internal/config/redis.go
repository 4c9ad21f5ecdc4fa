package config

// Redis backs the distributed rate limiter.  When the server cannot be
// reached at startup the constructor returns nil and the limiter turns
// itself into a pass-through.

import (
    "context"
    "crypto/tls"
    "os"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment variables.
// Supported variables are:
//   REDIS_HOST and REDIS_PORT – hostname and port of the Redis server
//   REDIS_ADDR – host:port shorthand (host/port win when both are set)
//   REDIS_PASSWORD – optional password
//   REDIS_DB – database number (default 0)
//   REDIS_TLS – enable TLS when "true" or "1"
func NewRedisClient() *redis.Client {
    return newRedisClient(2 * time.Second)
}

func newRedisClient(pingTimeout time.Duration) *redis.Client {
    addr := envStr("REDIS_ADDR", "localhost:6379")
    if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
        addr = host + ":" + port
    }
    var tlsConf *tls.Config
    if v := os.Getenv("REDIS_TLS"); strings.EqualFold(v, "true") || v == "1" {
        tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
    }
    client := redis.NewClient(&redis.Options{
        Addr:      addr,
        Password:  os.Getenv("REDIS_PASSWORD"),
        DB:        envInt("REDIS_DB", 0),
        TLSConfig: tlsConf,
    })
    ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        _ = client.Close()
        return nil
    }
    return client
}
