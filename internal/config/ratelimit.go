package config

import "time"

// RateLimitConfig configures the Redis token bucket placed in front of the
// API.  Capacity tokens are available per key; RefillTokens are added back
// every RefillInterval.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    KeyStrategy    string // ip, route or ip_route
    Prefix         string
}

func LoadRateLimitConfig() RateLimitConfig {
    def := RateLimitConfig{
        Enabled:        envBool("RATE_LIMIT_ENABLED", true),
        Capacity:       envInt("RATE_LIMIT_CAPACITY", 60),
        RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
        TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
        KeyStrategy:    envStr("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
        Prefix:         envStr("RATE_LIMIT_PREFIX", "rl"),
    }
    if b := envInt("RATE_LIMIT_BURST", -1); b > 0 {
        def.Capacity = b
    }
    if def.Capacity < 1 {
        def.Capacity = 1
    }
    if def.RefillTokens < 1 {
        def.RefillTokens = 1
    }
    if def.RefillInterval <= 0 {
        def.RefillInterval = time.Second
    }
    // keep idle buckets around long enough to refill at least a few tokens
    if minTTL := 5 * def.RefillInterval; def.TTL < minTTL {
        def.TTL = minTTL
    }
    return def
}
