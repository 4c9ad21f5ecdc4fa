package handler // declare the package name; contains HTTP handlers

import (
    "context"  // context bounds the readiness ping
    "net/http" // net/http provides status codes and response helpers
    "time"

    "github.com/labstack/echo/v4" // echo is the web framework used for this project

    "github.com/iliyamo/sakila-rental-api/internal/logging"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
    PingContext(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
    DB Pinger
}

// Home answers the root path with a plain text banner.
func Home(c echo.Context) error {
    return c.String(http.StatusOK, "Home")
}

// Health is a simple liveness endpoint.  It returns "ok" while the process
// is serving requests, regardless of the store.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// Ready reports 503 while the store does not answer a ping.
func (h *HealthHandler) Ready(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
    defer cancel()
    if err := h.DB.PingContext(ctx); err != nil {
        logging.Warn().Err(err).Msg("readiness: store ping failed")
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
    }
    return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
}
