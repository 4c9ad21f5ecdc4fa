package handler // handler defines http handlers

import (
    "context"  // context bounds the store round trips of one request
    "errors"   // errors matches repository sentinels
    "net/http" // net/http provides status codes
    "strconv"  // strconv parses path ids
    "time"     // time configures request timeouts

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/iliyamo/sakila-rental-api/internal/logging"    // structured logging
    "github.com/iliyamo/sakila-rental-api/internal/repository" // repository sentinels
)

// defaultTimeout applies when a handler is built without an explicit timeout.
const defaultTimeout = 5 * time.Second

// notFoundMessages maps repository sentinels to the public 404 body.
var notFoundMessages = map[error]string{
    repository.ErrFilmNotFound:     "Film not found",
    repository.ErrActorNotFound:    "Actor not found",
    repository.ErrCustomerNotFound: "Customer not found",
    repository.ErrRentalNotFound:   "Rental not found",
}

// requestCtx derives the per-request store context.
func requestCtx(c echo.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
    if timeout <= 0 {
        timeout = defaultTimeout
    }
    return context.WithTimeout(c.Request().Context(), timeout)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return 0, false
    }
    return id, true
}

func invalidID(c echo.Context) error {
    return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
}

// storeError writes the response for an error returned by a repository:
// 404 with the entity message for a missing row, 500 for anything else.
func storeError(c echo.Context, err error) error {
    for sentinel, msg := range notFoundMessages {
        if errors.Is(err, sentinel) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": msg})
        }
    }
    logging.Error().Err(err).
        Str("method", c.Request().Method).
        Str("route", c.Path()).
        Msg("store query failed")
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
