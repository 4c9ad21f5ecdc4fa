package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sakila-rental-api/internal/queue"
    "github.com/iliyamo/sakila-rental-api/internal/repository"
)

// RentalHandler serves the rental return endpoint.
type RentalHandler struct {
    Rentals *repository.RentalRepo
    Events  EventPublisher
    Timeout time.Duration
}

func NewRentalHandler(rentals *repository.RentalRepo, events EventPublisher, timeout time.Duration) *RentalHandler {
    if rentals == nil {
        panic("nil repository passed to NewRentalHandler")
    }
    return &RentalHandler{Rentals: rentals, Events: events, Timeout: timeout}
}

// Return marks a rental as returned.  A rental that was already returned
// keeps its original return date and gets the same response.
func (h *RentalHandler) Return(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return invalidID(c)
    }
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    if err := h.Rentals.Return(ctx, id); err != nil {
        return storeError(c, err)
    }
    publish(ctx, h.Events, queue.StoreEvent{Type: queue.EventRentalReturned, RentalID: id})
    return c.JSON(http.StatusOK, echo.Map{"message": "Rental returned successfully"})
}
