package handler

import (
    "context"
    "fmt"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sakila-rental-api/internal/logging"
    "github.com/iliyamo/sakila-rental-api/internal/model"
    "github.com/iliyamo/sakila-rental-api/internal/queue"
    "github.com/iliyamo/sakila-rental-api/internal/repository"
)

// EventPublisher receives store events after successful writes.
type EventPublisher interface {
    Publish(ctx context.Context, ev queue.StoreEvent) error
}

// CustomerHandler serves customer search, CRUD and rental history.
type CustomerHandler struct {
    Customers *repository.CustomerRepo
    Rentals   *repository.RentalRepo
    Events    EventPublisher
    Timeout   time.Duration
}

// NewCustomerHandler panics if a repository is nil.  A nil publisher drops
// events.
func NewCustomerHandler(customers *repository.CustomerRepo, rentals *repository.RentalRepo, events EventPublisher, timeout time.Duration) *CustomerHandler {
    if customers == nil || rentals == nil {
        panic("nil repository passed to NewCustomerHandler")
    }
    return &CustomerHandler{Customers: customers, Rentals: rentals, Events: events, Timeout: timeout}
}

// ----- DTOs -----

type createCustomerReq struct {
    FirstName *string `json:"first_name"`
    LastName  *string `json:"last_name"`
    Email     *string `json:"email"`
    AddressID *uint64 `json:"address_id"`
    StoreID   *uint64 `json:"store_id"`
}

type customerResp struct {
    ID        uint64  `json:"customer_id"`
    FirstName *string `json:"first_name"`
    LastName  *string `json:"last_name"`
    Email     *string `json:"email"`
    AddressID *uint64 `json:"address_id,omitempty"`
    StoreID   *uint64 `json:"store_id,omitempty"`
}

// Search lists customers page by page.  Query parameters: page (default
// 1), per_page (default 10), id, first_name, last_name.  Malformed numbers
// fall back to the defaults; a malformed id is ignored.
func (h *CustomerHandler) Search(c echo.Context) error {
    f := repository.CustomerFilter{Page: 1, PerPage: 10}
    if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p >= 1 {
        f.Page = p
    }
    if pp, err := strconv.Atoi(c.QueryParam("per_page")); err == nil && pp >= 1 {
        f.PerPage = pp
    }
    if id, err := strconv.ParseUint(c.QueryParam("id"), 10, 64); err == nil {
        f.ID = &id
    }
    if v := strings.TrimSpace(c.QueryParam("first_name")); v != "" {
        f.FirstName = &v
    }
    if v := strings.TrimSpace(c.QueryParam("last_name")); v != "" {
        f.LastName = &v
    }

    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    out, err := h.Customers.Search(ctx, f)
    if err != nil {
        return storeError(c, err)
    }
    return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) TopCustomers(c echo.Context) error {
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    out, err := h.Customers.TopRenters(ctx)
    if err != nil {
        return storeError(c, err)
    }
    return c.JSON(http.StatusOK, out)
}

// Create inserts a customer.  The payload is not validated: missing names
// reach the store as NULL and are rejected there.
func (h *CustomerHandler) Create(c echo.Context) error {
    var req createCustomerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    in := &model.NewCustomer{
        FirstName: req.FirstName,
        LastName:  req.LastName,
        Email:     req.Email,
        AddressID: req.AddressID,
        StoreID:   req.StoreID,
    }

    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    id, err := h.Customers.Create(ctx, in)
    if err != nil {
        return storeError(c, err)
    }
    h.publish(ctx, queue.StoreEvent{
        Type: queue.EventCustomerCreated, CustomerID: id,
        FirstName: in.FirstName, LastName: in.LastName, Email: in.Email,
    })
    return c.JSON(http.StatusCreated, customerResp{
        ID:        id,
        FirstName: in.FirstName,
        LastName:  in.LastName,
        Email:     in.Email,
        AddressID: in.AddressID,
        StoreID:   in.StoreID,
    })
}

// Update overwrites first_name, last_name and email.  Fields omitted from
// the body are written as NULL.
func (h *CustomerHandler) Update(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return invalidID(c)
    }
    var req model.CustomerUpdate
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    if err := h.Customers.Update(ctx, id, req); err != nil {
        return storeError(c, err)
    }
    h.publish(ctx, queue.StoreEvent{
        Type: queue.EventCustomerUpdated, CustomerID: id,
        FirstName: req.FirstName, LastName: req.LastName, Email: req.Email,
    })
    return c.JSON(http.StatusOK, customerResp{
        ID:        id,
        FirstName: req.FirstName,
        LastName:  req.LastName,
        Email:     req.Email,
    })
}

// Delete removes the customer and confirms with the name it had.
func (h *CustomerHandler) Delete(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return invalidID(c)
    }
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    first, last, err := h.Customers.Delete(ctx, id)
    if err != nil {
        return storeError(c, err)
    }
    h.publish(ctx, queue.StoreEvent{
        Type: queue.EventCustomerDeleted, CustomerID: id,
        FirstName: &first, LastName: &last,
    })
    return c.JSON(http.StatusOK, echo.Map{
        "message":     fmt.Sprintf("Customer %s %s deleted successfully", first, last),
        "customer_id": id,
    })
}

// Details returns the customer, the full rental history and statistics.
func (h *CustomerHandler) Details(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return invalidID(c)
    }
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    cust, err := h.Customers.GetByID(ctx, id)
    if err != nil {
        return storeError(c, err)
    }
    rentals, stats, err := h.Rentals.HistoryForCustomer(ctx, id)
    if err != nil {
        return storeError(c, err)
    }
    return c.JSON(http.StatusOK, model.CustomerDetail{
        Customer:   *cust,
        Rentals:    rentals,
        Statistics: stats,
    })
}

func (h *CustomerHandler) publish(ctx context.Context, ev queue.StoreEvent) {
    publish(ctx, h.Events, ev)
}

// publish hands the event to p, logging instead of failing.
func publish(ctx context.Context, p EventPublisher, ev queue.StoreEvent) {
    if p == nil {
        return
    }
    ev.OccurredAt = time.Now().UTC()
    if err := p.Publish(ctx, ev); err != nil {
        logging.Warn().Err(err).Str("event", ev.Type).Msg("store event dropped")
    }
}
