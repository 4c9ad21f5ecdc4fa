// Package queue defines the store events exchanged over the message broker
// and the consumer that records them in an audit log.
package queue

import "time"

// Store event types.
const (
    EventCustomerCreated = "customer.created"
    EventCustomerUpdated = "customer.updated"
    EventCustomerDeleted = "customer.deleted"
    EventRentalReturned  = "rental.returned"
)

// StoreEvent is published after a successful write to the store.  Only the
// identifiers relevant to Type are set.
type StoreEvent struct {
    Type       string    `json:"type"`
    CustomerID uint64    `json:"customer_id,omitempty"`
    RentalID   uint64    `json:"rental_id,omitempty"`
    FirstName  *string   `json:"first_name,omitempty"`
    LastName   *string   `json:"last_name,omitempty"`
    Email      *string   `json:"email,omitempty"`
    OccurredAt time.Time `json:"occurred_at"`
}
