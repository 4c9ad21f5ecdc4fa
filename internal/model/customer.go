package model

import "time"

// Customer mirrors a row of the `customer` table.
type Customer struct {
    ID         uint64    `json:"customer_id"`
    StoreID    uint64    `json:"store_id"`
    FirstName  string    `json:"first_name"`
    LastName   string    `json:"last_name"`
    Email      *string   `json:"email"`
    AddressID  uint64    `json:"address_id"`
    Active     int       `json:"active"`
    CreateDate time.Time `json:"create_date"`
}

// CustomerSummary is the row shape returned by customer search.
type CustomerSummary struct {
    ID        uint64  `json:"customer_id"`
    FirstName string  `json:"first_name"`
    LastName  string  `json:"last_name"`
    Email     *string `json:"email"`
}

// TopCustomer is one row of the most active customers report.
type TopCustomer struct {
    ID        uint64 `json:"customer_id"`
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
    Rentals   int64  `json:"rentals"`
}

// NewCustomer carries the create payload.  Name and email are passed
// through to the store as given, nil meaning NULL.  Nil address and
// store ids take the default of 1.
type NewCustomer struct {
    FirstName *string `json:"first_name"`
    LastName  *string `json:"last_name"`
    Email     *string `json:"email"`
    AddressID *uint64 `json:"address_id"`
    StoreID   *uint64 `json:"store_id"`
}

// CustomerUpdate carries the overwrite payload of an update.
type CustomerUpdate struct {
    FirstName *string `json:"first_name"`
    LastName  *string `json:"last_name"`
    Email     *string `json:"email"`
}
