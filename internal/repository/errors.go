// Package repository holds the SQL behind every endpoint of the API.
// Each repository wraps a *sql.DB pool; methods take a context so the
// caller's deadline bounds the store round trip.
//
// Lookups that match no row return one of the sentinel errors below so
// handlers can tell "absent" apart from a store failure.
package repository

import "errors"

var (
    ErrFilmNotFound     = errors.New("film not found")
    ErrActorNotFound    = errors.New("actor not found")
    ErrCustomerNotFound = errors.New("customer not found")
    ErrRentalNotFound   = errors.New("rental not found")
)

// topN caps every ranking report.
const topN = 5
