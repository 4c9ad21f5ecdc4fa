package model

import "time"

// Rental status labels shown in a customer's history.
const (
    RentalStatusOut      = "Currently Rented"
    RentalStatusReturned = "Returned"
)

// RentalHistoryEntry is one rental in a customer's history, annotated
// with its status and how long the film has been (or was) out.
type RentalHistoryEntry struct {
    ID          uint64     `json:"rental_id"`
    InventoryID uint64     `json:"inventory_id"`
    FilmID      uint64     `json:"film_id"`
    Title       string     `json:"title"`
    RentalRate  float64    `json:"rental_rate"`
    RentalDate  time.Time  `json:"rental_date"`
    ReturnDate  *time.Time `json:"return_date"`
    Status      string     `json:"status"`
    DaysRented  int        `json:"days_rented"`
}

// RentalStatistics aggregates a customer's rental history.
// TotalRentals always equals CurrentRentals + CompletedRentals.
type RentalStatistics struct {
    TotalRentals     int     `json:"total_rentals"`
    CurrentRentals   int     `json:"current_rentals"`
    CompletedRentals int     `json:"completed_rentals"`
    TotalSpent       float64 `json:"total_spent"`
}

// CustomerDetail is the customer record with full rental history.
type CustomerDetail struct {
    Customer   Customer             `json:"customer"`
    Rentals    []RentalHistoryEntry `json:"rentals"`
    Statistics RentalStatistics     `json:"statistics"`
}
