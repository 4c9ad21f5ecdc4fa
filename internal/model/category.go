package model

// TopCategory is one row of the most-rented categories report.
type TopCategory struct {
    ID      uint64 `json:"category_id"`
    Name    string `json:"name"`
    Rentals int64  `json:"rentals"`
}
