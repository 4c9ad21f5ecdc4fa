package model

// Film mirrors a row of the `film` table.  Nullable columns are pointers
// so that NULL is rendered as JSON null.
type Film struct {
    ID              uint64  `json:"film_id"`
    Title           string  `json:"title"`
    Description     *string `json:"description"`
    ReleaseYear     *int    `json:"release_year"`
    Rating          *string `json:"rating"`
    RentalDuration  int     `json:"rental_duration"`
    RentalRate      float64 `json:"rental_rate"`
    Length          *int    `json:"length"`
    ReplacementCost float64 `json:"replacement_cost"`
}

// TopFilm is one row of the most-rented films report.
type TopFilm struct {
    ID       uint64 `json:"film_id"`
    Title    string `json:"title"`
    Category string `json:"category"`
    Rentals  int64  `json:"rentals"`
}

// FilmRevenue is one row of the revenue report.
type FilmRevenue struct {
    ID      uint64  `json:"film_id"`
    Title   string  `json:"title"`
    Revenue float64 `json:"revenue"`
}
