package model

// Actor mirrors a row of the `actor` table.
type Actor struct {
    ID        uint64 `json:"actor_id"`
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
}

// TopActor is one row of the most-rented actors report.  Name is
// first_name and last_name joined by a space.
type TopActor struct {
    ID        uint64 `json:"actor_id"`
    Name      string `json:"name"`
    FilmCount int64  `json:"film_count"`
}

// ActorFilm is one of an actor's most rented films.
type ActorFilm struct {
    ID      uint64 `json:"film_id"`
    Title   string `json:"title"`
    Rentals int64  `json:"rentals"`
}

// ActorDetail is the actor record plus the actor's top films.
type ActorDetail struct {
    Actor    Actor       `json:"actor"`
    TopFilms []ActorFilm `json:"top_films"`
}
