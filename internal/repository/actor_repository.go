package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/sakila-rental-api/internal/model"
)

// ActorRepo serves actor lookups and the actor ranking report.
type ActorRepo struct {
    db *sql.DB
}

func NewActorRepo(db *sql.DB) *ActorRepo {
    return &ActorRepo{db: db}
}

// GetByID returns the actor row or ErrActorNotFound.
func (r *ActorRepo) GetByID(ctx context.Context, id uint64) (*model.Actor, error) {
    const q = "SELECT actor_id, first_name, last_name FROM actor WHERE actor_id = ?"
    var a model.Actor
    if err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrActorNotFound
        }
        return nil, err
    }
    return &a, nil
}

// TopRented ranks actors by how often the films they appear in were rented.
func (r *ActorRepo) TopRented(ctx context.Context) ([]model.TopActor, error) {
    const q = `SELECT a.actor_id, CONCAT(a.first_name, ' ', a.last_name) AS name,
                      COUNT(r.rental_id) AS film_count
               FROM actor a
               JOIN film_actor fa ON a.actor_id = fa.actor_id
               JOIN film f        ON fa.film_id = f.film_id
               JOIN inventory i   ON f.film_id = i.film_id
               JOIN rental r      ON i.inventory_id = r.inventory_id
               GROUP BY a.actor_id, a.first_name, a.last_name
               ORDER BY film_count DESC
               LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, topN)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.TopActor, 0, topN)
    for rows.Next() {
        var t model.TopActor
        if err := rows.Scan(&t.ID, &t.Name, &t.FilmCount); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// TopFilms returns the actor's most rented films.
func (r *ActorRepo) TopFilms(ctx context.Context, actorID uint64) ([]model.ActorFilm, error) {
    const q = `SELECT f.film_id, f.title, COUNT(r.rental_id) AS rentals
               FROM film_actor fa
               JOIN film f      ON fa.film_id = f.film_id
               JOIN inventory i ON f.film_id = i.film_id
               JOIN rental r    ON i.inventory_id = r.inventory_id
               WHERE fa.actor_id = ?
               GROUP BY f.film_id, f.title
               ORDER BY rentals DESC
               LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, actorID, topN)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.ActorFilm, 0, topN)
    for rows.Next() {
        var af model.ActorFilm
        if err := rows.Scan(&af.ID, &af.Title, &af.Rentals); err != nil {
            return nil, err
        }
        out = append(out, af)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Detail runs the two-step lookup: the actor row first, then the top films
// only when the actor exists.
func (r *ActorRepo) Detail(ctx context.Context, id uint64) (*model.ActorDetail, error) {
    a, err := r.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    films, err := r.TopFilms(ctx, id)
    if err != nil {
        return nil, err
    }
    return &model.ActorDetail{Actor: *a, TopFilms: films}, nil
}
