package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/sakila-rental-api/internal/model"
)

// FilmRepo serves film lookups and the film ranking reports.
type FilmRepo struct {
    db *sql.DB
}

func NewFilmRepo(db *sql.DB) *FilmRepo {
    return &FilmRepo{db: db}
}

// GetByID returns the film with the given id or ErrFilmNotFound.
func (r *FilmRepo) GetByID(ctx context.Context, id uint64) (*model.Film, error) {
    const q = `SELECT film_id, title, description, release_year, rating,
                      rental_duration, rental_rate, length, replacement_cost
               FROM film WHERE film_id = ?`
    var f model.Film
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &f.ID, &f.Title, &f.Description, &f.ReleaseYear, &f.Rating,
        &f.RentalDuration, &f.RentalRate, &f.Length, &f.ReplacementCost,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrFilmNotFound
        }
        return nil, err
    }
    return &f, nil
}

// TopRented ranks films by number of rentals.  A film listed under several
// categories appears once per category.
func (r *FilmRepo) TopRented(ctx context.Context) ([]model.TopFilm, error) {
    const q = `SELECT f.film_id, f.title, c.name, COUNT(*) AS rentals
               FROM rental r
               JOIN inventory i      ON r.inventory_id = i.inventory_id
               JOIN film f           ON i.film_id = f.film_id
               JOIN film_category fc ON f.film_id = fc.film_id
               JOIN category c       ON fc.category_id = c.category_id
               GROUP BY f.film_id, f.title, c.name
               ORDER BY rentals DESC
               LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, topN)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.TopFilm, 0, topN)
    for rows.Next() {
        var t model.TopFilm
        if err := rows.Scan(&t.ID, &t.Title, &t.Category, &t.Rentals); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// TopRevenue ranks films by the sum of payments taken on their rentals.
func (r *FilmRepo) TopRevenue(ctx context.Context) ([]model.FilmRevenue, error) {
    const q = `SELECT f.film_id, f.title, SUM(p.amount) AS revenue
               FROM payment p
               JOIN rental r    ON p.rental_id = r.rental_id
               JOIN inventory i ON r.inventory_id = i.inventory_id
               JOIN film f      ON i.film_id = f.film_id
               GROUP BY f.film_id, f.title
               ORDER BY revenue DESC
               LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, topN)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.FilmRevenue, 0, topN)
    for rows.Next() {
        var fr model.FilmRevenue
        if err := rows.Scan(&fr.ID, &fr.Title, &fr.Revenue); err != nil {
            return nil, err
        }
        out = append(out, fr)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
