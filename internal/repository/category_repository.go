package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/sakila-rental-api/internal/model"
)

type CategoryRepo struct {
    db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
    return &CategoryRepo{db: db}
}

// TopRented ranks categories by rentals of the films filed under them.
func (r *CategoryRepo) TopRented(ctx context.Context) ([]model.TopCategory, error) {
    const q = `SELECT c.category_id, c.name, COUNT(r.rental_id) AS rentals
               FROM rental r
               JOIN inventory i      ON r.inventory_id = i.inventory_id
               JOIN film f           ON i.film_id = f.film_id
               JOIN film_category fc ON f.film_id = fc.film_id
               JOIN category c       ON fc.category_id = c.category_id
               GROUP BY c.category_id, c.name
               ORDER BY rentals DESC
               LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, topN)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.TopCategory, 0, topN)
    for rows.Next() {
        var t model.TopCategory
        if err := rows.Scan(&t.ID, &t.Name, &t.Rentals); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
