package repository

import (
    "context"
    "database/sql"
    "errors"
    "math"

    "github.com/iliyamo/sakila-rental-api/internal/model"
)

// RentalRepo serves rental history and the return operation.
type RentalRepo struct {
    db *sql.DB
}

func NewRentalRepo(db *sql.DB) *RentalRepo {
    return &RentalRepo{db: db}
}

// HistoryForCustomer lists every rental of the customer, newest first,
// together with the aggregate statistics.  It does not check that the
// customer exists; callers do that first.  days_rented is computed by the
// store so both ends share its clock and time zone.
func (r *RentalRepo) HistoryForCustomer(ctx context.Context, customerID uint64) ([]model.RentalHistoryEntry, model.RentalStatistics, error) {
    const q = `SELECT r.rental_id, r.inventory_id, f.film_id, f.title, f.rental_rate,
                      r.rental_date, r.return_date,
                      GREATEST(TIMESTAMPDIFF(DAY, r.rental_date, COALESCE(r.return_date, NOW())), 0) AS days_rented
               FROM rental r
               JOIN inventory i ON r.inventory_id = i.inventory_id
               JOIN film f      ON i.film_id = f.film_id
               WHERE r.customer_id = ?
               ORDER BY r.rental_date DESC`
    var stats model.RentalStatistics
    rows, err := r.db.QueryContext(ctx, q, customerID)
    if err != nil {
        return nil, stats, err
    }
    defer rows.Close()

    out := []model.RentalHistoryEntry{}
    for rows.Next() {
        var (
            e        model.RentalHistoryEntry
            returned sql.NullTime
        )
        if err := rows.Scan(&e.ID, &e.InventoryID, &e.FilmID, &e.Title, &e.RentalRate, &e.RentalDate, &returned, &e.DaysRented); err != nil {
            return nil, stats, err
        }
        if returned.Valid {
            t := returned.Time
            e.ReturnDate = &t
            e.Status = model.RentalStatusReturned
            stats.CompletedRentals++
            stats.TotalSpent += e.RentalRate
        } else {
            e.Status = model.RentalStatusOut
            stats.CurrentRentals++
        }
        out = append(out, e)
    }
    if err := rows.Err(); err != nil {
        return nil, stats, err
    }
    stats.TotalRentals = len(out)
    stats.TotalSpent = math.Round(stats.TotalSpent*100) / 100
    return out, stats, nil
}

// Return stamps return_date with the server time if the rental is still
// outstanding.  Returning an already returned rental succeeds without
// changing it.  ErrRentalNotFound when the id does not exist.
func (r *RentalRepo) Return(ctx context.Context, id uint64) (err error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()

    var returned sql.NullTime
    const qLock = "SELECT return_date FROM rental WHERE rental_id = ? FOR UPDATE"
    if err = tx.QueryRowContext(ctx, qLock, id).Scan(&returned); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrRentalNotFound
        }
        return err
    }
    if !returned.Valid {
        const q = "UPDATE rental SET return_date = NOW() WHERE rental_id = ? AND return_date IS NULL"
        if _, err = tx.ExecContext(ctx, q, id); err != nil {
            return err
        }
    }
    return tx.Commit()
}
