package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/sakila-rental-api/internal/model"
)

// CustomerRepo encapsulates all queries on the customer table.  Create,
// Update and Delete are the only writes the API performs on customers.
type CustomerRepo struct {
    db *sql.DB
}

// defaultID is the address and store used when a create omits them.
const defaultID uint64 = 1

func NewCustomerRepo(db *sql.DB) *CustomerRepo {
    return &CustomerRepo{db: db}
}

// GetByID fetches a customer or returns ErrCustomerNotFound.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
    const q = `SELECT customer_id, store_id, first_name, last_name, email,
                      address_id, active, create_date
               FROM customer WHERE customer_id = ?`
    var c model.Customer
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &c.ID, &c.StoreID, &c.FirstName, &c.LastName, &c.Email,
        &c.AddressID, &c.Active, &c.CreateDate,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrCustomerNotFound
        }
        return nil, err
    }
    return &c, nil
}

// Create inserts an active customer stamped with the server time and
// returns the assigned id.  Absent address or store ids default to 1;
// explicit values, zero included, reach the store unchanged.  Names and
// email are not validated here; NOT NULL and foreign key violations
// surface as store errors.
func (r *CustomerRepo) Create(ctx context.Context, in *model.NewCustomer) (uint64, error) {
    if in.AddressID == nil {
        id := defaultID
        in.AddressID = &id
    }
    if in.StoreID == nil {
        id := defaultID
        in.StoreID = &id
    }
    const q = `INSERT INTO customer (store_id, first_name, last_name, email, address_id, active, create_date)
               VALUES (?, ?, ?, ?, ?, 1, NOW())`
    res, err := r.db.ExecContext(ctx, q, in.StoreID, in.FirstName, in.LastName, in.Email, in.AddressID)
    if err != nil {
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// Update overwrites first_name, last_name and email.  Nil fields are
// written as NULL.  The existence check and the write share a transaction
// so a missing customer never sees an UPDATE.
func (r *CustomerRepo) Update(ctx context.Context, id uint64, in model.CustomerUpdate) (err error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()

    if err = lockCustomer(ctx, tx, id, nil, nil); err != nil {
        return err
    }
    const q = "UPDATE customer SET first_name = ?, last_name = ?, email = ? WHERE customer_id = ?"
    if _, err = tx.ExecContext(ctx, q, in.FirstName, in.LastName, in.Email, id); err != nil {
        return err
    }
    return tx.Commit()
}

// Delete removes the customer and returns the name read just before the
// delete, for the confirmation message.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) (firstName, lastName string, err error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return "", "", err
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()

    if err = lockCustomer(ctx, tx, id, &firstName, &lastName); err != nil {
        return "", "", err
    }
    if _, err = tx.ExecContext(ctx, "DELETE FROM customer WHERE customer_id = ?", id); err != nil {
        return "", "", err
    }
    if err = tx.Commit(); err != nil {
        return "", "", err
    }
    return firstName, lastName, nil
}

// lockCustomer locks the customer row for the rest of tx, optionally
// reading its name.  ErrCustomerNotFound when no row matches.
func lockCustomer(ctx context.Context, tx *sql.Tx, id uint64, firstName, lastName *string) error {
    const q = "SELECT first_name, last_name FROM customer WHERE customer_id = ? FOR UPDATE"
    var fn, ln sql.NullString
    if err := tx.QueryRowContext(ctx, q, id).Scan(&fn, &ln); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrCustomerNotFound
        }
        return err
    }
    if firstName != nil {
        *firstName = fn.String
    }
    if lastName != nil {
        *lastName = ln.String
    }
    return nil
}

// TopRenters ranks customers by number of rentals.
func (r *CustomerRepo) TopRenters(ctx context.Context) ([]model.TopCustomer, error) {
    const q = `SELECT c.customer_id, c.first_name, c.last_name, COUNT(r.rental_id) AS rentals
               FROM customer c
               JOIN rental r ON c.customer_id = r.customer_id
               GROUP BY c.customer_id, c.first_name, c.last_name
               ORDER BY rentals DESC
               LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, topN)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.TopCustomer, 0, topN)
    for rows.Next() {
        var t model.TopCustomer
        if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Rentals); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
