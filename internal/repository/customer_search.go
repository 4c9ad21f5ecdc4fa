package repository

import (
    "context"
    "strings"

    "github.com/iliyamo/sakila-rental-api/internal/model"
)

// CustomerFilter defines filters & pagination for searching customers.
// Nil filter fields impose no condition.
type CustomerFilter struct {
    ID        *uint64
    FirstName *string
    LastName  *string
    Page      int
    PerPage   int
}

// likeEscape is the LIKE escape character.  '!' avoids depending on
// whether the server treats backslash as an escape in literals.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// containsPattern builds a LIKE pattern matching v as a literal
// lower-cased substring.
func containsPattern(v string) string {
    return "%" + likeReplacer.Replace(strings.ToLower(v)) + "%"
}

// where folds the present filters into a conjunction, in the order
// id, first_name, last_name.  Name filters are case-insensitive literal
// substring matches.
func (f CustomerFilter) where() (string, []any) {
    where := []string{}
    args := []any{}

    if f.ID != nil {
        where = append(where, "customer_id = ?")
        args = append(args, *f.ID)
    }
    if f.FirstName != nil {
        where = append(where, "LOWER(first_name) LIKE ? ESCAPE '"+likeEscape+"'")
        args = append(args, containsPattern(*f.FirstName))
    }
    if f.LastName != nil {
        where = append(where, "LOWER(last_name) LIKE ? ESCAPE '"+likeEscape+"'")
        args = append(args, containsPattern(*f.LastName))
    }

    cond := "1=1"
    if len(where) > 0 {
        cond = strings.Join(where, " AND ")
    }
    return cond, args
}

// Search returns one page of customers matching the filter, ordered by id.
// There is no total count; an empty page marks the end.
func (r *CustomerRepo) Search(ctx context.Context, f CustomerFilter) ([]model.CustomerSummary, error) {
    if f.Page < 1 {
        f.Page = 1
    }
    if f.PerPage < 1 {
        f.PerPage = 10
    }
    cond, args := f.where()

    q := `SELECT customer_id, first_name, last_name, email
        FROM customer
        WHERE ` + cond + `
        ORDER BY customer_id
        LIMIT ? OFFSET ?`
    args = append(args, f.PerPage, (f.Page-1)*f.PerPage)

    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.CustomerSummary, 0, f.PerPage)
    for rows.Next() {
        var c model.CustomerSummary
        if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email); err != nil {
            return nil, err
        }
        out = append(out, c)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
