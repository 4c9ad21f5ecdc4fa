package repository

import (
    "context"
    "regexp"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/sakila-rental-api/internal/model"
)

func TestRentalRepo_HistoryForCustomer(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    rented := time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)
    cols := []string{"rental_id", "inventory_id", "film_id", "title", "rental_rate", "rental_date", "return_date", "days_rented"}
    mock.ExpectQuery(regexp.QuoteMeta(
        "GREATEST(TIMESTAMPDIFF(DAY, r.rental_date, COALESCE(r.return_date, NOW())), 0) AS days_rented")).
        WithArgs(1).
        WillReturnRows(sqlmock.NewRows(cols).
            AddRow(3, 30, 300, "OUT NOW", 4.99, rented, nil, 2).
            AddRow(2, 20, 200, "SECOND", 2.99, rented.AddDate(0, 0, -10), rented.AddDate(0, 0, -7), 3).
            AddRow(1, 10, 100, "FIRST", 0.99, rented.AddDate(0, 0, -30), rented.AddDate(0, 0, -28), 2))

    rentals, stats, err := NewRentalRepo(db).HistoryForCustomer(context.Background(), 1)
    require.NoError(t, err)
    require.Len(t, rentals, 3)

    assert.Equal(t, model.RentalStatusOut, rentals[0].Status)
    assert.Nil(t, rentals[0].ReturnDate)
    assert.Equal(t, 2, rentals[0].DaysRented)

    assert.Equal(t, model.RentalStatusReturned, rentals[1].Status)
    require.NotNil(t, rentals[1].ReturnDate)
    assert.Equal(t, 3, rentals[1].DaysRented)
    assert.Equal(t, 2, rentals[2].DaysRented)

    assert.Equal(t, 3, stats.TotalRentals)
    assert.Equal(t, 1, stats.CurrentRentals)
    assert.Equal(t, 2, stats.CompletedRentals)
    assert.Equal(t, stats.TotalRentals, stats.CurrentRentals+stats.CompletedRentals)
    assert.InDelta(t, 3.98, stats.TotalSpent, 0.0001)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepo_HistoryForCustomer_Empty(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectQuery("FROM rental r").
        WithArgs(5).
        WillReturnRows(sqlmock.NewRows([]string{"rental_id", "inventory_id", "film_id", "title", "rental_rate", "rental_date", "return_date", "days_rented"}))

    rentals, stats, err := NewRentalRepo(db).HistoryForCustomer(context.Background(), 5)
    require.NoError(t, err)
    assert.NotNil(t, rentals)
    assert.Empty(t, rentals)
    assert.Equal(t, model.RentalStatistics{}, stats)
}

func TestRentalRepo_Return(t *testing.T) {
    ctx := context.Background()
    lock := regexp.QuoteMeta("SELECT return_date FROM rental WHERE rental_id = ? FOR UPDATE")

    t.Run("Outstanding", func(t *testing.T) {
        db, mock, err := sqlmock.New()
        require.NoError(t, err)
        defer db.Close()

        mock.ExpectBegin()
        mock.ExpectQuery(lock).WithArgs(11).
            WillReturnRows(sqlmock.NewRows([]string{"return_date"}).AddRow(nil))
        mock.ExpectExec(regexp.QuoteMeta("UPDATE rental SET return_date = NOW() WHERE rental_id = ? AND return_date IS NULL")).
            WithArgs(11).
            WillReturnResult(sqlmock.NewResult(0, 1))
        mock.ExpectCommit()

        require.NoError(t, NewRentalRepo(db).Return(ctx, 11))
        assert.NoError(t, mock.ExpectationsWereMet())
    })

    t.Run("AlreadyReturnedIsNoop", func(t *testing.T) {
        db, mock, err := sqlmock.New()
        require.NoError(t, err)
        defer db.Close()

        mock.ExpectBegin()
        mock.ExpectQuery(lock).WithArgs(12).
            WillReturnRows(sqlmock.NewRows([]string{"return_date"}).AddRow(time.Date(2005, 5, 26, 22, 4, 30, 0, time.UTC)))
        mock.ExpectCommit()

        require.NoError(t, NewRentalRepo(db).Return(ctx, 12))
        assert.NoError(t, mock.ExpectationsWereMet())
    })

    t.Run("NotFound", func(t *testing.T) {
        db, mock, err := sqlmock.New()
        require.NoError(t, err)
        defer db.Close()

        mock.ExpectBegin()
        mock.ExpectQuery(lock).WithArgs(99999999).
            WillReturnRows(sqlmock.NewRows([]string{"return_date"}))
        mock.ExpectRollback()

        err = NewRentalRepo(db).Return(ctx, 99999999)
        assert.ErrorIs(t, err, ErrRentalNotFound)
        assert.NoError(t, mock.ExpectationsWereMet())
    })
}
