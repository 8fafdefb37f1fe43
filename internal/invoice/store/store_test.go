package store_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme/dashboard/internal/invoice"
	"github.com/acme/dashboard/internal/invoice/store"
)

func newMock(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_CreateInvoice(t *testing.T) {
	s, mock := newMock(t)

	id := uuid.New()
	customerID := uuid.New()
	date := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	inv := &invoice.Invoice{
		CustomerID: customerID,
		Amount:     2550,
		Status:     invoice.StatusPending,
		Date:       date,
	}

	mock.ExpectQuery("INSERT INTO invoices").
		WithArgs(customerID, int64(2550), invoice.StatusPending, date).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	require.NoError(t, s.CreateInvoice(context.Background(), inv))
	assert.Equal(t, id, inv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetInvoice(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		s, mock := newMock(t)

		id := uuid.New()
		customerID := uuid.New()
		date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT id, customer_id, amount, status, date").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
				AddRow(id.String(), customerID.String(), int64(1000), "paid", date))

		inv, err := s.GetInvoice(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, inv.ID)
		assert.Equal(t, customerID, inv.CustomerID)
		assert.Equal(t, int64(1000), inv.Amount)
		assert.Equal(t, invoice.StatusPaid, inv.Status)
		assert.Equal(t, date, inv.Date)
	})

	t.Run("NotFound", func(t *testing.T) {
		s, mock := newMock(t)

		id := uuid.New()

		mock.ExpectQuery("SELECT id, customer_id, amount, status, date").
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		inv, err := s.GetInvoice(context.Background(), id)

		assert.Nil(t, inv)
		assert.ErrorIs(t, err, invoice.ErrNotFound)
	})
}

func TestStore_ListInvoices(t *testing.T) {
	s, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
		AddRow(uuid.NewString(), uuid.NewString(), int64(2550), "pending", time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)).
		AddRow(uuid.NewString(), uuid.NewString(), int64(100), "paid", time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery("ORDER BY date DESC").WillReturnRows(rows)

	invs, err := s.ListInvoices(context.Background())

	require.NoError(t, err)
	assert.Len(t, invs, 2)
}

// The update statement only rewrites the mutable columns; neither the id
// nor the creation date appear in the SET clause.
func TestStore_UpdateInvoice(t *testing.T) {
	s, mock := newMock(t)

	id := uuid.New()
	customerID := uuid.New()

	inv := &invoice.Invoice{
		ID:         id,
		CustomerID: customerID,
		Amount:     9900,
		Status:     invoice.StatusPaid,
	}

	mock.ExpectExec(regexp.QuoteMeta("SET customer_id = $1, amount = $2, status = $3")).
		WithArgs(customerID, int64(9900), invoice.StatusPaid, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateInvoice(context.Background(), inv))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteInvoice(t *testing.T) {
	s, mock := newMock(t)

	id := uuid.New()

	mock.ExpectExec("DELETE FROM invoices").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DeleteInvoice(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
