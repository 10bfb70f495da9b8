//go:build integration

package repositories_test

import (
	"context"
	"testing"

	"finvox/internal/models"
	"finvox/internal/repositories"
	"finvox/internal/seed"
	"finvox/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_AppendAndList(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()

	customers := repositories.NewCustomerRepository(ts.Store.DB())
	accounts := repositories.NewAccountRepository(ts.Store.DB())
	transactions := repositories.NewTransactionRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)
	require.NoError(t, customers.Create(ctx, f.Customer()))
	require.NoError(t, accounts.Create(ctx, f.Account()))

	for i := 1; i <= 5; i++ {
		txn := f.Transaction(i, float64(i)*1000)
		require.NoError(t, transactions.Create(ctx, txn))
		assert.False(t, txn.TransactionDate.IsZero(), "write path must stamp transaction_date")
	}

	t.Run("newest first with paging", func(t *testing.T) {
		page, err := transactions.ListByAccount(ctx, f.AccountID(), 2, 0)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, f.TransactionID(5), page[0].TransactionID)
		assert.Equal(t, f.TransactionID(4), page[1].TransactionID)

		rest, err := transactions.ListByAccount(ctx, f.AccountID(), 10, 2)
		require.NoError(t, err)
		require.Len(t, rest, 3)
		assert.Equal(t, f.TransactionID(3), rest[0].TransactionID)
	})

	t.Run("by customer", func(t *testing.T) {
		all, err := transactions.ListByCustomer(ctx, f.CustomerID(), 10, 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := transactions.GetByID(ctx, f.TransactionID(1))
		require.NoError(t, err)
		assert.Equal(t, models.TransactionTypeDeposit, got.TransactionType)
		assert.Equal(t, 1000.0, got.Amount)
	})
}

func TestTransactionRepository_CreateValidation(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()
	transactions := repositories.NewTransactionRepository(ts.Store.DB())

	err := transactions.Create(ctx, &models.Transaction{TransactionID: "TXNNOACCOUNT"})
	assert.ErrorIs(t, err, repositories.ErrInvalidTransactionData)

	f, ferr := seed.NewFixture()
	require.NoError(t, ferr)

	txn := f.Transaction(1, 100)
	txn.Amount = -5
	assert.ErrorIs(t, transactions.Create(ctx, txn), repositories.ErrInvalidAmount)
}
