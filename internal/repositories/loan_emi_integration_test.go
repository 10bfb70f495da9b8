//go:build integration

package repositories_test

import (
	"context"
	"testing"
	"time"

	"finvox/internal/models"
	"finvox/internal/repositories"
	"finvox/internal/seed"
	"finvox/internal/services"
	"finvox/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanRepository_CreateWithSchedule(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()

	customers := repositories.NewCustomerRepository(ts.Store.DB())
	loans := repositories.NewLoanRepository(ts.Store.DB())
	emis := repositories.NewEMIRepository(ts.Store.DB())
	calc := services.NewEMICalculator()

	f, err := seed.NewFixture()
	require.NoError(t, err)
	require.NoError(t, customers.Create(ctx, f.Customer()))

	loan := f.Loan()
	schedule := calc.Schedule(loan)
	require.NoError(t, loans.CreateWithSchedule(ctx, loan, schedule))

	got, err := loans.GetByID(ctx, loan.LoanID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanStatusActive, got.Status)

	rows, err := emis.ListByLoan(ctx, loan.LoanID)
	require.NoError(t, err)
	require.Len(t, rows, loan.TenureMonths)

	// ListByLoan orders by due date; the first row is the first
	// installment.
	assert.Equal(t, 22727.84, rows[0].AmountDue)
	assert.True(t, rows[0].DueDate.Before(rows[len(rows)-1].DueDate))

	next, err := emis.NextDue(ctx, loan.LoanID)
	require.NoError(t, err)
	assert.Equal(t, rows[0].EMIID, next.EMIID)
}

func TestLoanRepository_ListByCustomerAndStatus(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()

	customers := repositories.NewCustomerRepository(ts.Store.DB())
	loans := repositories.NewLoanRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)
	require.NoError(t, customers.Create(ctx, f.Customer()))

	loan := f.Loan()
	require.NoError(t, loans.Create(ctx, loan))

	list, err := loans.ListByCustomer(ctx, f.CustomerID())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, loan.LoanID, list[0].LoanID)

	require.NoError(t, loans.UpdateStatus(ctx, loan.LoanID, models.LoanStatusClosed))
	got, err := loans.GetByID(ctx, loan.LoanID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanStatusClosed, got.Status)

	assert.ErrorIs(t,
		loans.UpdateStatus(ctx, "LN00000000", models.LoanStatusClosed),
		repositories.ErrLoanNotFound)
}

func TestEMIRepository_StatusTransitions(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()

	customers := repositories.NewCustomerRepository(ts.Store.DB())
	loans := repositories.NewLoanRepository(ts.Store.DB())
	emis := repositories.NewEMIRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)
	require.NoError(t, customers.Create(ctx, f.Customer()))

	loan := f.Loan()
	require.NoError(t, loans.Create(ctx, loan))

	first := &models.EMI{
		LoanID:    loan.LoanID,
		DueDate:   time.Now().UTC().Add(-24 * time.Hour),
		AmountDue: 22727.84,
		Status:    models.EMIStatusPending,
	}
	second := &models.EMI{
		LoanID:    loan.LoanID,
		DueDate:   time.Now().UTC().Add(29 * 24 * time.Hour),
		AmountDue: 22727.84,
		Status:    models.EMIStatusPending,
	}
	require.NoError(t, emis.Create(ctx, first))
	require.NoError(t, emis.Create(ctx, second))

	t.Run("mark paid", func(t *testing.T) {
		paidAt := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, emis.MarkPaid(ctx, first.EMIID, first.AmountDue, paidAt))

		got, err := emis.GetByID(ctx, first.EMIID)
		require.NoError(t, err)
		assert.Equal(t, models.EMIStatusPaid, got.Status)
		assert.Equal(t, first.AmountDue, got.AmountPaid)
		require.NotNil(t, got.PaymentDate)
		assert.WithinDuration(t, paidAt, *got.PaymentDate, time.Second)
	})

	t.Run("next due moves forward", func(t *testing.T) {
		next, err := emis.NextDue(ctx, loan.LoanID)
		require.NoError(t, err)
		assert.Equal(t, second.EMIID, next.EMIID)
	})

	t.Run("mark overdue with penalty", func(t *testing.T) {
		require.NoError(t, emis.MarkOverdue(ctx, second.EMIID, 500))

		got, err := emis.GetByID(ctx, second.EMIID)
		require.NoError(t, err)
		assert.Equal(t, models.EMIStatusOverdue, got.Status)
		assert.Equal(t, 500.0, got.PenaltyCharged)
		assert.Nil(t, got.PaymentDate)
	})

	t.Run("latest by loan", func(t *testing.T) {
		latest, err := emis.LatestByLoan(ctx, loan.LoanID)
		require.NoError(t, err)
		assert.Equal(t, second.EMIID, latest.EMIID)
	})
}
