package repositories

import (
	"context"
	"errors"

	"finvox/internal/models"
)

var (
	ErrLoanNotFound    = errors.New("loan not found")
	ErrInvalidLoanData = errors.New("invalid loan data")
)

// LoanRepository defines loan origination and servicing queries.
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	// CreateWithSchedule persists a loan together with its amortized
	// installment rows in one transaction, so a half-originated loan can
	// never be observed.
	CreateWithSchedule(ctx context.Context, loan *models.Loan, schedule []models.EMI) error
	GetByID(ctx context.Context, loanID string) (*models.Loan, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Loan, error)
	UpdateStatus(ctx context.Context, loanID, status string) error
}
