package repositories

import (
	"context"
	"errors"
	"time"

	"finvox/internal/models"

	"github.com/google/uuid"
)

var ErrEMINotFound = errors.New("emi not found")

// EMIRepository defines installment queries and the two status
// transitions an installment can take. EMIs are never deleted; a payment
// or a missed due date only moves the status forward.
type EMIRepository interface {
	Create(ctx context.Context, emi *models.EMI) error
	GetByID(ctx context.Context, emiID uuid.UUID) (*models.EMI, error)
	ListByLoan(ctx context.Context, loanID string) ([]*models.EMI, error)
	// NextDue returns the earliest pending installment of a loan, the
	// number quoted when a caller asks "when is my next payment".
	NextDue(ctx context.Context, loanID string) (*models.EMI, error)
	LatestByLoan(ctx context.Context, loanID string) (*models.EMI, error)
	MarkPaid(ctx context.Context, emiID uuid.UUID, amountPaid float64, paidAt time.Time) error
	MarkOverdue(ctx context.Context, emiID uuid.UUID, penalty float64) error
}
