package repositories

import (
	"context"
	"errors"

	"finvox/internal/models"
)

var (
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidTransactionData = errors.New("invalid transaction data")
)

// TransactionRepository records ledger entries and serves statement
// queries. The ledger is append-only: there is deliberately no update or
// delete here, corrections are posted as new entries.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	GetByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*models.Transaction, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*models.Transaction, error)
}
