package repositories

import (
	"context"
	"errors"

	"finvox/internal/models"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAccountData  = errors.New("invalid account data")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// AccountRepository defines account queries and balance movements.
// Credit and Debit are expressed as single atomic SQL updates so two
// concurrent movements never lose a write.
type AccountRepository interface {
	Create(ctx context.Context, account *models.CustomerAccount) error
	GetByID(ctx context.Context, accountID string) (*models.CustomerAccount, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.CustomerAccount, error)
	Credit(ctx context.Context, accountID string, amount float64) error
	Debit(ctx context.Context, accountID string, amount float64) error
	UpdateStatus(ctx context.Context, accountID, status string) error
}
