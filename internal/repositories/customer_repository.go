package repositories

import (
	"context"
	"errors"

	"finvox/internal/models"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerData = errors.New("invalid customer data")
)

// CustomerRepository defines the identity lookups used by caller
// verification and account servicing.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, customerID string) (*models.Customer, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*models.Customer, error)
	// GetByAccountID resolves the owner of an account, the lookup the
	// voice flow starts from when a caller reads out a card number.
	GetByAccountID(ctx context.Context, accountID string) (*models.Customer, error)
	UpdateKYCStatus(ctx context.Context, customerID, status string) error
}
