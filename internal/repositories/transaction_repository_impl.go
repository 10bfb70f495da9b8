package repositories

import (
	"context"
	"fmt"

	"finvox/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

var _ TransactionRepository = (*transactionRepository)(nil)

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.TransactionID == "" || txn.AccountID == "" || txn.CustomerID == "" {
		return ErrInvalidTransactionData
	}
	if txn.Amount <= 0 {
		return ErrInvalidAmount
	}
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&txn).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("transaction_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by account: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("transaction_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by customer: %w", err)
	}
	return txns, nil
}
