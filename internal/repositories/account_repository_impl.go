package repositories

import (
	"context"
	"fmt"

	"finvox/internal/models"

	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

var _ AccountRepository = (*accountRepository)(nil)

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *models.CustomerAccount) error {
	if account.AccountID == "" || account.CustomerID == "" {
		return ErrInvalidAccountData
	}
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, accountID string) (*models.CustomerAccount, error) {
	var account models.CustomerAccount
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.CustomerAccount, error) {
	var accounts []*models.CustomerAccount
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) Credit(ctx context.Context, accountID string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	result := r.db.WithContext(ctx).
		Model(&models.CustomerAccount{}).
		Where("account_id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to credit account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) Debit(ctx context.Context, accountID string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	result := r.db.WithContext(ctx).
		Model(&models.CustomerAccount{}).
		Where("account_id = ? AND balance >= ?", accountID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to debit account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// The guard matched nothing: either the account does not exist
		// or the balance cannot cover the amount.
		if _, err := r.GetByID(ctx, accountID); err != nil {
			return err
		}
		return ErrInsufficientBalance
	}
	return nil
}

func (r *accountRepository) UpdateStatus(ctx context.Context, accountID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.CustomerAccount{}).
		Where("account_id = ?", accountID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update account status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
