package repositories

import (
	"context"
	"fmt"

	"finvox/internal/models"

	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

var _ CustomerRepository = (*customerRepository)(nil)

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.CustomerID == "" || customer.FullName == "" {
		return ErrInvalidCustomerData
	}
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, customerID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&customer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phoneNumber string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&customer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by phone: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) GetByAccountID(ctx context.Context, accountID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Joins("JOIN customer_account ON customer_account.customer_id = customer.customer_id").
		Where("customer_account.account_id = ?", accountID).
		First(&customer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by account: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) UpdateKYCStatus(ctx context.Context, customerID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("customer_id = ?", customerID).
		Update("kyc_status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update kyc status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
