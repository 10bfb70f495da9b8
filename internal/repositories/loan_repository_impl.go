package repositories

import (
	"context"
	"fmt"

	"finvox/internal/models"

	"gorm.io/gorm"
)

type loanRepository struct {
	db *gorm.DB
}

var _ LoanRepository = (*loanRepository)(nil)

func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	if loan.LoanID == "" || loan.CustomerID == "" {
		return ErrInvalidLoanData
	}
	if err := r.db.WithContext(ctx).Create(loan).Error; err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

func (r *loanRepository) CreateWithSchedule(ctx context.Context, loan *models.Loan, schedule []models.EMI) error {
	if loan.LoanID == "" || loan.CustomerID == "" {
		return ErrInvalidLoanData
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(loan).Error; err != nil {
			return fmt.Errorf("failed to create loan: %w", err)
		}
		for i := range schedule {
			schedule[i].LoanID = loan.LoanID
		}
		if len(schedule) > 0 {
			if err := tx.Create(&schedule).Error; err != nil {
				return fmt.Errorf("failed to create emi schedule: %w", err)
			}
		}
		return nil
	})
}

func (r *loanRepository) GetByID(ctx context.Context, loanID string) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&loan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return &loan, nil
}

func (r *loanRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&loans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

func (r *loanRepository) UpdateStatus(ctx context.Context, loanID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("loan_id = ?", loanID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update loan status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLoanNotFound
	}
	return nil
}
