package repositories

import (
	"context"
	"fmt"
	"time"

	"finvox/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type emiRepository struct {
	db *gorm.DB
}

var _ EMIRepository = (*emiRepository)(nil)

func NewEMIRepository(db *gorm.DB) EMIRepository {
	return &emiRepository{db: db}
}

func (r *emiRepository) Create(ctx context.Context, emi *models.EMI) error {
	if err := r.db.WithContext(ctx).Create(emi).Error; err != nil {
		return fmt.Errorf("failed to create emi: %w", err)
	}
	return nil
}

func (r *emiRepository) GetByID(ctx context.Context, emiID uuid.UUID) (*models.EMI, error) {
	var emi models.EMI
	err := r.db.WithContext(ctx).Where("emi_id = ?", emiID).First(&emi).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEMINotFound
		}
		return nil, fmt.Errorf("failed to get emi: %w", err)
	}
	return &emi, nil
}

func (r *emiRepository) ListByLoan(ctx context.Context, loanID string) ([]*models.EMI, error) {
	var emis []*models.EMI
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("due_date ASC").
		Find(&emis).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list emis: %w", err)
	}
	return emis, nil
}

func (r *emiRepository) NextDue(ctx context.Context, loanID string) (*models.EMI, error) {
	var emi models.EMI
	err := r.db.WithContext(ctx).
		Where("loan_id = ? AND status = ?", loanID, models.EMIStatusPending).
		Order("due_date ASC").
		First(&emi).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEMINotFound
		}
		return nil, fmt.Errorf("failed to get next due emi: %w", err)
	}
	return &emi, nil
}

func (r *emiRepository) LatestByLoan(ctx context.Context, loanID string) (*models.EMI, error) {
	var emi models.EMI
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("created_at DESC").
		First(&emi).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEMINotFound
		}
		return nil, fmt.Errorf("failed to get latest emi: %w", err)
	}
	return &emi, nil
}

func (r *emiRepository) MarkPaid(ctx context.Context, emiID uuid.UUID, amountPaid float64, paidAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.EMI{}).
		Where("emi_id = ?", emiID).
		Updates(map[string]interface{}{
			"amount_paid":  amountPaid,
			"payment_date": paidAt,
			"status":       models.EMIStatusPaid,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark emi paid: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEMINotFound
	}
	return nil
}

func (r *emiRepository) MarkOverdue(ctx context.Context, emiID uuid.UUID, penalty float64) error {
	result := r.db.WithContext(ctx).
		Model(&models.EMI{}).
		Where("emi_id = ?", emiID).
		Updates(map[string]interface{}{
			"status":          models.EMIStatusOverdue,
			"penalty_charged": penalty,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark emi overdue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEMINotFound
	}
	return nil
}
