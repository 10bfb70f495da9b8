package repositories

import (
	"context"
	"fmt"
	"time"

	"finvox/internal/models"

	"gorm.io/gorm"
)

type otpRepository struct {
	db *gorm.DB
}

var _ OTPRepository = (*otpRepository)(nil)

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(ctx context.Context, otp *models.OTP) error {
	if otp.PhoneNumber == "" || otp.OTPCode == "" {
		return ErrInvalidOTP
	}
	if otp.ExpiresAt.IsZero() {
		otp.ExpiresAt = time.Now().UTC().Add(models.OTPValidity)
	}
	if err := r.db.WithContext(ctx).Create(otp).Error; err != nil {
		return fmt.Errorf("failed to create otp: %w", err)
	}
	return nil
}

func (r *otpRepository) LatestValid(ctx context.Context, phoneNumber string, now time.Time) (*models.OTP, error) {
	var otp models.OTP
	err := r.db.WithContext(ctx).
		Where("phone_number = ? AND expires_at > ?", phoneNumber, now).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get latest otp: %w", err)
	}
	return &otp, nil
}

// Verify checks the entered code against the newest unexpired passcode
// and deletes it on success. The delete's row count is checked: if a
// concurrent attempt consumed the row first, this one reports
// ErrOTPNotFound, so a code verifies exactly once.
func (r *otpRepository) Verify(ctx context.Context, phoneNumber, code string, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &otpRepository{db: tx}

		otp, err := txRepo.LatestValid(ctx, phoneNumber, now)
		if err != nil {
			return err
		}
		if otp.OTPCode != code {
			return ErrOTPMismatch
		}
		result := tx.Delete(otp)
		if result.Error != nil {
			return fmt.Errorf("failed to consume otp: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrOTPNotFound
		}
		return nil
	})
}

func (r *otpRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&models.OTP{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired otps: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *otpRepository) DeleteByPhone(ctx context.Context, phoneNumber string) error {
	err := r.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Delete(&models.OTP{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete otps for phone: %w", err)
	}
	return nil
}
