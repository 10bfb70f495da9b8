package repositories

import (
	"context"
	"errors"
	"time"

	"finvox/internal/models"
)

var (
	ErrOTPNotFound = errors.New("no valid otp for phone number")
	ErrOTPMismatch = errors.New("otp code does not match")
	ErrInvalidOTP  = errors.New("invalid otp data")
)

// OTPRepository manages one-time passcodes for caller verification.
// Verification consumes the row, so a code can never be replayed even
// inside its validity window.
type OTPRepository interface {
	Create(ctx context.Context, otp *models.OTP) error
	// LatestValid returns the newest unexpired passcode for a phone
	// number. Expiry is strict: a code expiring exactly now is invalid.
	LatestValid(ctx context.Context, phoneNumber string, now time.Time) (*models.OTP, error)
	Verify(ctx context.Context, phoneNumber, code string, now time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteByPhone(ctx context.Context, phoneNumber string) error
}
