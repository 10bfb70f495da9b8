package models

import (
	"time"
)

// OTPValidity is how long a one-time passcode stays verifiable after it
// is issued.
const OTPValidity = 5 * time.Minute

// OTPCodeLength is the number of digits in a generated passcode.
const OTPCodeLength = 6

// OTP is a one-time passcode issued to a phone number during caller
// verification. A successful verification deletes the row so the code
// cannot be replayed.
type OTP struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(15);not null;index"`
	OTPCode     string    `gorm:"column:otp_code;type:varchar(6);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	ExpiresAt   time.Time `gorm:"column:expires_at;not null"`
}

func (OTP) TableName() string {
	return "otps"
}

// ExpiredAt reports whether the passcode is no longer verifiable. A code
// is valid strictly before expires_at, so at the expiry instant it is
// already expired — the same boundary the repository's expires_at > now
// predicate draws.
func (o *OTP) ExpiredAt(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
