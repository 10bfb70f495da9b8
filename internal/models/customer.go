package models

import (
	"time"
)

// KYC statuses
const (
	KYCStatusPending  = "Pending"
	KYCStatusVerified = "Verified"
	KYCStatusRejected = "Rejected"
)

// Customer is the identity record every other entity hangs off.
// CustomerID is assigned by the bank's CRM and never changes.
type Customer struct {
	CustomerID    string    `gorm:"column:customer_id;type:varchar(20);primaryKey"`
	FullName      string    `gorm:"column:full_name;type:varchar(100);not null"`
	PhoneNumber   string    `gorm:"column:phone_number;type:varchar(15);not null;index"`
	Email         string    `gorm:"column:email;type:varchar(100)"`
	PANNumber     string    `gorm:"column:pan_number;type:varchar(10)"`
	AadhaarNumber string    `gorm:"column:aadhaar_number;type:varchar(20)"`
	KYCStatus     string    `gorm:"column:kyc_status;type:varchar(20);default:'Pending'"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customer"
}
