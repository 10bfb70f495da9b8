package models

import (
	"time"
)

// Account types
const (
	AccountTypeSavings    = "Savings"
	AccountTypeCurrent    = "Current"
	AccountTypeCreditCard = "Credit Card"
)

// Account statuses
const (
	AccountStatusActive = "Active"
	AccountStatusFrozen = "Frozen"
	AccountStatusClosed = "Closed"
)

// CustomerAccount is a deposit or credit account held by a customer.
// CreditLimit only matters for credit-card accounts and stays 0 otherwise.
type CustomerAccount struct {
	AccountID   string    `gorm:"column:account_id;type:varchar(20);primaryKey"`
	CustomerID  string    `gorm:"column:customer_id;type:varchar(20);not null;index"`
	AccountType string    `gorm:"column:account_type;type:varchar(20);not null"`
	Balance     float64   `gorm:"column:balance;type:decimal(12,2);default:0"`
	CreditLimit float64   `gorm:"column:credit_limit;type:decimal(12,2);default:0"`
	Status      string    `gorm:"column:status;type:varchar(20);default:'Active'"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID"`
}

func (CustomerAccount) TableName() string {
	return "customer_account"
}
