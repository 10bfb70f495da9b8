package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeDeposit    = "Deposit"
	TransactionTypeWithdrawal = "Withdrawal"
	TransactionTypeTransfer   = "Transfer"
	TransactionTypePayment    = "Payment"
	TransactionTypeEMIPayment = "EMI Payment"
	TransactionTypeRefund     = "Refund"
)

// Transaction is an append-only ledger entry against an account. Rows are
// written once and never updated or deleted; corrections are new entries.
// AccountType is denormalized from the account so statement queries do not
// need a join.
type Transaction struct {
	TransactionID   string    `gorm:"column:transaction_id;type:varchar(20);primaryKey"`
	AccountID       string    `gorm:"column:account_id;type:varchar(20);not null;index"`
	CustomerID      string    `gorm:"column:customer_id;type:varchar(20);not null;index"`
	AccountType     string    `gorm:"column:account_type;type:varchar(20)"`
	TransactionType string    `gorm:"column:transaction_type;type:varchar(30);not null"`
	Amount          float64   `gorm:"column:amount;type:decimal(10,2);not null"`
	TransactionDate time.Time `gorm:"column:transaction_date;autoCreateTime"`
	Description     string    `gorm:"column:description;type:text"`

	Account  *CustomerAccount `gorm:"foreignKey:AccountID;references:AccountID"`
	Customer *Customer        `gorm:"foreignKey:CustomerID;references:CustomerID"`
}

func (Transaction) TableName() string {
	return "transaction"
}
