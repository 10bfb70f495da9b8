package models

import (
	"time"
)

// Loan statuses
const (
	LoanStatusActive = "Active"
	LoanStatusClosed = "Closed"
)

// Loan types
const (
	LoanTypePersonal = "Personal Loan"
	LoanTypeHome     = "Home Loan"
	LoanTypeAuto     = "Auto Loan"
	LoanTypeGold     = "Gold Loan"
)

// Loan belongs to exactly one customer. InterestRate is the annual
// percentage rate; the monthly installment is derived from it by the
// reducing-balance EMI formula.
type Loan struct {
	LoanID          string    `gorm:"column:loan_id;type:varchar(20);primaryKey"`
	CustomerID      string    `gorm:"column:customer_id;type:varchar(20);not null;index"`
	LoanType        string    `gorm:"column:loan_type;type:varchar(30);not null"`
	PrincipalAmount float64   `gorm:"column:principal_amount;type:decimal(12,2);not null"`
	InterestRate    float64   `gorm:"column:interest_rate;type:decimal(5,2);not null"`
	TenureMonths    int       `gorm:"column:tenure_months;not null"`
	StartDate       time.Time `gorm:"column:start_date;type:date"`
	Status          string    `gorm:"column:status;type:varchar(20);default:'Active'"`
	IFSCCode        string    `gorm:"column:ifsc_code;type:varchar(20)"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID"`
}

func (Loan) TableName() string {
	return "loan"
}
