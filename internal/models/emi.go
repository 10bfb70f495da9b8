package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EMI statuses. Rows are never deleted, only transitioned.
const (
	EMIStatusPending = "Pending"
	EMIStatusPaid    = "Paid"
	EMIStatusOverdue = "Overdue"
)

// EMI is one installment of a loan's repayment schedule.
type EMI struct {
	EMIID          uuid.UUID  `gorm:"column:emi_id;type:uuid;primaryKey"`
	LoanID         string     `gorm:"column:loan_id;type:varchar(20);not null;index"`
	DueDate        time.Time  `gorm:"column:due_date;not null"`
	AmountDue      float64    `gorm:"column:amount_due;type:decimal(10,2);not null"`
	AmountPaid     float64    `gorm:"column:amount_paid;type:decimal(10,2);default:0"`
	PaymentDate    *time.Time `gorm:"column:payment_date"`
	Status         string     `gorm:"column:status;type:varchar(20);default:'Pending'"`
	PenaltyCharged float64    `gorm:"column:penalty_charged;type:decimal(10,2);default:0"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`

	Loan *Loan `gorm:"foreignKey:LoanID;references:LoanID"`
}

func (EMI) TableName() string {
	return "emi"
}

func (e *EMI) BeforeCreate(tx *gorm.DB) error {
	if e.EMIID == uuid.Nil {
		e.EMIID = uuid.New()
	}
	return nil
}
