package seed

import (
	"fmt"
	"strings"
	"time"

	"finvox/internal/models"
	"finvox/internal/utils"
)

// Fixture builds sample rows under a random namespace, so concurrent
// test runs against a shared database never collide the way the
// fixed-key demo chain would.
type Fixture struct {
	Namespace string

	phone string
}

// NewFixture draws a fresh namespace. Generated identifiers stay within
// the schema's varchar(20) key columns.
func NewFixture() (*Fixture, error) {
	ns, err := utils.GenerateUniqueID(4)
	if err != nil {
		return nil, fmt.Errorf("failed to generate fixture namespace: %w", err)
	}

	digits, err := utils.GenerateOTPCode(10)
	if err != nil {
		return nil, fmt.Errorf("failed to generate fixture phone: %w", err)
	}

	return &Fixture{
		Namespace: strings.ToUpper(ns),
		phone:     "+91" + digits,
	}, nil
}

func (f *Fixture) CustomerID() string {
	return "CID" + f.Namespace
}

func (f *Fixture) LoanID() string {
	return "LN" + f.Namespace
}

func (f *Fixture) AccountID() string {
	return "AC" + f.Namespace
}

func (f *Fixture) TransactionID(n int) string {
	return fmt.Sprintf("TXN%s%04d", f.Namespace, n)
}

func (f *Fixture) PhoneNumber() string {
	return f.phone
}

// Customer returns a verified customer under this fixture's namespace.
func (f *Fixture) Customer() *models.Customer {
	return &models.Customer{
		CustomerID:    f.CustomerID(),
		FullName:      "Fixture Customer " + f.Namespace,
		PhoneNumber:   f.PhoneNumber(),
		Email:         strings.ToLower(f.Namespace) + "@example.test",
		PANNumber:     "ABCDE1234F",
		AadhaarNumber: "123456789012",
		KYCStatus:     models.KYCStatusVerified,
	}
}

// Loan returns an active personal loan mirroring the demo chain's terms.
func (f *Fixture) Loan() *models.Loan {
	return &models.Loan{
		LoanID:          f.LoanID(),
		CustomerID:      f.CustomerID(),
		LoanType:        models.LoanTypePersonal,
		PrincipalAmount: samplePrincipal,
		InterestRate:    sampleInterestRate,
		TenureMonths:    sampleTenureMonths,
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:          models.LoanStatusActive,
		IFSCCode:        "SBIN0001234",
	}
}

// Account returns an active savings account for the fixture customer.
func (f *Fixture) Account() *models.CustomerAccount {
	return &models.CustomerAccount{
		AccountID:   f.AccountID(),
		CustomerID:  f.CustomerID(),
		AccountType: models.AccountTypeSavings,
		Balance:     150000.00,
		Status:      models.AccountStatusActive,
	}
}

// Transaction returns the nth deposit against the fixture account.
func (f *Fixture) Transaction(n int, amount float64) *models.Transaction {
	return &models.Transaction{
		TransactionID:   f.TransactionID(n),
		AccountID:       f.AccountID(),
		CustomerID:      f.CustomerID(),
		AccountType:     models.AccountTypeSavings,
		TransactionType: models.TransactionTypeDeposit,
		Amount:          amount,
		Description:     fmt.Sprintf("Fixture deposit %d", n),
	}
}
