// Package seed owns schema bootstrap and the deterministic sample data
// used by development and demo environments.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"finvox/internal/models"
	"finvox/internal/repositories"
	"finvox/internal/services"
	"finvox/internal/utils"

	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Fixed keys of the demo record chain. Anything else sharing these keys
// is overwritten on refresh, which is why this path never runs against
// production data.
const (
	SampleCustomerID    = "CID1000095"
	SampleLoanID        = "LN54375877301289"
	SampleAccountID     = "CC62287740"
	SamplePhoneNumber   = "+917417119014"
	SampleTransactionID = "TXN123456789"
)

// Demo loan terms. The seeded EMI amount is always derived from these,
// never hard-coded, so the row stays consistent with the loan.
const (
	samplePrincipal    = 500000.0
	sampleInterestRate = 8.5
	sampleTenureMonths = 24
)

const sampleDocumentText = "Our personal loan interest rates range from 8.5% to 15% depending on credit score and tenure. Loan amounts can be up to 20 lakhs. For more details, please visit our website or contact support."

// Seeder creates the schema and maintains the sample record chain.
type Seeder struct {
	store *repositories.Store
	calc  *services.EMICalculator
	log   *logrus.Logger
}

func NewSeeder(store *repositories.Store, log *logrus.Logger) *Seeder {
	return &Seeder{
		store: store,
		calc:  services.NewEMICalculator(),
		log:   log,
	}
}

// SetupDatabase creates tables and refreshes sample data, the one-shot
// bootstrap the setup command runs.
func (s *Seeder) SetupDatabase(ctx context.Context) error {
	if err := s.store.CreateTables(ctx); err != nil {
		s.log.WithError(err).Error("❌ table creation failed")
		return fmt.Errorf("table creation failed: %w", err)
	}
	if err := s.RefreshSampleData(ctx); err != nil {
		return fmt.Errorf("sample data refresh failed: %w", err)
	}
	s.log.Info("✅ database setup completed")
	return nil
}

// RefreshSampleData deletes any prior sample rows and inserts the demo
// chain: one customer, one loan with its next pending EMI, one savings
// account, one deposit transaction and one knowledge-base document.
// Everything happens in a single transaction; running it twice leaves
// exactly one row per fixed key.
func (s *Seeder) RefreshSampleData(ctx context.Context) error {
	s.log.Info("refreshing sample data")

	err := s.store.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := deleteSampleRows(tx); err != nil {
			return err
		}
		return insertSampleRows(ctx, tx, s.calc)
	})
	if err != nil {
		s.log.WithError(err).Error("❌ sample data refresh failed")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"customer_id": SampleCustomerID,
		"phone":       utils.MaskPhone(SamplePhoneNumber),
	}).Info("✅ sample data refreshed")
	return nil
}

// deleteSampleRows clears prior sample rows children-first so foreign
// keys never block the sweep.
func deleteSampleRows(tx *gorm.DB) error {
	deletes := []struct {
		query string
		arg   interface{}
		model interface{}
	}{
		{"customer_id = ?", SampleCustomerID, &models.Transaction{}},
		{"loan_id = ?", SampleLoanID, &models.EMI{}},
		{"customer_id = ?", SampleCustomerID, &models.Loan{}},
		{"customer_id = ?", SampleCustomerID, &models.CustomerAccount{}},
		{"customer_id = ?", SampleCustomerID, &models.ClientInteraction{}},
		{"customer_id = ?", SampleCustomerID, &models.RAGDocument{}},
		{"phone_number = ?", SamplePhoneNumber, &models.OTP{}},
		{"customer_id = ?", SampleCustomerID, &models.UnresolvedChat{}},
		{"customer_id = ?", SampleCustomerID, &models.Customer{}},
	}

	for _, d := range deletes {
		if err := tx.Where(d.query, d.arg).Delete(d.model).Error; err != nil {
			return fmt.Errorf("failed to clear sample rows: %w", err)
		}
	}
	return nil
}

func insertSampleRows(ctx context.Context, tx *gorm.DB, calc *services.EMICalculator) error {
	customers := repositories.NewCustomerRepository(tx)
	loans := repositories.NewLoanRepository(tx)
	emis := repositories.NewEMIRepository(tx)
	accounts := repositories.NewAccountRepository(tx)
	transactions := repositories.NewTransactionRepository(tx)
	documents := repositories.NewRAGRepository(tx)

	customer := &models.Customer{
		CustomerID:    SampleCustomerID,
		FullName:      "John Doe",
		PhoneNumber:   SamplePhoneNumber,
		Email:         "john.doe@example.com",
		PANNumber:     "ABCDE1234F",
		AadhaarNumber: "123456789012",
		KYCStatus:     models.KYCStatusVerified,
	}
	if err := customers.Create(ctx, customer); err != nil {
		return err
	}

	loan := &models.Loan{
		LoanID:          SampleLoanID,
		CustomerID:      customer.CustomerID,
		LoanType:        models.LoanTypePersonal,
		PrincipalAmount: samplePrincipal,
		InterestRate:    sampleInterestRate,
		TenureMonths:    sampleTenureMonths,
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:          models.LoanStatusActive,
		IFSCCode:        "SBIN0001234",
	}
	if err := loans.Create(ctx, loan); err != nil {
		return err
	}

	emi := &models.EMI{
		LoanID:    loan.LoanID,
		DueDate:   time.Now().UTC().Add(30 * 24 * time.Hour),
		AmountDue: calc.MonthlyInstallment(loan.PrincipalAmount, loan.InterestRate, loan.TenureMonths),
		Status:    models.EMIStatusPending,
	}
	if err := emis.Create(ctx, emi); err != nil {
		return err
	}

	account := &models.CustomerAccount{
		AccountID:   SampleAccountID,
		CustomerID:  customer.CustomerID,
		AccountType: models.AccountTypeSavings,
		Balance:     150000.00,
		CreditLimit: 0,
		Status:      models.AccountStatusActive,
	}
	if err := accounts.Create(ctx, account); err != nil {
		return err
	}

	txn := &models.Transaction{
		TransactionID:   SampleTransactionID,
		AccountID:       account.AccountID,
		CustomerID:      customer.CustomerID,
		AccountType:     account.AccountType,
		TransactionType: models.TransactionTypeDeposit,
		Amount:          50000.00,
		Description:     "Initial deposit",
	}
	if err := transactions.Create(ctx, txn); err != nil {
		return err
	}

	embedding := randomEmbedding(models.DocumentEmbeddingDim)
	doc := &models.RAGDocument{
		CustomerID:   &customer.CustomerID,
		DocumentText: sampleDocumentText,
		Embedding:    &embedding,
	}
	return documents.Create(ctx, doc)
}

// randomEmbedding builds a placeholder vector. Real embeddings come from
// the ingestion pipeline; the sample one only has to satisfy the column's
// dimensionality.
func randomEmbedding(dim int) pgvector.Vector {
	values := make([]float32, dim)
	for i := range values {
		values[i] = rand.Float32()
	}
	return pgvector.NewVector(values)
}
