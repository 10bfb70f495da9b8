package services

import (
	"math"

	"finvox/internal/models"
)

// EMICalculator derives repayment schedules for reducing-balance loans.
type EMICalculator struct{}

func NewEMICalculator() *EMICalculator {
	return &EMICalculator{}
}

// MonthlyInstallment returns the fixed monthly payment for a loan,
// rounded to two decimal places. annualRate is a percentage, e.g. 8.5.
// A zero rate degenerates to an even split of the principal.
func (c *EMICalculator) MonthlyInstallment(principal, annualRate float64, tenureMonths int) float64 {
	if tenureMonths <= 0 || principal <= 0 {
		return 0
	}

	monthlyRate := annualRate / 12 / 100
	if monthlyRate == 0 {
		return roundMoney(principal / float64(tenureMonths))
	}

	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	emi := principal * monthlyRate * factor / (factor - 1)
	return roundMoney(emi)
}

// Schedule amortizes a loan into one pending EMI per month of tenure.
// Due dates fall on monthly anniversaries of the start date, beginning one
// month in. LoanID is carried onto every row; the caller persists them.
func (c *EMICalculator) Schedule(loan *models.Loan) []models.EMI {
	if loan == nil || loan.TenureMonths <= 0 {
		return nil
	}

	installment := c.MonthlyInstallment(loan.PrincipalAmount, loan.InterestRate, loan.TenureMonths)

	schedule := make([]models.EMI, 0, loan.TenureMonths)
	for month := 1; month <= loan.TenureMonths; month++ {
		schedule = append(schedule, models.EMI{
			LoanID:    loan.LoanID,
			DueDate:   loan.StartDate.AddDate(0, month, 0),
			AmountDue: installment,
			Status:    models.EMIStatusPending,
		})
	}
	return schedule
}

// TotalPayable returns the sum of all installments over the full tenure.
func (c *EMICalculator) TotalPayable(principal, annualRate float64, tenureMonths int) float64 {
	installment := c.MonthlyInstallment(principal, annualRate, tenureMonths)
	return roundMoney(installment * float64(tenureMonths))
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
