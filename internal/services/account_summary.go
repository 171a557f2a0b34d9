package services

import (
	"math"

	"github.com/pfportal/employer-api/internal/models"
)

// Statutory rates and floors for the subsidiary account heads.
const (
	AdminChargeRate    = 0.005 // A/C 2: 0.5% of EPF wages
	AdminChargeMinimum = 500.0 // A/C 2 floor per challan
	EdliRate           = 0.005 // A/C 21: 0.5% of EDLI wages
	Interest7QRate     = 0.012 // Section 7Q interest on delayed remittance
	Damages14BRate     = 0.005 // Section 14B damages on delayed remittance
)

// AccountAmounts holds rupee amounts per statutory account head
type AccountAmounts struct {
	Ac1   float64 `json:"ac1"`
	Ac2   float64 `json:"ac2"`
	Ac10  float64 `json:"ac10"`
	Ac21  float64 `json:"ac21"`
	Ac22  float64 `json:"ac22"`
	Total float64 `json:"total"`
}

// AccountSummary is the due / paid / balance breakdown shown on the dashboard
type AccountSummary struct {
	Due     AccountAmounts `json:"due"`
	Paid    AccountAmounts `json:"paid"`
	Balance AccountAmounts `json:"balance"`
}

// round2 rounds to two decimal places (paise)
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AccountDues derives per-head dues from return totals.
//
// A/C 1 collects the employee share plus the employer's EPF portion
// (the difference between total employer contribution and the EPS
// share). A/C 2 administrative charges are 0.5% of EPF wages with a
// 500-rupee floor. A/C 10 is the pension share. A/C 21 EDLI is 0.5%
// of EDLI wages. A/C 22 is waived.
func AccountDues(t *models.ReturnTotals) AccountAmounts {
	if t == nil {
		return AccountAmounts{}
	}

	due := AccountAmounts{
		Ac1:  round2(t.Contributions.EmployeePf + t.Contributions.Difference),
		Ac2:  math.Max(round2(t.Wages.Epf*AdminChargeRate), AdminChargeMinimum),
		Ac10: round2(t.Contributions.EmployerEps),
		Ac21: round2(t.Wages.Edli * EdliRate),
		Ac22: 0,
	}
	due.Total = round2(due.Ac1 + due.Ac2 + due.Ac10 + due.Ac21 + due.Ac22)
	return due
}

// BuildAccountSummary computes the dashboard summary for the latest
// approved return. Returns nil when no totals exist so the caller can
// distinguish "no data" from an all-zero summary.
func BuildAccountSummary(t *models.ReturnTotals, paid bool) *AccountSummary {
	if t == nil {
		return nil
	}

	due := AccountDues(t)
	summary := &AccountSummary{Due: due}
	if paid {
		summary.Paid = due
	} else {
		summary.Balance = due
	}
	return summary
}

// FullPaymentQuote computes the composite remittance for a challan:
// the return amount plus Section 7Q interest and Section 14B damages,
// each rounded to the nearest rupee.
func FullPaymentQuote(returnAmount float64) (interest7q, damages14b, grandTotal float64) {
	interest7q = math.Round(returnAmount * Interest7QRate)
	damages14b = math.Round(returnAmount * Damages14BRate)
	grandTotal = round2(returnAmount + interest7q + damages14b)
	return interest7q, damages14b, grandTotal
}
