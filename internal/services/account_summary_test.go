package services

import (
	"testing"

	"github.com/pfportal/employer-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleTotals() *models.ReturnTotals {
	return &models.ReturnTotals{
		Wages: models.WageTotals{
			Gross: 20000,
			Epf:   15000,
			Eps:   15000,
			Edli:  15000,
		},
		Contributions: models.ContributionTotals{
			EmployeePf:  1000,
			EmployerPf:  800,
			EmployerEps: 550,
			Difference:  250,
		},
		Members: models.MemberCounts{Active: 2},
	}
}

func TestAccountDues_Breakdown(t *testing.T) {
	dues := AccountDues(sampleTotals())

	assert.Equal(t, 1250.0, dues.Ac1)
	assert.Equal(t, 500.0, dues.Ac2) // 0.5% of 15000 is 75, floor applies
	assert.Equal(t, 550.0, dues.Ac10)
	assert.Equal(t, 75.0, dues.Ac21)
	assert.Equal(t, 0.0, dues.Ac22)
	assert.Equal(t, 2375.0, dues.Total)
}

func TestAccountDues_AdminChargeAboveFloor(t *testing.T) {
	totals := sampleTotals()
	totals.Wages.Epf = 200000

	dues := AccountDues(totals)
	assert.Equal(t, 1000.0, dues.Ac2)
}

func TestBuildAccountSummary_NilTotals(t *testing.T) {
	assert.Nil(t, BuildAccountSummary(nil, false))
	assert.Nil(t, BuildAccountSummary(nil, true))
}

func TestBuildAccountSummary_Unpaid(t *testing.T) {
	summary := BuildAccountSummary(sampleTotals(), false)

	assert.NotNil(t, summary)
	assert.Equal(t, 2375.0, summary.Due.Total)
	assert.Equal(t, 0.0, summary.Paid.Total)
	assert.Equal(t, 2375.0, summary.Balance.Total)
}

func TestBuildAccountSummary_Paid(t *testing.T) {
	summary := BuildAccountSummary(sampleTotals(), true)

	assert.NotNil(t, summary)
	assert.Equal(t, 2375.0, summary.Due.Total)
	assert.Equal(t, 2375.0, summary.Paid.Total)
	assert.Equal(t, 0.0, summary.Balance.Total)
}

func TestFullPaymentQuote(t *testing.T) {
	interest, damages, grandTotal := FullPaymentQuote(2375)

	assert.Equal(t, 29.0, interest) // round(2375 * 0.012)
	assert.Equal(t, 12.0, damages)  // round(2375 * 0.005)
	assert.Equal(t, 2416.0, grandTotal)
}

func TestFullPaymentQuote_GrandTotalInvariant(t *testing.T) {
	for _, amount := range []float64{500, 2375, 10000, 123456.78} {
		interest, damages, grandTotal := FullPaymentQuote(amount)
		assert.InDelta(t, amount+interest+damages, grandTotal, 0.001)
	}
}
