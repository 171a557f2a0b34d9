package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleECR = `100000000001#~#RAMESH KUMAR#~#10000#~#7500#~#7500#~#7500#~#900#~#625#~#275#~#0#~#0
100000000002#~#SURESH VERMA#~#10000#~#7500#~#7500#~#7500#~#900#~#625#~#275#~#2#~#0`

func TestParseECR_Valid(t *testing.T) {
	rows, err := ParseECR(sampleECR)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "100000000001", rows[0].UAN)
	assert.Equal(t, "RAMESH KUMAR", rows[0].MemberName)
	assert.Equal(t, 7500.0, rows[0].EpfWages)
	assert.Equal(t, 900.0, rows[0].EpfContrib)
	assert.Equal(t, 625.0, rows[0].EpsContrib)
	assert.Equal(t, 275.0, rows[0].DiffContrib)
	assert.Equal(t, 2, rows[1].NcpDays)
}

func TestParseECR_SkipsBlankLines(t *testing.T) {
	content := "\n" + sampleECR + "\n\n"
	rows, err := ParseECR(content)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestParseECR_CRLF(t *testing.T) {
	content := "100000000001#~#RAMESH KUMAR#~#10000#~#7500#~#7500#~#7500#~#900#~#625#~#275#~#0#~#0\r\n"
	rows, err := ParseECR(content)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestParseECR_WrongFieldCount(t *testing.T) {
	_, err := ParseECR("100000000001#~#RAMESH KUMAR#~#10000")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "expected 11 fields")
}

func TestParseECR_NonNumericAmount(t *testing.T) {
	_, err := ParseECR("100000000001#~#RAMESH KUMAR#~#abc#~#7500#~#7500#~#7500#~#900#~#625#~#275#~#0#~#0")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gross wages")
}

func TestParseECR_NegativeAmount(t *testing.T) {
	_, err := ParseECR("100000000001#~#RAMESH KUMAR#~#-1#~#7500#~#7500#~#7500#~#900#~#625#~#275#~#0#~#0")

	assert.Error(t, err)
}

func TestParseECR_MissingUAN(t *testing.T) {
	_, err := ParseECR("#~#RAMESH KUMAR#~#10000#~#7500#~#7500#~#7500#~#900#~#625#~#275#~#0#~#0")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing UAN")
}

func TestParseECR_Empty(t *testing.T) {
	_, err := ParseECR("   \n\n")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no member rows")
}

func TestDeriveTotals(t *testing.T) {
	rows, err := ParseECR(sampleECR)
	assert.NoError(t, err)

	totals := DeriveTotals(rows)

	assert.Equal(t, 20000.0, totals.Wages.Gross)
	assert.Equal(t, 15000.0, totals.Wages.Epf)
	assert.Equal(t, 15000.0, totals.Wages.Edli)
	assert.Equal(t, 1800.0, totals.Contributions.EmployeePf)
	assert.Equal(t, 1250.0, totals.Contributions.EmployerEps)
	assert.Equal(t, 550.0, totals.Contributions.Difference)
	// Employer PF share is the EPS share plus the difference
	assert.Equal(t, 1800.0, totals.Contributions.EmployerPf)
	assert.Equal(t, 2, totals.Members.Active)
	// Joined/left counts are not derivable from member rows
	assert.Equal(t, 0, totals.Members.Joined)
	assert.Equal(t, 0, totals.Members.Left)
	assert.Equal(t, 2, totals.NcpDays)
}
