package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pfportal/employer-api/internal/models"
)

// ecrFieldSeparator delimits fields within one member row of an
// electronic challan-cum-return text file.
const ecrFieldSeparator = "#~#"

// ecrFieldCount is the number of fields each member row must carry:
// UAN, name, gross wages, EPF wages, EPS wages, EDLI wages, EPF
// contribution (EE share), EPS contribution, EPF-EPS difference
// (ER share), NCP days, refund of advances.
//
// Field 9 is sometimes labelled "Employer PF Contribution" in upload
// help text, but its value is the EPF-EPS difference: the full
// employer PF share is reconstructed as EPS contribution + difference,
// which is what the A/C 1 arithmetic expects.
const ecrFieldCount = 11

// ECRRow is one parsed member line of a return file
type ECRRow struct {
	UAN          string
	MemberName   string
	GrossWages   float64
	EpfWages     float64
	EpsWages     float64
	EdliWages    float64
	EpfContrib   float64
	EpsContrib   float64
	DiffContrib  float64
	NcpDays      int
	RefundAmount float64
}

// ParseECR parses the plain-text return content into member rows.
// Blank lines are skipped; any malformed line fails the whole file
// with a line-numbered error.
func ParseECR(content string) ([]ECRRow, error) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	rows := make([]ECRRow, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		row, err := parseECRLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("return file contains no member rows")
	}
	return rows, nil
}

func parseECRLine(line string) (ECRRow, error) {
	fields := strings.Split(line, ecrFieldSeparator)
	if len(fields) != ecrFieldCount {
		return ECRRow{}, fmt.Errorf("expected %d fields, got %d", ecrFieldCount, len(fields))
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	uan := fields[0]
	if uan == "" {
		return ECRRow{}, fmt.Errorf("missing UAN")
	}
	if fields[1] == "" {
		return ECRRow{}, fmt.Errorf("missing member name")
	}

	row := ECRRow{UAN: uan, MemberName: fields[1]}

	amounts := []struct {
		name string
		dst  *float64
	}{
		{"gross wages", &row.GrossWages},
		{"epf wages", &row.EpfWages},
		{"eps wages", &row.EpsWages},
		{"edli wages", &row.EdliWages},
		{"epf contribution", &row.EpfContrib},
		{"eps contribution", &row.EpsContrib},
		{"diff contribution", &row.DiffContrib},
	}
	for j, a := range amounts {
		v, err := strconv.ParseFloat(fields[2+j], 64)
		if err != nil || v < 0 {
			return ECRRow{}, fmt.Errorf("invalid %s %q", a.name, fields[2+j])
		}
		*a.dst = v
	}

	ncp, err := strconv.Atoi(fields[9])
	if err != nil || ncp < 0 {
		return ECRRow{}, fmt.Errorf("invalid ncp days %q", fields[9])
	}
	row.NcpDays = ncp

	refund, err := strconv.ParseFloat(fields[10], 64)
	if err != nil || refund < 0 {
		return ECRRow{}, fmt.Errorf("invalid refund amount %q", fields[10])
	}
	row.RefundAmount = refund

	return row, nil
}

// DeriveTotals aggregates parsed rows into the statement totals frozen
// on the return record. The employer PF share is the EPS share plus the
// EPF-EPS difference. Joined/left member counts stay zero: the row
// format carries no joining or exit dates to derive them from, so only
// the active headcount comes from the file.
func DeriveTotals(rows []ECRRow) models.ReturnTotals {
	var t models.ReturnTotals
	for _, row := range rows {
		t.Wages.Gross += row.GrossWages
		t.Wages.Epf += row.EpfWages
		t.Wages.Eps += row.EpsWages
		t.Wages.Edli += row.EdliWages
		t.Contributions.EmployeePf += row.EpfContrib
		t.Contributions.EmployerEps += row.EpsContrib
		t.Contributions.Difference += row.DiffContrib
		t.Contributions.Refund += row.RefundAmount
		t.NcpDays += row.NcpDays
	}
	t.Contributions.EmployerPf = round2(t.Contributions.EmployerEps + t.Contributions.Difference)
	t.Members.Active = len(rows)

	t.Wages.Gross = round2(t.Wages.Gross)
	t.Wages.Epf = round2(t.Wages.Epf)
	t.Wages.Eps = round2(t.Wages.Eps)
	t.Wages.Edli = round2(t.Wages.Edli)
	t.Contributions.EmployeePf = round2(t.Contributions.EmployeePf)
	t.Contributions.EmployerEps = round2(t.Contributions.EmployerEps)
	t.Contributions.Difference = round2(t.Contributions.Difference)
	t.Contributions.Refund = round2(t.Contributions.Refund)
	return t
}
