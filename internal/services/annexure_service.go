package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

// AnnexureService serves the member roster and payment bank annexures
type AnnexureService struct {
	memberRepo repository.MemberRepository
	bankRepo   repository.BankRepository
}

// NewAnnexureService creates a new annexure service
func NewAnnexureService(memberRepo repository.MemberRepository, bankRepo repository.BankRepository) *AnnexureService {
	return &AnnexureService{memberRepo: memberRepo, bankRepo: bankRepo}
}

// Members lists the active members of the establishment
func (s *AnnexureService) Members(ctx context.Context, employerID uint) ([]models.Member, error) {
	return s.memberRepo.FindActive(ctx, employerID)
}

// Banks lists the banks available on the payment page
func (s *AnnexureService) Banks(ctx context.Context) ([]models.Bank, error) {
	return s.bankRepo.FindActive(ctx)
}

var memberExportHeader = []string{
	"UAN", "Member Name", "Date of Joining", "Date of Exit",
	"Aadhaar Status", "Pension Member", "Higher Wages", "Deferred Pension", "Nationality",
}

func memberExportRow(m *models.Member) []string {
	return []string{
		m.UAN,
		m.MemberName,
		stringValue(m.DateOfJoining),
		stringValue(m.DateOfExit),
		m.AadhaarStatus,
		m.PensionMember,
		m.HigherWages,
		m.DeferredPension,
		m.Nationality,
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportMembersCSV renders the active member roster as CSV
func (s *AnnexureService) ExportMembersCSV(ctx context.Context, employerID uint) ([]byte, string, error) {
	members, err := s.memberRepo.FindActive(ctx, employerID)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write(memberExportHeader)
	for i := range members {
		_ = writer.Write(memberExportRow(&members[i]))
	}
	writer.Flush()

	filename := fmt.Sprintf("member_roster_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportMembersXLSX renders the active member roster as a spreadsheet
func (s *AnnexureService) ExportMembersXLSX(ctx context.Context, employerID uint) ([]byte, string, error) {
	members, err := s.memberRepo.FindActive(ctx, employerID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Members"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for col, title := range memberExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row := range members {
		for col, value := range memberExportRow(&members[row]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("member_roster_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
