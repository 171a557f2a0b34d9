package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/pfportal/employer-api/internal/repository"
)

// ReceiptService renders payment receipts for paid challans
type ReceiptService struct {
	challanRepo  repository.ChallanRepository
	employerRepo repository.EmployerRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(challanRepo repository.ChallanRepository, employerRepo repository.EmployerRepository) *ReceiptService {
	return &ReceiptService{challanRepo: challanRepo, employerRepo: employerRepo}
}

// GenerateReceipt renders the payment receipt PDF for a paid challan
func (s *ReceiptService) GenerateReceipt(ctx context.Context, employerID, challanID uint) (*bytes.Buffer, string, error) {
	challan, err := s.challanRepo.FindByID(ctx, employerID, challanID)
	if err != nil {
		return nil, "", ErrNotFound
	}
	if !challan.IsPaid() {
		return nil, "", ErrInvalidState
	}

	employer, err := s.employerRepo.FindByID(ctx, challan.EmployerID)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Challan Payment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s (%s)", employer.EstablishmentName, employer.EstablishmentID), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	labelCell := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(50, 8, label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 8, value, "1", 1, "L", false, 0, "")
	}

	labelCell("TRRN", challan.TRRN)
	labelCell("Wage Month", challan.WageMonth)
	if challan.PaymentCRN != nil {
		labelCell("CRN", *challan.PaymentCRN)
	}
	if challan.PaymentBank != nil {
		labelCell("Bank", *challan.PaymentBank)
	}
	if challan.PaidAt != nil {
		labelCell("Payment Date", challan.PaidAt.Format("02/01/2006 15:04"))
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Account Head Breakdown", "", 1, "L", false, 0, "")

	amountRow := func(label string, amount float64) {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(50, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, fmt.Sprintf("%.2f", amount), "1", 1, "R", false, 0, "")
	}

	amountRow("A/C 1 (EPF)", challan.Ac1)
	amountRow("A/C 2 (Admin)", challan.Ac2)
	amountRow("A/C 10 (EPS)", challan.Ac10)
	amountRow("A/C 21 (EDLI)", challan.Ac21)
	amountRow("A/C 22 (Inspection)", challan.Ac22)

	paidAmount := challan.TotalAmount
	if challan.PaymentAmount != nil {
		paidAmount = *challan.PaymentAmount
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 8, "Amount Paid", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("%.2f", paidAmount), "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 6, AmountInWords(paidAmount), "", "L", false)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 6, "This is a system generated receipt and does not require a signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("challan_receipt_%s.pdf", challan.TRRN)
	return &buf, filename, nil
}
