package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
)

//go:embed templates/reports/*.html
var reportTemplates embed.FS

// StatementService renders the return statement as a PDF document
type StatementService struct {
	returnRepo   repository.ReturnRepository
	employerRepo repository.EmployerRepository
}

// NewStatementService creates a new statement service
func NewStatementService(returnRepo repository.ReturnRepository, employerRepo repository.EmployerRepository) *StatementService {
	return &StatementService{returnRepo: returnRepo, employerRepo: employerRepo}
}

type statementData struct {
	EstablishmentID   string
	EstablishmentName string
	TRRN              string
	WageMonth         string
	ReturnType        string
	ContributionRate  int
	Status            string
	UploadedOn        string
	Totals            *models.ReturnTotals
}

// GenerateReturnStatement renders the statement of an uploaded return
// as a PDF. Returns with no derived totals cannot be rendered.
func (s *StatementService) GenerateReturnStatement(ctx context.Context, employerID, id uint) (*bytes.Buffer, string, error) {
	rf, err := s.returnRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, "", ErrNotFound
	}

	totals := rf.Totals()
	if totals == nil {
		return nil, "", fmt.Errorf("return %s has no statement totals", rf.TRRN)
	}

	employer, err := s.employerRepo.FindByID(ctx, rf.EmployerID)
	if err != nil {
		return nil, "", err
	}

	data := statementData{
		EstablishmentID:   employer.EstablishmentID,
		EstablishmentName: employer.EstablishmentName,
		TRRN:              rf.TRRN,
		WageMonth:         rf.WageMonth,
		ReturnType:        rf.ReturnType,
		ContributionRate:  rf.ContributionRate,
		Status:            rf.Status,
		UploadedOn:        rf.UploadedOn.Format("02/01/2006 15:04"),
		Totals:            totals,
	}

	buf, err := s.generatePDF("return_statement.html", data)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("return_statement_%s.pdf", rf.TRRN)
	return buf, filename, nil
}

// generatePDF renders an HTML template and converts it with wkhtmltopdf
func (s *StatementService) generatePDF(templateName string, data interface{}) (*bytes.Buffer, error) {
	tmpl, err := template.ParseFS(reportTemplates, "templates/reports/"+templateName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(buf.Bytes()))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}

	return pdfg.Buffer(), nil
}
