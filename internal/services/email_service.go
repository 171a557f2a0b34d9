package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/pfportal/employer-api/internal/config"
	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/pkg/logger"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

type EmailService struct {
	config       *config.Config
	resendClient *resend.Client
}

func NewEmailService(cfg *config.Config) *EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &EmailService{
		config:       cfg,
		resendClient: client,
	}
}

// enabled reports whether outbound mail is configured. Local and test
// environments run without an API key.
func (s *EmailService) enabled() bool {
	return s.config.ResendAPIKey != ""
}

func (s *EmailService) SendReturnApproved(ctx context.Context, employer *models.Employer, rf *models.ReturnFile, challan *models.Challan) error {
	data := struct {
		EstablishmentName string
		TRRN              string
		WageMonth         string
		TotalAmount       string
	}{
		EstablishmentName: employer.EstablishmentName,
		TRRN:              rf.TRRN,
		WageMonth:         rf.WageMonth,
		TotalAmount:       fmt.Sprintf("Rs. %.2f", challan.TotalAmount),
	}

	subject := fmt.Sprintf("Return %s approved", rf.TRRN)
	return s.send(employer.Email, subject, "return_approved.html", data)
}

func (s *EmailService) SendReturnRejected(ctx context.Context, employer *models.Employer, rf *models.ReturnFile, reason string) error {
	data := struct {
		EstablishmentName string
		TRRN              string
		WageMonth         string
		Reason            string
	}{
		EstablishmentName: employer.EstablishmentName,
		TRRN:              rf.TRRN,
		WageMonth:         rf.WageMonth,
		Reason:            reason,
	}

	subject := fmt.Sprintf("Return %s rejected", rf.TRRN)
	return s.send(employer.Email, subject, "return_rejected.html", data)
}

func (s *EmailService) SendPaymentConfirmation(ctx context.Context, employer *models.Employer, challan *models.Challan) error {
	crn := ""
	if challan.PaymentCRN != nil {
		crn = *challan.PaymentCRN
	}
	bank := ""
	if challan.PaymentBank != nil {
		bank = *challan.PaymentBank
	}
	amount := challan.TotalAmount
	if challan.PaymentAmount != nil {
		amount = *challan.PaymentAmount
	}

	data := struct {
		EstablishmentName string
		TRRN              string
		WageMonth         string
		CRN               string
		Bank              string
		Amount            string
		AmountInWords     string
	}{
		EstablishmentName: employer.EstablishmentName,
		TRRN:              challan.TRRN,
		WageMonth:         challan.WageMonth,
		CRN:               crn,
		Bank:              bank,
		Amount:            fmt.Sprintf("Rs. %.2f", amount),
		AmountInWords:     AmountInWords(amount),
	}

	subject := fmt.Sprintf("Payment received for challan %s", challan.TRRN)
	return s.send(employer.Email, subject, "payment_confirmation.html", data)
}

func (s *EmailService) SendDueReminder(ctx context.Context, employer *models.Employer, challan *models.Challan) error {
	data := struct {
		EstablishmentName string
		TRRN              string
		WageMonth         string
		TotalAmount       string
	}{
		EstablishmentName: employer.EstablishmentName,
		TRRN:              challan.TRRN,
		WageMonth:         challan.WageMonth,
		TotalAmount:       fmt.Sprintf("Rs. %.2f", challan.TotalAmount),
	}

	subject := fmt.Sprintf("Challan %s is pending payment", challan.TRRN)
	return s.send(employer.Email, subject, "due_reminder.html", data)
}

func (s *EmailService) send(to, subject, templateName string, data interface{}) error {
	if !s.enabled() {
		logger.Debug(fmt.Sprintf("[Email Skipped] To: %s | Subject: %s (no API key configured)", to, subject))
		return nil
	}

	body, err := s.renderTemplate(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}
	_, err = s.resendClient.Emails.Send(params)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to send email to %s: %v", to, err))
		return err
	}

	logger.Info(fmt.Sprintf("[Email Sent] To: %s | Subject: %s", to, subject))
	return nil
}

func (s *EmailService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
