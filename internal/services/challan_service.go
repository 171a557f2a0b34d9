package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pfportal/employer-api/internal/jobs"
	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
	"github.com/pfportal/employer-api/internal/statemachine"
	"github.com/pfportal/employer-api/pkg/logger"
)

// ChallanService handles challan listing, cancellation and the mock
// internet-banking payment flow.
type ChallanService struct {
	challanRepo     repository.ChallanRepository
	bankRepo        repository.BankRepository
	employerRepo    repository.EmployerRepository
	notificationSvc *NotificationService
	emailSvc        *EmailService
	contextStore    *PaymentContextStore
	worker          *jobs.Worker
}

// NewChallanService creates a new challan service
func NewChallanService(
	challanRepo repository.ChallanRepository,
	bankRepo repository.BankRepository,
	employerRepo repository.EmployerRepository,
	notificationSvc *NotificationService,
	emailSvc *EmailService,
	contextStore *PaymentContextStore,
	worker *jobs.Worker,
) *ChallanService {
	return &ChallanService{
		challanRepo:     challanRepo,
		bankRepo:        bankRepo,
		employerRepo:    employerRepo,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
		contextStore:    contextStore,
		worker:          worker,
	}
}

// List returns all challans for an employer, newest first, annotating
// due challans that carry a live full-payment context
func (s *ChallanService) List(ctx context.Context, employerID uint) ([]models.ChallanResponse, error) {
	challans, err := s.challanRepo.FindByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ChallanResponse, 0, len(challans))
	for i := range challans {
		responses = append(responses, s.toResponse(&challans[i]))
	}
	return responses, nil
}

// Show returns one challan with its full-payment context when live
func (s *ChallanService) Show(ctx context.Context, employerID, id uint) (*models.ChallanResponse, error) {
	challan, err := s.challanRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := s.toResponse(challan)
	return &resp, nil
}

func (s *ChallanService) toResponse(challan *models.Challan) models.ChallanResponse {
	resp := challan.ToResponse()
	if challan.MayPay() {
		resp.FullPayment = s.contextStore.Get(challan.ID)
	}
	return resp
}

// Cancel voids a due challan. Terminal challans cannot be cancelled.
// Any prepared full-payment context is discarded with it.
func (s *ChallanService) Cancel(ctx context.Context, employerID, id uint) (*models.Challan, error) {
	challan, err := s.challanRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, ErrNotFound
	}

	machine := statemachine.NewChallanFSM(challan)
	if err := machine.Cancel(ctx); err != nil {
		return nil, ErrInvalidState
	}
	now := time.Now()
	challan.CancelledAt = &now

	if err := s.challanRepo.Update(ctx, challan); err != nil {
		return nil, err
	}
	s.contextStore.Remove(challan.ID)

	s.worker.EnqueueAsync(func(jobCtx context.Context) error {
		message := fmt.Sprintf("Challan for Return File Id %s (wage month %s) has been cancelled.", challan.TRRN, challan.WageMonth)
		return s.notificationSvc.NotifyEmployer(jobCtx, challan.EmployerID, "Challan Cancelled", message, models.NotificationTypeChallanCancelled)
	})

	logger.Info("challan cancelled", "challan_id", challan.ID, "trrn", challan.TRRN)
	return challan, nil
}

// BankValidation is the mock internet-banking handshake result
type BankValidation struct {
	Valid   bool   `json:"valid"`
	Bank    string `json:"bank"`
	Message string `json:"message"`
}

// ValidateBank checks that the selected bank participates in the
// internet-banking scheme. This stands in for the real bank handshake.
func (s *ChallanService) ValidateBank(ctx context.Context, bankName string) (*BankValidation, error) {
	bank, err := s.bankRepo.FindByName(ctx, bankName)
	if err != nil {
		return nil, ErrBankNotSupported
	}
	if !bank.Active {
		return nil, ErrBankNotSupported
	}
	return &BankValidation{
		Valid:   true,
		Bank:    bank.Name,
		Message: fmt.Sprintf("%s is available for internet banking.", bank.Name),
	}, nil
}

// Pay records a successful mock payment against a due challan. The
// amount is the finalized full-payment grand total when a live context
// exists, otherwise the challan's own total. The context is dropped
// only once the payment is recorded, so a failed write leaves the
// quote available for the retry.
func (s *ChallanService) Pay(ctx context.Context, employerID, id uint, bankName string) (*models.Challan, error) {
	challan, err := s.challanRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if _, err := s.ValidateBank(ctx, bankName); err != nil {
		return nil, err
	}

	machine := statemachine.NewChallanFSM(challan)
	if err := machine.Pay(ctx); err != nil {
		return nil, ErrInvalidState
	}

	amount := challan.TotalAmount
	if paymentCtx := s.contextStore.Get(challan.ID); paymentCtx != nil && paymentCtx.Finalized {
		amount = paymentCtx.GrandTotal
	}

	now := time.Now()
	crn := generateCRN()
	status := models.ChallanStatusPaid
	challan.PaymentBank = &bankName
	challan.PaymentCRN = &crn
	challan.PaymentAmount = &amount
	challan.PaymentStatus = &status
	challan.PaidAt = &now

	if err := s.challanRepo.Update(ctx, challan); err != nil {
		return nil, err
	}

	// The challan is paid; its quote must not be replayable.
	s.contextStore.Remove(challan.ID)

	s.worker.EnqueueAsync(func(jobCtx context.Context) error {
		message := fmt.Sprintf("Payment of Rs. %.2f for Return File Id %s received. CRN %s.", amount, challan.TRRN, crn)
		if err := s.notificationSvc.NotifyEmployer(jobCtx, challan.EmployerID, "Challan Paid", message, models.NotificationTypeChallanPaid); err != nil {
			return err
		}
		employer, err := s.employerRepo.FindByID(jobCtx, challan.EmployerID)
		if err != nil {
			return err
		}
		return s.emailSvc.SendPaymentConfirmation(jobCtx, employer, challan)
	})

	logger.Info("challan paid", "challan_id", challan.ID, "crn", crn, "amount", amount)
	return challan, nil
}

// SendDueReminders notifies every employer holding a due challan.
// Wired to the daily reminder job.
func (s *ChallanService) SendDueReminders(ctx context.Context) error {
	challans, err := s.challanRepo.FindAllDue(ctx)
	if err != nil {
		return err
	}

	for i := range challans {
		challan := &challans[i]
		message := fmt.Sprintf("Challan of Rs. %.2f for Return File Id %s (wage month %s) is awaiting payment.", challan.TotalAmount, challan.TRRN, challan.WageMonth)
		if err := s.notificationSvc.NotifyEmployer(ctx, challan.EmployerID, "Challan Payment Pending", message, models.NotificationTypeChallanDue); err != nil {
			logger.Error("failed to create due reminder", "challan_id", challan.ID, "error", err)
			continue
		}
		if err := s.emailSvc.SendDueReminder(ctx, &challan.Employer, challan); err != nil {
			logger.Error("failed to send due reminder email", "challan_id", challan.ID, "error", err)
		}
	}

	logger.Info("due challan reminders dispatched", "count", len(challans))
	return nil
}

// generateCRN produces the confirmation reference number returned by
// the mock bank
func generateCRN() string {
	return uuid.New().String()
}
