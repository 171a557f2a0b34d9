package services

import (
	"time"

	"github.com/pfportal/employer-api/internal/config"
	"github.com/pfportal/employer-api/internal/jobs"
	"github.com/pfportal/employer-api/internal/repository"
	"github.com/pfportal/employer-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Auth         *AuthService
	Dashboard    *DashboardService
	Return       *ReturnService
	Challan      *ChallanService
	Annexure     *AnnexureService
	Notification *NotificationService
	Email        *EmailService
	Statement    *StatementService
	Receipt      *ReceiptService

	// PaymentContexts backs the full-payment flow and the scheduled purge job
	PaymentContexts *PaymentContextStore
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, storage *storage.LocalStorage, cfg *config.Config) *Services {
	notificationSvc := NewNotificationService(repos.Notification)
	emailSvc := NewEmailService(cfg)
	contextStore := NewPaymentContextStore(time.Duration(cfg.PaymentContextTTL) * time.Minute)

	return &Services{
		Auth:            NewAuthService(repos.Employer, cfg),
		Dashboard:       NewDashboardService(repos.Employer, repos.Return, repos.Challan, repos.Member, notificationSvc),
		Return:          NewReturnService(repos.Return, repos.Challan, repos.Employer, notificationSvc, emailSvc, contextStore, storage, worker),
		Challan:         NewChallanService(repos.Challan, repos.Bank, repos.Employer, notificationSvc, emailSvc, contextStore, worker),
		Annexure:        NewAnnexureService(repos.Member, repos.Bank),
		Notification:    notificationSvc,
		Email:           emailSvc,
		Statement:       NewStatementService(repos.Return, repos.Employer),
		Receipt:         NewReceiptService(repos.Challan, repos.Employer),
		PaymentContexts: contextStore,
	}
}
