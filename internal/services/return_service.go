package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/pfportal/employer-api/internal/jobs"
	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
	"github.com/pfportal/employer-api/internal/statemachine"
	"github.com/pfportal/employer-api/internal/storage"
	"github.com/pfportal/employer-api/pkg/logger"
)

// ReturnService handles the monthly return lifecycle: upload, scrutiny,
// approval with challan generation, and the full-payment preparation flow.
type ReturnService struct {
	returnRepo      repository.ReturnRepository
	challanRepo     repository.ChallanRepository
	employerRepo    repository.EmployerRepository
	notificationSvc *NotificationService
	emailSvc        *EmailService
	contextStore    *PaymentContextStore
	storage         *storage.LocalStorage
	worker          *jobs.Worker
}

// NewReturnService creates a new return service
func NewReturnService(
	returnRepo repository.ReturnRepository,
	challanRepo repository.ChallanRepository,
	employerRepo repository.EmployerRepository,
	notificationSvc *NotificationService,
	emailSvc *EmailService,
	contextStore *PaymentContextStore,
	storage *storage.LocalStorage,
	worker *jobs.Worker,
) *ReturnService {
	return &ReturnService{
		returnRepo:      returnRepo,
		challanRepo:     challanRepo,
		employerRepo:    employerRepo,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
		contextStore:    contextStore,
		storage:         storage,
		worker:          worker,
	}
}

// UploadInput carries the multipart upload and its form fields
type UploadInput struct {
	File             multipart.File
	Header           *multipart.FileHeader
	WageMonth        string
	ReturnType       string
	ContributionRate int
	Remark           string
}

// Upload validates and ingests a monthly return file. The file must be
// plain text, parse as a member-row return, and target a wage month
// with no open return.
func (s *ReturnService) Upload(ctx context.Context, employerID uint, input UploadInput) (*models.ReturnFile, error) {
	if input.Header == nil || !storage.ValidReturnExtension(input.Header.Filename) {
		return nil, ErrFileValidation
	}
	if input.Header.Size > storage.MaxFileSize() {
		return nil, ErrFileValidation
	}
	if ct := input.Header.Header.Get("Content-Type"); ct != "" && !storage.IsValidContentType(ct) {
		return nil, ErrFileValidation
	}

	if _, err := time.Parse("2006-01", input.WageMonth); err != nil {
		return nil, fmt.Errorf("invalid wage month %q", input.WageMonth)
	}

	open, err := s.returnRepo.HasOpenReturn(ctx, employerID, input.WageMonth)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, ErrOpenReturn
	}

	content, err := io.ReadAll(io.LimitReader(input.File, storage.MaxFileSize()+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(content)) > storage.MaxFileSize() {
		return nil, ErrFileValidation
	}

	rows, err := ParseECR(string(content))
	if err != nil {
		logger.Warn("return file rejected during parsing", "employer_id", employerID, "error", err)
		return nil, ErrFileValidation
	}
	totals := DeriveTotals(rows)

	filePath, err := s.storage.UploadFromBytes(content, input.Header.Filename, "returns")
	if err != nil {
		return nil, err
	}

	returnType := input.ReturnType
	if returnType == "" {
		returnType = "Regular Return"
	}
	rate := input.ContributionRate
	if rate == 0 {
		rate = 12
	}

	rf := &models.ReturnFile{
		EmployerID:       employerID,
		TRRN:             generateTRRN(),
		WageMonth:        input.WageMonth,
		ReturnType:       returnType,
		ContributionRate: rate,
		Status:           models.ReturnStatusInProcess,
		FilePath:         filePath,
		UploadedOn:       time.Now(),

		GrossWages:  totals.Wages.Gross,
		EpfWages:    totals.Wages.Epf,
		EpsWages:    totals.Wages.Eps,
		EdliWages:   totals.Wages.Edli,
		EmployeePf:  totals.Contributions.EmployeePf,
		EmployerPf:  totals.Contributions.EmployerPf,
		EmployerEps: totals.Contributions.EmployerEps,
		Difference:  totals.Contributions.Difference,
		Refund:      totals.Contributions.Refund,

		MembersActive: totals.Members.Active,
		NcpDays:       totals.NcpDays,
	}
	if input.Remark != "" {
		rf.Remark = &input.Remark
	}

	if err := s.returnRepo.Create(ctx, rf); err != nil {
		s.storage.Delete(filePath)
		return nil, err
	}

	logger.Info("return file uploaded", "trrn", rf.TRRN, "wage_month", rf.WageMonth, "members", totals.Members.Active)
	return rf, nil
}

// MonthlyStatus is one row of the wage-month status grid
type MonthlyStatus struct {
	WageMonth string  `json:"wageMonth"`
	Status    string  `json:"status"`
	TRRN      *string `json:"trrn,omitempty"`
}

// MonthlyDashboard lists the last 12 wage months with the status of the
// latest return for each. Months with no upload show as draft.
func (s *ReturnService) MonthlyDashboard(ctx context.Context, employerID uint) ([]MonthlyStatus, error) {
	now := time.Now()
	months := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		months = append(months, now.AddDate(0, -i, 0).Format("2006-01"))
	}

	files, err := s.returnRepo.FindByWageMonths(ctx, employerID, months)
	if err != nil {
		return nil, err
	}

	// The latest upload wins per wage month; rows arrive ordered by
	// uploaded_on descending, so the first row per month is kept.
	latest := make(map[string]*models.ReturnFile, len(files))
	for i := range files {
		if _, ok := latest[files[i].WageMonth]; !ok {
			latest[files[i].WageMonth] = &files[i]
		}
	}

	statuses := make([]MonthlyStatus, 0, len(months))
	for _, m := range months {
		row := MonthlyStatus{WageMonth: m, Status: models.ReturnStatusDraft}
		if rf, ok := latest[m]; ok {
			row.Status = rf.Status
			row.TRRN = &rf.TRRN
		}
		statuses = append(statuses, row)
	}
	return statuses, nil
}

// FileList groups in-process returns with the recent history for a wage month
type FileList struct {
	InProcess []models.ReturnFileResponse `json:"inProcess"`
	Recent    []models.ReturnFileResponse `json:"recent"`
}

// ListFiles returns the pending and recently concluded returns for a
// wage month (all wage months when empty).
func (s *ReturnService) ListFiles(ctx context.Context, employerID uint, wageMonth string) (*FileList, error) {
	inProcess, err := s.returnRepo.FindInProcess(ctx, employerID, wageMonth)
	if err != nil {
		return nil, err
	}
	recent, err := s.returnRepo.FindRecent(ctx, employerID, wageMonth, 10)
	if err != nil {
		return nil, err
	}

	list := &FileList{
		InProcess: make([]models.ReturnFileResponse, 0, len(inProcess)),
		Recent:    make([]models.ReturnFileResponse, 0, len(recent)),
	}
	for i := range inProcess {
		list.InProcess = append(list.InProcess, inProcess[i].ToResponse())
	}
	for i := range recent {
		list.Recent = append(list.Recent, recent[i].ToResponse())
	}
	return list, nil
}

// ReturnDetail is the full view of one return, with its statement totals
// and the generated challan reference when one exists
type ReturnDetail struct {
	models.ReturnFileResponse
	Totals        *models.ReturnTotals `json:"totals"`
	ChallanID     *uint                `json:"challanId,omitempty"`
	ChallanStatus *string              `json:"challanStatus,omitempty"`
}

// Detail returns one return with statement totals and challan linkage
func (s *ReturnService) Detail(ctx context.Context, employerID, id uint) (*ReturnDetail, error) {
	rf, err := s.returnRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, ErrNotFound
	}

	detail := &ReturnDetail{
		ReturnFileResponse: rf.ToResponse(),
		Totals:             rf.Totals(),
	}

	if challan, err := s.challanRepo.FindByReturnFileID(ctx, rf.ID); err == nil {
		detail.ChallanID = &challan.ID
		detail.ChallanStatus = &challan.Status
	}
	return detail, nil
}

// Approve moves an in-process return to approved and generates its
// challan from the statement totals. Notification and email are
// dispatched in the background.
func (s *ReturnService) Approve(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
	rf, err := s.returnRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, ErrNotFound
	}

	machine := statemachine.NewReturnFSM(rf)
	if err := machine.Approve(ctx); err != nil {
		return nil, ErrInvalidState
	}
	now := time.Now()
	rf.ApprovedAt = &now

	if err := s.returnRepo.Update(ctx, rf); err != nil {
		return nil, err
	}

	challan, err := s.createChallan(ctx, rf)
	if err != nil {
		return nil, err
	}

	s.worker.EnqueueAsync(func(jobCtx context.Context) error {
		title := "Return Approved"
		message := fmt.Sprintf("Return File Id %s for wage month %s has been approved. Challan of Rs. %.2f is due.", rf.TRRN, rf.WageMonth, challan.TotalAmount)
		if err := s.notificationSvc.NotifyEmployer(jobCtx, rf.EmployerID, title, message, models.NotificationTypeReturnApproved); err != nil {
			return err
		}
		employer, err := s.employerRepo.FindByID(jobCtx, rf.EmployerID)
		if err != nil {
			return err
		}
		return s.emailSvc.SendReturnApproved(jobCtx, employer, rf, challan)
	})

	logger.Info("return approved", "trrn", rf.TRRN, "challan_id", challan.ID, "amount", challan.TotalAmount)
	return rf, nil
}

// createChallan freezes the per-head dues of an approved return into a
// due challan
func (s *ReturnService) createChallan(ctx context.Context, rf *models.ReturnFile) (*models.Challan, error) {
	dues := AccountDues(rf.Totals())

	challan := &models.Challan{
		ReturnFileID: rf.ID,
		EmployerID:   rf.EmployerID,
		TRRN:         rf.TRRN,
		WageMonth:    rf.WageMonth,
		Status:       models.ChallanStatusDue,
		Ac1:          dues.Ac1,
		Ac2:          dues.Ac2,
		Ac10:         dues.Ac10,
		Ac21:         dues.Ac21,
		Ac22:         dues.Ac22,
		TotalAmount:  dues.Total,
	}
	if err := s.challanRepo.Create(ctx, challan); err != nil {
		return nil, err
	}
	return challan, nil
}

// Reject moves an in-process return to rejected with a scrutiny reason.
// The wage month reopens for a fresh upload.
func (s *ReturnService) Reject(ctx context.Context, employerID, id uint, reason string) (*models.ReturnFile, error) {
	rf, err := s.returnRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, ErrNotFound
	}

	machine := statemachine.NewReturnFSM(rf)
	if err := machine.Reject(ctx); err != nil {
		return nil, ErrInvalidState
	}
	rf.RejectionReason = &reason

	if err := s.returnRepo.Update(ctx, rf); err != nil {
		return nil, err
	}

	s.worker.EnqueueAsync(func(jobCtx context.Context) error {
		title := "Return Rejected"
		message := fmt.Sprintf("Return File Id %s for wage month %s has been rejected: %s", rf.TRRN, rf.WageMonth, reason)
		if err := s.notificationSvc.NotifyEmployer(jobCtx, rf.EmployerID, title, message, models.NotificationTypeReturnRejected); err != nil {
			return err
		}
		employer, err := s.employerRepo.FindByID(jobCtx, rf.EmployerID)
		if err != nil {
			return err
		}
		return s.emailSvc.SendReturnRejected(jobCtx, employer, rf, reason)
	})

	logger.Info("return rejected", "trrn", rf.TRRN, "reason", reason)
	return rf, nil
}

// File opens the stored return file for download
func (s *ReturnService) File(ctx context.Context, employerID, id uint) (*os.File, string, error) {
	rf, err := s.returnRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, "", ErrNotFound
	}

	f, err := s.storage.Download(rf.FilePath)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s%s", rf.TRRN, filepath.Ext(rf.FilePath))
	return f, filename, nil
}

// PrepareFullPayment computes the composite remittance (return amount
// plus 7Q interest and 14B damages) for the return's due challan and
// stores it keyed by challan, leaving any other challan's context
// untouched.
func (s *ReturnService) PrepareFullPayment(ctx context.Context, employerID, id uint) (*models.FullPaymentContext, error) {
	rf, err := s.returnRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, ErrNotFound
	}

	challan, err := s.challanRepo.FindByReturnFileID(ctx, rf.ID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !challan.MayPay() {
		return nil, ErrInvalidState
	}

	interest, damages, grandTotal := FullPaymentQuote(challan.TotalAmount)
	paymentCtx := &models.FullPaymentContext{
		ChallanID:    challan.ID,
		TRRN:         challan.TRRN,
		WageMonth:    challan.WageMonth,
		ReturnAmount: challan.TotalAmount,
		Interest7Q:   interest,
		Damages14B:   damages,
		GrandTotal:   grandTotal,
	}
	s.contextStore.Put(paymentCtx)
	return paymentCtx, nil
}

// FinalizeResult carries the confirmation message shown after finalizing
type FinalizeResult struct {
	Message string                     `json:"message"`
	Context *models.FullPaymentContext `json:"context"`
}

// FinalizeChallan freezes the prepared full-payment context so the
// challan's payment uses the composite grand total
func (s *ReturnService) FinalizeChallan(ctx context.Context, employerID, id uint) (*FinalizeResult, error) {
	rf, err := s.returnRepo.FindByID(ctx, employerID, id)
	if err != nil {
		return nil, ErrNotFound
	}

	challan, err := s.challanRepo.FindByReturnFileID(ctx, rf.ID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !challan.MayPay() {
		return nil, ErrInvalidState
	}

	paymentCtx := s.contextStore.Finalize(challan.ID)
	if paymentCtx == nil {
		return nil, ErrContextExpired
	}

	return &FinalizeResult{
		Message: fmt.Sprintf("Return File Id %s finalized. Please use View / Pay Challans to proceed with payment.", rf.TRRN),
		Context: paymentCtx,
	}, nil
}

// generateTRRN produces a numeric temporary return reference number:
// a timestamp prefix plus a random 4-digit suffix
func generateTRRN() string {
	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		suffix = big.NewInt(0)
	}
	return fmt.Sprintf("%s%04d", time.Now().Format("20060102150405"), suffix.Int64())
}
