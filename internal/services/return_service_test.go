package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/pfportal/employer-api/internal/jobs"
	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
	"github.com/pfportal/employer-api/internal/storage"
	"github.com/pfportal/employer-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type mockReturnRepo struct {
	repository.ReturnRepository
	mockCreate        func(ctx context.Context, rf *models.ReturnFile) error
	mockUpdate        func(ctx context.Context, rf *models.ReturnFile) error
	mockFindByID      func(ctx context.Context, employerID, id uint) (*models.ReturnFile, error)
	mockHasOpenReturn func(ctx context.Context, employerID uint, wageMonth string) (bool, error)
}

func (m *mockReturnRepo) Create(ctx context.Context, rf *models.ReturnFile) error {
	return m.mockCreate(ctx, rf)
}

func (m *mockReturnRepo) Update(ctx context.Context, rf *models.ReturnFile) error {
	if m.mockUpdate != nil {
		return m.mockUpdate(ctx, rf)
	}
	return nil
}

func (m *mockReturnRepo) FindByID(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
	return m.mockFindByID(ctx, employerID, id)
}

func (m *mockReturnRepo) HasOpenReturn(ctx context.Context, employerID uint, wageMonth string) (bool, error) {
	if m.mockHasOpenReturn != nil {
		return m.mockHasOpenReturn(ctx, employerID, wageMonth)
	}
	return false, nil
}

type mockChallanRepo struct {
	repository.ChallanRepository
	mockCreate             func(ctx context.Context, challan *models.Challan) error
	mockUpdate             func(ctx context.Context, challan *models.Challan) error
	mockFindByID           func(ctx context.Context, employerID, id uint) (*models.Challan, error)
	mockFindByReturnFileID func(ctx context.Context, returnFileID uint) (*models.Challan, error)
}

func (m *mockChallanRepo) Create(ctx context.Context, challan *models.Challan) error {
	return m.mockCreate(ctx, challan)
}

func (m *mockChallanRepo) Update(ctx context.Context, challan *models.Challan) error {
	if m.mockUpdate != nil {
		return m.mockUpdate(ctx, challan)
	}
	return nil
}

func (m *mockChallanRepo) FindByID(ctx context.Context, employerID, id uint) (*models.Challan, error) {
	return m.mockFindByID(ctx, employerID, id)
}

func (m *mockChallanRepo) FindByReturnFileID(ctx context.Context, returnFileID uint) (*models.Challan, error) {
	return m.mockFindByReturnFileID(ctx, returnFileID)
}

type mockNotificationRepo struct {
	repository.NotificationRepository
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	return nil
}

type returnServiceFixture struct {
	service     *ReturnService
	returnRepo  *mockReturnRepo
	challanRepo *mockChallanRepo
	store       *PaymentContextStore
	worker      *jobs.Worker
}

func newReturnServiceFixture(t *testing.T) *returnServiceFixture {
	t.Helper()
	logger.Setup("test")

	returnRepo := &mockReturnRepo{}
	challanRepo := &mockChallanRepo{}
	employerRepo := &mockEmployerRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Employer, error) {
			return activeEmployer("secret123"), nil
		},
	}
	notificationSvc := NewNotificationService(&mockNotificationRepo{})
	emailSvc := NewEmailService(testConfig())
	contextStore := NewPaymentContextStore(time.Hour)

	localStorage, err := storage.NewLocalStorage(t.TempDir())
	assert.NoError(t, err)

	worker := jobs.NewWorker(1)
	t.Cleanup(worker.Shutdown)

	svc := NewReturnService(returnRepo, challanRepo, employerRepo, notificationSvc, emailSvc, contextStore, localStorage, worker)
	return &returnServiceFixture{
		service:     svc,
		returnRepo:  returnRepo,
		challanRepo: challanRepo,
		store:       contextStore,
		worker:      worker,
	}
}

func makeUpload(t *testing.T, filename, content string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	assert.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	header := form.File["file"][0]
	file, err := header.Open()
	assert.NoError(t, err)
	return file, header
}

func TestReturnService_Upload_Success(t *testing.T) {
	f := newReturnServiceFixture(t)

	var created *models.ReturnFile
	f.returnRepo.mockCreate = func(ctx context.Context, rf *models.ReturnFile) error {
		created = rf
		return nil
	}

	file, header := makeUpload(t, "ecr_jul2026.txt", sampleECR)
	defer file.Close()

	rf, err := f.service.Upload(context.Background(), 1, UploadInput{
		File:      file,
		Header:    header,
		WageMonth: "2026-07",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, models.ReturnStatusInProcess, rf.Status)
	assert.NotEmpty(t, rf.TRRN)
	assert.Equal(t, "Regular Return", rf.ReturnType)
	assert.Equal(t, 12, rf.ContributionRate)
	assert.Equal(t, 20000.0, rf.GrossWages)
	assert.Equal(t, 2, rf.MembersActive)
}

func TestReturnService_Upload_RejectsNonTextFile(t *testing.T) {
	f := newReturnServiceFixture(t)

	file, header := makeUpload(t, "return.pdf", sampleECR)
	defer file.Close()

	_, err := f.service.Upload(context.Background(), 1, UploadInput{
		File:      file,
		Header:    header,
		WageMonth: "2026-07",
	})

	assert.ErrorIs(t, err, ErrFileValidation)
	assert.Equal(t, "File Validation Failed.", err.Error())
}

func TestReturnService_Upload_RejectsMalformedContent(t *testing.T) {
	f := newReturnServiceFixture(t)

	file, header := makeUpload(t, "return.txt", "not a return file at all")
	defer file.Close()

	_, err := f.service.Upload(context.Background(), 1, UploadInput{
		File:      file,
		Header:    header,
		WageMonth: "2026-07",
	})

	assert.ErrorIs(t, err, ErrFileValidation)
}

func TestReturnService_Upload_RejectsInvalidWageMonth(t *testing.T) {
	f := newReturnServiceFixture(t)

	file, header := makeUpload(t, "return.txt", sampleECR)
	defer file.Close()

	_, err := f.service.Upload(context.Background(), 1, UploadInput{
		File:      file,
		Header:    header,
		WageMonth: "July 2026",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid wage month")
}

func TestReturnService_Upload_BlockedByOpenReturn(t *testing.T) {
	f := newReturnServiceFixture(t)

	f.returnRepo.mockHasOpenReturn = func(ctx context.Context, employerID uint, wageMonth string) (bool, error) {
		return true, nil
	}

	file, header := makeUpload(t, "return.txt", sampleECR)
	defer file.Close()

	_, err := f.service.Upload(context.Background(), 1, UploadInput{
		File:      file,
		Header:    header,
		WageMonth: "2026-07",
	})

	assert.ErrorIs(t, err, ErrOpenReturn)
}

func inProcessReturn() *models.ReturnFile {
	return &models.ReturnFile{
		ID:         10,
		EmployerID: 1,
		TRRN:       "20260801120000001",
		WageMonth:  "2026-07",
		Status:     models.ReturnStatusInProcess,

		GrossWages:  20000,
		EpfWages:    15000,
		EpsWages:    15000,
		EdliWages:   15000,
		EmployeePf:  1000,
		EmployerPf:  800,
		EmployerEps: 550,
		Difference:  250,

		MembersActive: 2,
	}
}

func TestReturnService_Approve_GeneratesChallan(t *testing.T) {
	f := newReturnServiceFixture(t)

	rf := inProcessReturn()
	f.returnRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
		return rf, nil
	}

	var challan *models.Challan
	f.challanRepo.mockCreate = func(ctx context.Context, c *models.Challan) error {
		c.ID = 42
		challan = c
		return nil
	}

	approved, err := f.service.Approve(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, models.ReturnStatusApproved, approved.Status)
	assert.NotNil(t, approved.ApprovedAt)

	assert.NotNil(t, challan)
	assert.Equal(t, models.ChallanStatusDue, challan.Status)
	assert.Equal(t, rf.TRRN, challan.TRRN)
	assert.Equal(t, 1250.0, challan.Ac1)
	assert.Equal(t, 500.0, challan.Ac2)
	assert.Equal(t, 550.0, challan.Ac10)
	assert.Equal(t, 75.0, challan.Ac21)
	assert.Equal(t, 2375.0, challan.TotalAmount)
}

func TestReturnService_Approve_AlreadyApproved(t *testing.T) {
	f := newReturnServiceFixture(t)

	rf := inProcessReturn()
	rf.Status = models.ReturnStatusApproved
	f.returnRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
		return rf, nil
	}

	_, err := f.service.Approve(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestReturnService_Reject(t *testing.T) {
	f := newReturnServiceFixture(t)

	rf := inProcessReturn()
	f.returnRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
		return rf, nil
	}

	rejected, err := f.service.Reject(context.Background(), 1, 10, "Member wage mismatch")
	assert.NoError(t, err)
	assert.Equal(t, models.ReturnStatusRejected, rejected.Status)
	assert.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Member wage mismatch", *rejected.RejectionReason)
}

func TestReturnService_PrepareFullPayment(t *testing.T) {
	f := newReturnServiceFixture(t)

	rf := inProcessReturn()
	rf.Status = models.ReturnStatusApproved
	f.returnRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
		return rf, nil
	}
	f.challanRepo.mockFindByReturnFileID = func(ctx context.Context, returnFileID uint) (*models.Challan, error) {
		return &models.Challan{
			ID:          42,
			TRRN:        rf.TRRN,
			WageMonth:   rf.WageMonth,
			Status:      models.ChallanStatusDue,
			TotalAmount: 2375,
		}, nil
	}

	paymentCtx, err := f.service.PrepareFullPayment(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), paymentCtx.ChallanID)
	assert.Equal(t, 2375.0, paymentCtx.ReturnAmount)
	assert.Equal(t, 29.0, paymentCtx.Interest7Q)
	assert.Equal(t, 12.0, paymentCtx.Damages14B)
	assert.Equal(t, 2416.0, paymentCtx.GrandTotal)
	assert.False(t, paymentCtx.Finalized)

	// Stored under the challan's key
	assert.NotNil(t, f.store.Get(42))
}

func TestReturnService_PrepareFullPayment_PaidChallan(t *testing.T) {
	f := newReturnServiceFixture(t)

	rf := inProcessReturn()
	rf.Status = models.ReturnStatusApproved
	f.returnRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
		return rf, nil
	}
	f.challanRepo.mockFindByReturnFileID = func(ctx context.Context, returnFileID uint) (*models.Challan, error) {
		return &models.Challan{ID: 42, Status: models.ChallanStatusPaid, TotalAmount: 2375}, nil
	}

	_, err := f.service.PrepareFullPayment(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestReturnService_FinalizeChallan(t *testing.T) {
	f := newReturnServiceFixture(t)

	rf := inProcessReturn()
	rf.Status = models.ReturnStatusApproved
	f.returnRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
		return rf, nil
	}
	f.challanRepo.mockFindByReturnFileID = func(ctx context.Context, returnFileID uint) (*models.Challan, error) {
		return &models.Challan{ID: 42, TRRN: rf.TRRN, WageMonth: rf.WageMonth, Status: models.ChallanStatusDue, TotalAmount: 2375}, nil
	}

	_, err := f.service.PrepareFullPayment(context.Background(), 1, 10)
	assert.NoError(t, err)

	result, err := f.service.FinalizeChallan(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Return File Id %s finalized. Please use View / Pay Challans to proceed with payment.", rf.TRRN), result.Message)
	// A successful finalize always carries the context it froze
	assert.NotNil(t, result.Context)
	assert.True(t, result.Context.Finalized)
	assert.Equal(t, 2416.0, result.Context.GrandTotal)
}

func TestReturnService_FinalizeChallan_NoContext(t *testing.T) {
	f := newReturnServiceFixture(t)

	rf := inProcessReturn()
	rf.Status = models.ReturnStatusApproved
	f.returnRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
		return rf, nil
	}
	f.challanRepo.mockFindByReturnFileID = func(ctx context.Context, returnFileID uint) (*models.Challan, error) {
		return &models.Challan{ID: 42, Status: models.ChallanStatusDue, TotalAmount: 2375}, nil
	}

	_, err := f.service.FinalizeChallan(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrContextExpired)
}
