package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pfportal/employer-api/internal/jobs"
	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
	"github.com/pfportal/employer-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type mockBankRepo struct {
	repository.BankRepository
	mockFindByName func(ctx context.Context, name string) (*models.Bank, error)
	mockFindActive func(ctx context.Context) ([]models.Bank, error)
}

func (m *mockBankRepo) FindByName(ctx context.Context, name string) (*models.Bank, error) {
	return m.mockFindByName(ctx, name)
}

func (m *mockBankRepo) FindActive(ctx context.Context) ([]models.Bank, error) {
	return m.mockFindActive(ctx)
}

type challanServiceFixture struct {
	service     *ChallanService
	challanRepo *mockChallanRepo
	bankRepo    *mockBankRepo
	store       *PaymentContextStore
}

func newChallanServiceFixture(t *testing.T) *challanServiceFixture {
	t.Helper()
	logger.Setup("test")

	challanRepo := &mockChallanRepo{}
	bankRepo := &mockBankRepo{
		mockFindByName: func(ctx context.Context, name string) (*models.Bank, error) {
			return &models.Bank{Name: name, Active: true}, nil
		},
	}
	employerRepo := &mockEmployerRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Employer, error) {
			return activeEmployer("secret123"), nil
		},
	}
	notificationSvc := NewNotificationService(&mockNotificationRepo{})
	emailSvc := NewEmailService(testConfig())
	contextStore := NewPaymentContextStore(time.Hour)

	worker := jobs.NewWorker(1)
	t.Cleanup(worker.Shutdown)

	svc := NewChallanService(challanRepo, bankRepo, employerRepo, notificationSvc, emailSvc, contextStore, worker)
	return &challanServiceFixture{
		service:     svc,
		challanRepo: challanRepo,
		bankRepo:    bankRepo,
		store:       contextStore,
	}
}

func dueChallan() *models.Challan {
	return &models.Challan{
		ID:           42,
		ReturnFileID: 10,
		EmployerID:   1,
		TRRN:         "20260801120000001",
		WageMonth:    "2026-07",
		Status:       models.ChallanStatusDue,
		Ac1:          1250,
		Ac2:          500,
		Ac10:         550,
		Ac21:         75,
		TotalAmount:  2375,
	}
}

func TestChallanService_Pay_Success(t *testing.T) {
	f := newChallanServiceFixture(t)

	challan := dueChallan()
	f.challanRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.Challan, error) {
		return challan, nil
	}

	paid, err := f.service.Pay(context.Background(), 1, 42, "State Bank")
	assert.NoError(t, err)
	assert.Equal(t, models.ChallanStatusPaid, paid.Status)
	assert.NotNil(t, paid.PaymentCRN)
	assert.NotEmpty(t, *paid.PaymentCRN)
	assert.Equal(t, "State Bank", *paid.PaymentBank)
	assert.Equal(t, 2375.0, *paid.PaymentAmount)
	assert.Equal(t, models.ChallanStatusPaid, *paid.PaymentStatus)
	assert.NotNil(t, paid.PaidAt)
}

func TestChallanService_Pay_UsesFinalizedGrandTotal(t *testing.T) {
	f := newChallanServiceFixture(t)

	challan := dueChallan()
	f.challanRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.Challan, error) {
		return challan, nil
	}

	f.store.Put(newContext(42, 2375))
	assert.NotNil(t, f.store.Finalize(42))

	paid, err := f.service.Pay(context.Background(), 1, 42, "State Bank")
	assert.NoError(t, err)
	assert.Equal(t, 2416.0, *paid.PaymentAmount)

	// Context is consumed on payment
	assert.Nil(t, f.store.Get(42))
}

func TestChallanService_Pay_UpdateFailureKeepsContext(t *testing.T) {
	f := newChallanServiceFixture(t)

	challan := dueChallan()
	f.challanRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.Challan, error) {
		return challan, nil
	}
	f.challanRepo.mockUpdate = func(ctx context.Context, challan *models.Challan) error {
		return errors.New("db down")
	}

	f.store.Put(newContext(42, 2375))
	assert.NotNil(t, f.store.Finalize(42))

	_, err := f.service.Pay(context.Background(), 1, 42, "State Bank")
	assert.Error(t, err)

	// The finalized quote survives the failed write so the retry still
	// charges the composite grand total
	kept := f.store.Get(42)
	assert.NotNil(t, kept)
	assert.True(t, kept.Finalized)

	challan.Status = models.ChallanStatusDue
	f.challanRepo.mockUpdate = nil

	paid, err := f.service.Pay(context.Background(), 1, 42, "State Bank")
	assert.NoError(t, err)
	assert.Equal(t, 2416.0, *paid.PaymentAmount)
	assert.Nil(t, f.store.Get(42))
}

func TestChallanService_Pay_IgnoresUnfinalizedContext(t *testing.T) {
	f := newChallanServiceFixture(t)

	challan := dueChallan()
	f.challanRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.Challan, error) {
		return challan, nil
	}

	f.store.Put(newContext(42, 2375))

	paid, err := f.service.Pay(context.Background(), 1, 42, "State Bank")
	assert.NoError(t, err)
	assert.Equal(t, 2375.0, *paid.PaymentAmount)
}

func TestChallanService_Pay_CancelledChallan(t *testing.T) {
	f := newChallanServiceFixture(t)

	challan := dueChallan()
	challan.Status = models.ChallanStatusCancelled
	f.challanRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.Challan, error) {
		return challan, nil
	}

	_, err := f.service.Pay(context.Background(), 1, 42, "State Bank")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestChallanService_Pay_UnknownBank(t *testing.T) {
	f := newChallanServiceFixture(t)

	challan := dueChallan()
	f.challanRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.Challan, error) {
		return challan, nil
	}
	f.bankRepo.mockFindByName = func(ctx context.Context, name string) (*models.Bank, error) {
		return nil, ErrNotFound
	}

	_, err := f.service.Pay(context.Background(), 1, 42, "Unknown Bank")
	assert.ErrorIs(t, err, ErrBankNotSupported)

	// Payment must not be recorded
	assert.Equal(t, models.ChallanStatusDue, challan.Status)
}

func TestChallanService_ValidateBank_Inactive(t *testing.T) {
	f := newChallanServiceFixture(t)

	f.bankRepo.mockFindByName = func(ctx context.Context, name string) (*models.Bank, error) {
		return &models.Bank{Name: name, Active: false}, nil
	}

	_, err := f.service.ValidateBank(context.Background(), "Dormant Bank")
	assert.ErrorIs(t, err, ErrBankNotSupported)
}

func TestChallanService_ValidateBank_Success(t *testing.T) {
	f := newChallanServiceFixture(t)

	validation, err := f.service.ValidateBank(context.Background(), "State Bank")
	assert.NoError(t, err)
	assert.True(t, validation.Valid)
	assert.Equal(t, "State Bank", validation.Bank)
}

func TestChallanService_Cancel(t *testing.T) {
	f := newChallanServiceFixture(t)

	challan := dueChallan()
	f.challanRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.Challan, error) {
		return challan, nil
	}

	f.store.Put(newContext(42, 2375))

	cancelled, err := f.service.Cancel(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.Equal(t, models.ChallanStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	// Prepared context is dropped with the challan
	assert.Nil(t, f.store.Get(42))
}

func TestChallanService_Cancel_PaidChallan(t *testing.T) {
	f := newChallanServiceFixture(t)

	challan := dueChallan()
	challan.Status = models.ChallanStatusPaid
	f.challanRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.Challan, error) {
		return challan, nil
	}

	_, err := f.service.Cancel(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestChallanService_Show_AnnotatesLiveContext(t *testing.T) {
	f := newChallanServiceFixture(t)

	challan := dueChallan()
	f.challanRepo.mockFindByID = func(ctx context.Context, employerID, id uint) (*models.Challan, error) {
		return challan, nil
	}

	f.store.Put(newContext(42, 2375))

	resp, err := f.service.Show(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.NotNil(t, resp.FullPayment)
	assert.Equal(t, 2416.0, resp.FullPayment.GrandTotal)
}
