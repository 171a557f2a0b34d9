package services

import (
	"context"

	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
)

// DashboardService assembles the landing-page view for an employer
type DashboardService struct {
	employerRepo    repository.EmployerRepository
	returnRepo      repository.ReturnRepository
	challanRepo     repository.ChallanRepository
	memberRepo      repository.MemberRepository
	notificationSvc *NotificationService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	employerRepo repository.EmployerRepository,
	returnRepo repository.ReturnRepository,
	challanRepo repository.ChallanRepository,
	memberRepo repository.MemberRepository,
	notificationSvc *NotificationService,
) *DashboardService {
	return &DashboardService{
		employerRepo:    employerRepo,
		returnRepo:      returnRepo,
		challanRepo:     challanRepo,
		memberRepo:      memberRepo,
		notificationSvc: notificationSvc,
	}
}

// DashboardData is the aggregate landing-page payload
type DashboardData struct {
	Employer       models.EmployerResponse `json:"employer"`
	AccountSummary *AccountSummary         `json:"accountSummary"`
	ReturnCounts   map[string]int64        `json:"returnCounts"`
	DueAmount      float64                 `json:"dueAmount"`
	ActiveMembers  int64                   `json:"activeMembers"`
	Notifications  []models.Notification   `json:"notifications"`
}

// Build assembles the dashboard for an employer. The account summary
// derives from the latest approved return and is nil until one exists.
func (s *DashboardService) Build(ctx context.Context, employerID uint) (*DashboardData, error) {
	employer, err := s.employerRepo.FindByID(ctx, employerID)
	if err != nil {
		return nil, ErrNotFound
	}

	data := &DashboardData{
		Employer: employer.ToResponse(),
	}

	if latest, err := s.latestApproved(ctx, employerID); err == nil && latest != nil {
		paid := false
		if challan, err := s.challanRepo.FindByReturnFileID(ctx, latest.ID); err == nil {
			paid = challan.IsPaid()
		}
		data.AccountSummary = BuildAccountSummary(latest.Totals(), paid)
	}

	counts, err := s.returnRepo.CountByStatus(ctx, employerID)
	if err != nil {
		return nil, err
	}
	data.ReturnCounts = counts

	dueAmount, err := s.challanRepo.SumDueAmount(ctx, employerID)
	if err != nil {
		return nil, err
	}
	data.DueAmount = dueAmount

	activeMembers, err := s.memberRepo.CountActive(ctx, employerID)
	if err != nil {
		return nil, err
	}
	data.ActiveMembers = activeMembers

	notifications, err := s.notificationSvc.FindByEmployer(ctx, employerID, 10)
	if err != nil {
		return nil, err
	}
	data.Notifications = notifications

	return data, nil
}

// latestApproved returns the most recently uploaded approved return,
// or nil when none exists
func (s *DashboardService) latestApproved(ctx context.Context, employerID uint) (*models.ReturnFile, error) {
	recent, err := s.returnRepo.FindRecent(ctx, employerID, "", 20)
	if err != nil {
		return nil, err
	}
	for i := range recent {
		if recent[i].IsApproved() {
			return &recent[i], nil
		}
	}
	return nil, nil
}
