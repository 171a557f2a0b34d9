package services

import (
	"context"

	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
)

type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) FindByEmployer(ctx context.Context, employerID uint, limit int) ([]models.Notification, error) {
	return s.repo.FindByEmployer(ctx, employerID, limit)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, employerID uint) error {
	return s.repo.MarkAllAsRead(ctx, employerID)
}

func (s *NotificationService) NotifyEmployer(ctx context.Context, employerID uint, title, message, notifType string) error {
	notification := &models.Notification{
		EmployerID:       employerID,
		Title:            title,
		Message:          message,
		NotificationType: &notifType,
	}
	return s.repo.Create(ctx, notification)
}
