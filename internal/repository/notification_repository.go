package repository

import (
	"context"

	"github.com/pfportal/employer-api/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	FindByEmployer(ctx context.Context, employerID uint, limit int) ([]models.Notification, error)
	MarkAllAsRead(ctx context.Context, employerID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) FindByEmployer(ctx context.Context, employerID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	db := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, employerID uint) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("employer_id = ? AND read_at IS NULL", employerID).
		Update("read_at", gorm.Expr("NOW()")).Error
}
