package models

import "time"

// Notification represents an employer-facing notification
type Notification struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	EmployerID       uint       `gorm:"not null;index" json:"employer_id"`
	Title            string     `gorm:"not null" json:"title"`
	Message          string     `gorm:"not null" json:"message"`
	NotificationType *string    `gorm:"index" json:"notification_type"`
	ReadAt           *time.Time `gorm:"index" json:"read_at"`
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Associations
	Employer Employer `gorm:"foreignKey:EmployerID" json:"-"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// Notification type constants
const (
	NotificationTypeReturnApproved   = "return_approved"
	NotificationTypeReturnRejected   = "return_rejected"
	NotificationTypeChallanPaid      = "challan_paid"
	NotificationTypeChallanCancelled = "challan_cancelled"
	NotificationTypeChallanDue       = "challan_due_reminder"
)

// IsRead returns true if notification has been read
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkAsRead marks the notification as read
func (n *Notification) MarkAsRead() {
	now := time.Now()
	n.ReadAt = &now
}
