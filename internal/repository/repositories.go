package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Employer     EmployerRepository
	Return       ReturnRepository
	Challan      ChallanRepository
	Member       MemberRepository
	Bank         BankRepository
	Notification NotificationRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Employer:     NewEmployerRepository(db),
		Return:       NewReturnRepository(db),
		Challan:      NewChallanRepository(db),
		Member:       NewMemberRepository(db),
		Bank:         NewBankRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
