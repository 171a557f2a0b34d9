package models

import "time"

// Member represents an active member on the establishment's roster
// (the annexure used to prepare the monthly return file).
type Member struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EmployerID      uint      `gorm:"not null;index" json:"employer_id"`
	UAN             string    `gorm:"column:uan;uniqueIndex;not null" json:"uan"`
	MemberName      string    `gorm:"not null" json:"memberName"`
	DateOfJoining   *string   `json:"dateOfJoining"`
	DateOfExit      *string   `json:"dateOfExit"`
	AadhaarStatus   string    `gorm:"default:Validated" json:"aadhaarStatus"`
	PensionMember   string    `gorm:"default:Yes" json:"pensionMember"`
	HigherWages     string    `gorm:"default:No" json:"higherWages"`
	DeferredPension string    `gorm:"default:No" json:"deferredPension"`
	Nationality     string    `gorm:"default:Indian" json:"nationality"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// TableName specifies the table name for Member
func (Member) TableName() string {
	return "members"
}

// IsActive returns true if the member has not exited the establishment
func (m *Member) IsActive() bool {
	return m.DateOfExit == nil || *m.DateOfExit == ""
}

// Bank represents a payment bank available on the challan payment page
type Bank struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"uniqueIndex;not null" json:"name"`
	AccountNumber string    `json:"accountNumber"`
	Active        bool      `gorm:"default:true" json:"-"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// TableName specifies the table name for Bank
func (Bank) TableName() string {
	return "banks"
}
