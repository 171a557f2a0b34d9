package models

import "time"

// Employer represents a registered establishment that files provident fund returns
type Employer struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	EstablishmentID   string    `gorm:"uniqueIndex;not null" json:"establishment_id"`
	EstablishmentName string    `gorm:"not null" json:"establishment_name"`
	Username          string    `gorm:"uniqueIndex;not null" json:"username"`
	EncryptedPassword string    `gorm:"not null" json:"-"`
	Email             string    `json:"email"`
	Address           *string   `json:"address"`
	Status            string    `gorm:"default:active;not null;index" json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for Employer
func (Employer) TableName() string {
	return "employers"
}

// Employer status constants
const (
	EmployerStatusActive   = "active"
	EmployerStatusInactive = "inactive"
)

// IsActive returns true if the employer account may log in
func (e *Employer) IsActive() bool {
	return e.Status == EmployerStatusActive
}

// EmployerResponse is the JSON shape returned at login and on the dashboard
type EmployerResponse struct {
	EstablishmentID   string `json:"establishmentId"`
	EstablishmentName string `json:"establishmentName"`
}

// ToResponse converts Employer to EmployerResponse
func (e *Employer) ToResponse() EmployerResponse {
	return EmployerResponse{
		EstablishmentID:   e.EstablishmentID,
		EstablishmentName: e.EstablishmentName,
	}
}
