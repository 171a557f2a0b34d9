package models

import "time"

// ReturnFile represents an uploaded monthly contribution return (ECR)
type ReturnFile struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	EmployerID       uint       `gorm:"not null;index" json:"employer_id"`
	TRRN             string     `gorm:"uniqueIndex;not null" json:"trrn"`
	WageMonth        string     `gorm:"type:varchar(7);not null;index" json:"wage_month"`
	ReturnType       string     `gorm:"default:'Regular Return';not null" json:"return_type"`
	ContributionRate int        `gorm:"default:12;not null" json:"contribution_rate"`
	Remark           *string    `json:"remark"`
	Status           string     `gorm:"default:'in-process';not null;index" json:"status"`
	RejectionReason  *string    `gorm:"type:text" json:"rejection_reason,omitempty"`
	FilePath         string     `json:"-"`
	UploadedOn       time.Time  `gorm:"index" json:"uploaded_on"`
	ApprovedAt       *time.Time `json:"approved_at"`

	// Statement totals derived from the parsed return file. Immutable once
	// the return is approved.
	GrossWages  float64 `gorm:"type:decimal(15,2);default:0" json:"-"`
	EpfWages    float64 `gorm:"type:decimal(15,2);default:0" json:"-"`
	EpsWages    float64 `gorm:"type:decimal(15,2);default:0" json:"-"`
	EdliWages   float64 `gorm:"type:decimal(15,2);default:0" json:"-"`
	EmployeePf  float64 `gorm:"type:decimal(15,2);default:0" json:"-"`
	EmployerPf  float64 `gorm:"type:decimal(15,2);default:0" json:"-"`
	EmployerEps float64 `gorm:"type:decimal(15,2);default:0" json:"-"`
	Difference  float64 `gorm:"type:decimal(15,2);default:0" json:"-"`
	Refund      float64 `gorm:"type:decimal(15,2);default:0" json:"-"`

	MembersActive int `gorm:"default:0" json:"-"`
	MembersJoined int `gorm:"default:0" json:"-"`
	MembersLeft   int `gorm:"default:0" json:"-"`
	NcpDays       int `gorm:"default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Employer Employer `gorm:"foreignKey:EmployerID" json:"-"`
}

// TableName specifies the table name for ReturnFile
func (ReturnFile) TableName() string {
	return "return_files"
}

// Return status constants. "draft" is the pre-upload state a wage month sits
// in before any file exists; it never appears on a persisted row.
const (
	ReturnStatusDraft     = "draft"
	ReturnStatusInProcess = "in-process"
	ReturnStatusApproved  = "approved"
	ReturnStatusRejected  = "rejected"
)

// MayApprove returns true if the return can be approved
func (r *ReturnFile) MayApprove() bool {
	return r.Status == ReturnStatusInProcess
}

// MayReject returns true if the return can be rejected
func (r *ReturnFile) MayReject() bool {
	return r.Status == ReturnStatusInProcess
}

// IsApproved returns true once totals are frozen
func (r *ReturnFile) IsApproved() bool {
	return r.Status == ReturnStatusApproved
}

// WageTotals groups the wage columns of the return statement
type WageTotals struct {
	Gross float64 `json:"gross"`
	Epf   float64 `json:"epf"`
	Eps   float64 `json:"eps"`
	Edli  float64 `json:"edli"`
}

// ContributionTotals groups the contribution columns of the return statement
type ContributionTotals struct {
	EmployeePf  float64 `json:"employeePf"`
	EmployerPf  float64 `json:"employerPf"`
	EmployerEps float64 `json:"employerEps"`
	Difference  float64 `json:"difference"`
	Refund      float64 `json:"refund"`
}

// MemberCounts groups the membership movement figures
type MemberCounts struct {
	Active int `json:"active"`
	Joined int `json:"joined"`
	Left   int `json:"left"`
}

// ReturnTotals is the aggregate statement derived from a parsed return file
type ReturnTotals struct {
	Wages         WageTotals         `json:"wages"`
	Contributions ContributionTotals `json:"contributions"`
	Members       MemberCounts       `json:"members"`
	NcpDays       int                `json:"ncpDays"`
}

// Totals assembles the statement totals, or nil when the statement has not
// been derived yet. Callers must treat nil as "suppress dependent figures",
// never as a zero-filled statement.
func (r *ReturnFile) Totals() *ReturnTotals {
	if r.MembersActive == 0 && r.GrossWages == 0 && r.EmployeePf == 0 {
		return nil
	}
	return &ReturnTotals{
		Wages: WageTotals{
			Gross: r.GrossWages,
			Epf:   r.EpfWages,
			Eps:   r.EpsWages,
			Edli:  r.EdliWages,
		},
		Contributions: ContributionTotals{
			EmployeePf:  r.EmployeePf,
			EmployerPf:  r.EmployerPf,
			EmployerEps: r.EmployerEps,
			Difference:  r.Difference,
			Refund:      r.Refund,
		},
		Members: MemberCounts{
			Active: r.MembersActive,
			Joined: r.MembersJoined,
			Left:   r.MembersLeft,
		},
		NcpDays: r.NcpDays,
	}
}

// ReturnFileResponse is the JSON list-row format for returns
type ReturnFileResponse struct {
	ID               uint    `json:"id"`
	TRRN             string  `json:"trrn"`
	WageMonth        string  `json:"wageMonth"`
	ReturnType       string  `json:"returnType"`
	Status           string  `json:"status"`
	ContributionRate int     `json:"contributionRate"`
	Remark           *string `json:"remark"`
	RejectionReason  *string `json:"rejectionReason,omitempty"`
	UploadedOn       string  `json:"uploadedOn"`
}

// ToResponse converts ReturnFile to ReturnFileResponse
func (r *ReturnFile) ToResponse() ReturnFileResponse {
	return ReturnFileResponse{
		ID:               r.ID,
		TRRN:             r.TRRN,
		WageMonth:        r.WageMonth,
		ReturnType:       r.ReturnType,
		Status:           r.Status,
		ContributionRate: r.ContributionRate,
		Remark:           r.Remark,
		RejectionReason:  r.RejectionReason,
		UploadedOn:       r.UploadedOn.Format(time.RFC3339),
	}
}
