package models

import "time"

// Challan represents a payment voucher generated when a return is approved.
// The statutory account heads are frozen at creation time; only the payment
// block mutates afterwards.
type Challan struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ReturnFileID uint   `gorm:"not null;uniqueIndex" json:"return_file_id"`
	EmployerID   uint   `gorm:"not null;index" json:"employer_id"`
	TRRN         string `gorm:"not null;index" json:"trrn"`
	WageMonth    string `gorm:"type:varchar(7);not null" json:"wage_month"`
	Status       string `gorm:"default:due;not null;index" json:"status"`

	Ac1         float64 `gorm:"type:decimal(15,2);not null" json:"ac1"`
	Ac2         float64 `gorm:"type:decimal(15,2);not null" json:"ac2"`
	Ac10        float64 `gorm:"type:decimal(15,2);not null" json:"ac10"`
	Ac21        float64 `gorm:"type:decimal(15,2);not null" json:"ac21"`
	Ac22        float64 `gorm:"type:decimal(15,2);not null" json:"ac22"`
	TotalAmount float64 `gorm:"type:decimal(15,2);not null" json:"total_amount"`

	PaymentBank   *string    `json:"payment_bank,omitempty"`
	PaymentCRN    *string    `gorm:"column:payment_crn" json:"payment_crn,omitempty"`
	PaymentAmount *float64   `gorm:"type:decimal(15,2)" json:"payment_amount,omitempty"`
	PaymentStatus *string    `json:"payment_status,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	ReturnFile ReturnFile `gorm:"foreignKey:ReturnFileID" json:"-"`
	Employer   Employer   `gorm:"foreignKey:EmployerID" json:"-"`
}

// TableName specifies the table name for Challan
func (Challan) TableName() string {
	return "challans"
}

// Challan status constants. Paid and cancelled are terminal.
const (
	ChallanStatusDue       = "due"
	ChallanStatusPaid      = "paid"
	ChallanStatusCancelled = "cancelled"
)

// MayPay returns true if the challan can still be paid
func (c *Challan) MayPay() bool {
	return c.Status == ChallanStatusDue
}

// MayCancel returns true if the challan can still be cancelled
func (c *Challan) MayCancel() bool {
	return c.Status == ChallanStatusDue
}

// IsPaid returns true once payment has been recorded
func (c *Challan) IsPaid() bool {
	return c.Status == ChallanStatusPaid
}

// ChallanAccounts groups the statutory account-head amounts on the wire
type ChallanAccounts struct {
	Ac1  float64 `json:"ac1"`
	Ac2  float64 `json:"ac2"`
	Ac10 float64 `json:"ac10"`
	Ac21 float64 `json:"ac21"`
	Ac22 float64 `json:"ac22"`
}

// ChallanPayment is the recorded payment block, present only after payment
type ChallanPayment struct {
	Bank   string  `json:"bank"`
	CRN    string  `json:"crn"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	PaidAt string  `json:"paidAt,omitempty"`
}

// ChallanResponse is the JSON response format for challans
type ChallanResponse struct {
	ID          uint            `json:"id"`
	TRRN        string          `json:"trrn"`
	WageMonth   string          `json:"wageMonth"`
	Status      string          `json:"status"`
	Accounts    ChallanAccounts `json:"accounts"`
	TotalAmount float64         `json:"totalAmount"`
	Payment     *ChallanPayment `json:"payment"`

	// Present when a full-payment context is active for this challan
	FullPayment *FullPaymentContext `json:"fullPayment,omitempty"`
}

// ToResponse converts Challan to ChallanResponse
func (c *Challan) ToResponse() ChallanResponse {
	resp := ChallanResponse{
		ID:        c.ID,
		TRRN:      c.TRRN,
		WageMonth: c.WageMonth,
		Status:    c.Status,
		Accounts: ChallanAccounts{
			Ac1:  c.Ac1,
			Ac2:  c.Ac2,
			Ac10: c.Ac10,
			Ac21: c.Ac21,
			Ac22: c.Ac22,
		},
		TotalAmount: c.TotalAmount,
	}

	if c.PaymentCRN != nil && c.PaymentBank != nil {
		payment := ChallanPayment{
			Bank: *c.PaymentBank,
			CRN:  *c.PaymentCRN,
		}
		if c.PaymentAmount != nil {
			payment.Amount = *c.PaymentAmount
		}
		if c.PaymentStatus != nil {
			payment.Status = *c.PaymentStatus
		}
		if c.PaidAt != nil {
			payment.PaidAt = c.PaidAt.Format(time.RFC3339)
		}
		resp.Payment = &payment
	}

	return resp
}
