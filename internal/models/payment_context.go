package models

import "time"

// FullPaymentContext is the derived quote carrying the statutory interest and
// damages surcharges from the full-payment summary to the challan payment
// step. It is never persisted to the database; it lives in the keyed context
// store until the matching challan is paid or the context expires.
type FullPaymentContext struct {
	ChallanID    uint    `json:"challanId"`
	TRRN         string  `json:"trrn"`
	WageMonth    string  `json:"wageMonth"`
	ReturnAmount float64 `json:"returnAmount"`
	Interest7Q   float64 `json:"interest7q"`
	Damages14B   float64 `json:"damages14b"`
	GrandTotal   float64 `json:"grandTotal"`

	Finalized bool      `json:"finalized"`
	CreatedAt time.Time `json:"createdAt"`
}
