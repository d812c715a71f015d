package entity

import (
	"github.com/kiptoo/carebill/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Bill is a financial record tied to a patient, amount and payment mode.
// Amount is fixed at creation and never mutated afterwards; the only field
// transitions are Status Pending->Paid and the matching MethodDetails write.
type Bill struct {
	ID            string           `csv:"id" json:"id"`
	PatientID     string           `csv:"patientId" json:"patient_id"`
	Amount        decimal.Decimal  `csv:"amount" json:"amount"`
	Date          string           `csv:"date" json:"date"`
	Mode          enum.PaymentMode `csv:"mode" json:"mode"`
	Status        enum.BillStatus  `csv:"status" json:"status"`
	MethodDetails string           `csv:"methodDetails" json:"method_details"`
}

// Paid reports whether the payment protocol for the bill's mode completed.
func (b Bill) Paid() bool {
	return b.Status == enum.BillStatusPaid
}
