package enum

import "fmt"

// PaymentMode determines the completion protocol for a bill.
type PaymentMode int

const (
	PaymentModeCash   PaymentMode = 0
	PaymentModeCard   PaymentMode = 1
	PaymentModeOnline PaymentMode = 2
)

func (m PaymentMode) String() string {
	return [...]string{"Cash", "Card", "Online"}[m]
}

// MarshalCSV writes the textual mode into the table file.
func (m PaymentMode) MarshalCSV() (string, error) {
	if m < PaymentModeCash || m > PaymentModeOnline {
		return "", fmt.Errorf("unknown payment mode %d", int(m))
	}
	return m.String(), nil
}

// UnmarshalCSV rejects unknown modes at the record-store boundary.
func (m *PaymentMode) UnmarshalCSV(s string) error {
	switch s {
	case "Cash":
		*m = PaymentModeCash
	case "Card":
		*m = PaymentModeCard
	case "Online":
		*m = PaymentModeOnline
	default:
		return fmt.Errorf("unknown payment mode %q", s)
	}
	return nil
}

// ParsePaymentMode converts caller input into a PaymentMode.
func ParsePaymentMode(s string) (PaymentMode, error) {
	var m PaymentMode
	if err := m.UnmarshalCSV(s); err != nil {
		return 0, err
	}
	return m, nil
}
