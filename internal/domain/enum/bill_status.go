package enum

import "fmt"

// BillStatus represents the payment state of a bill. A bill is never
// partially paid; the only transition is Pending -> Paid.
type BillStatus int

const (
	BillStatusPending BillStatus = 0
	BillStatusPaid    BillStatus = 1
)

func (s BillStatus) String() string {
	return [...]string{"Pending", "Paid"}[s]
}

func (s BillStatus) MarshalCSV() (string, error) {
	if s != BillStatusPending && s != BillStatusPaid {
		return "", fmt.Errorf("unknown bill status %d", int(s))
	}
	return s.String(), nil
}

func (s *BillStatus) UnmarshalCSV(str string) error {
	switch str {
	case "Pending":
		*s = BillStatusPending
	case "Paid":
		*s = BillStatusPaid
	default:
		return fmt.Errorf("unknown bill status %q", str)
	}
	return nil
}
