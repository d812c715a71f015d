package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Header holds the hospital identity printed at the top of an invoice.
type Header struct {
	HospitalName string `json:"hospital_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// Invoice is a value object representing a renderable invoice.
// It is not a table record; it is composed from bill data at render time.
type Invoice struct {
	Header    Header          `json:"header"`
	BillID    string          `json:"bill_id"`
	PatientID string          `json:"patient_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Date      string          `json:"date"`
	Mode      string          `json:"mode"`
	Paid      bool            `json:"paid"`
}

// RefCode is the payment-reference payload embedded in the rendered
// artifact. It is distinct from the online-payment payload.
func (inv Invoice) RefCode() string {
	return "bill:" + inv.BillID
}

// Title is the header text block.
func (inv Invoice) Title() string {
	return inv.Header.HospitalName + " - Invoice"
}

// FieldLines returns the textual field block. Every renderer strategy must
// draw exactly these lines so the PDF and raster outputs carry identical
// content.
func (inv Invoice) FieldLines() []string {
	paid := "no"
	if inv.Paid {
		paid = "yes"
	}
	return []string{
		fmt.Sprintf("Bill ID: %s", inv.BillID),
		fmt.Sprintf("Patient ID: %s", inv.PatientID),
		fmt.Sprintf("Amount: %s%s", inv.Currency, inv.Amount.StringFixed(2)),
		fmt.Sprintf("Date: %s", inv.Date),
		fmt.Sprintf("Mode: %s", inv.Mode),
		fmt.Sprintf("Paid: %s", paid),
	}
}

// Renderer turns an invoice into a durable artifact.
type Renderer interface {
	// Render produces the artifact bytes.
	Render(inv Invoice) ([]byte, error)
	// Ext returns the artifact file extension, e.g. ".pdf".
	Ext() string
}

// NewRendererFromConfig creates the appropriate Renderer based on kind.
//
//	kind: "pdf" for the rich document backend, "image" for the raster
//	fallback. The capability is resolved once at startup; renderers are
//	never probed at render time.
func NewRendererFromConfig(kind string) (Renderer, error) {
	switch kind {
	case "pdf", "":
		return NewPDFRenderer(), nil
	case "image":
		return NewImageRenderer(), nil
	default:
		return nil, fmt.Errorf("invoice: unknown renderer kind %q (use pdf or image)", kind)
	}
}
