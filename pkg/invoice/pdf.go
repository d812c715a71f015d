package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Fixed single-page layout, all coordinates in millimetres.
const (
	pdfMarginX    = 15.0
	pdfHeaderY    = 25.0
	pdfFieldsY    = 45.0
	pdfLineStep   = 8.0
	pdfQRX        = 150.0
	pdfQRY        = 15.0
	pdfQRSize     = 42.0
	pdfHeaderSize = 18.0
	pdfFieldSize  = 12.0
)

type pdfRenderer struct{}

// NewPDFRenderer creates the rich-document renderer: an A4 page with a
// header text block, a field block and the reference code in the top-right
// region.
func NewPDFRenderer() Renderer {
	return &pdfRenderer{}
}

func (r *pdfRenderer) Render(inv Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfHeaderSize)
	pdf.Text(pdfMarginX, pdfHeaderY, inv.Title())

	pdf.SetFont("Helvetica", "", pdfFieldSize)
	y := pdfFieldsY
	for _, line := range inv.FieldLines() {
		pdf.Text(pdfMarginX, y, line)
		y += pdfLineStep
	}

	png, err := EncodePayload(inv.RefCode())
	if err != nil {
		return nil, err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	name := "refcode-" + inv.BillID
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, pdfQRX, pdfQRY, pdfQRSize, pdfQRSize, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) Ext() string {
	return ".pdf"
}
