package invoice

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"
)

// Fixed canvas layout, coordinates in pixels.
const (
	imgWidth    = 700
	imgHeight   = 900
	imgMarginX  = 30.0
	imgHeaderY  = 50.0
	imgFieldsY  = 90.0
	imgLineStep = 30.0
	imgQRX      = 480
	imgQRY      = 90
	imgQRSize   = 160
)

type imageRenderer struct{}

// NewImageRenderer creates the raster fallback renderer: the same field
// layout as the document renderer on a fixed-size canvas, with the
// reference code pasted at a fixed offset.
func NewImageRenderer() Renderer {
	return &imageRenderer{}
}

func (r *imageRenderer) Render(inv Invoice) ([]byte, error) {
	dc := gg.NewContext(imgWidth, imgHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	dc.DrawString(inv.Title(), imgMarginX, imgHeaderY)
	y := imgFieldsY
	for _, line := range inv.FieldLines() {
		dc.DrawString(line, imgMarginX, y)
		y += imgLineStep
	}

	qr, err := qrcode.New(inv.RefCode(), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("invoice: encode reference code: %w", err)
	}
	dc.DrawImage(qr.Image(imgQRSize), imgQRX, imgQRY)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("invoice: render image: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *imageRenderer) Ext() string {
	return ".png"
}
