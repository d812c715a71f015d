package invoice

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() Invoice {
	return Invoice{
		Header:    Header{HospitalName: "Smart Hospital"},
		BillID:    "3",
		PatientID: "P7",
		Amount:    decimal.RequireFromString("1200.5"),
		Currency:  "KSh ",
		Date:      "2026-03-15",
		Mode:      "Card",
		Paid:      true,
	}
}

func TestFieldLines(t *testing.T) {
	lines := sampleInvoice().FieldLines()

	assert.Equal(t, []string{
		"Bill ID: 3",
		"Patient ID: P7",
		"Amount: KSh 1200.50",
		"Date: 2026-03-15",
		"Mode: Card",
		"Paid: yes",
	}, lines)
}

func TestRefCode(t *testing.T) {
	assert.Equal(t, "bill:3", sampleInvoice().RefCode())
}

func TestNewRendererFromConfig(t *testing.T) {
	pdf, err := NewRendererFromConfig("pdf")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", pdf.Ext())

	// An empty kind defaults to the document backend.
	def, err := NewRendererFromConfig("")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", def.Ext())

	img, err := NewRendererFromConfig("image")
	require.NoError(t, err)
	assert.Equal(t, ".png", img.Ext())

	_, err = NewRendererFromConfig("docx")
	assert.Error(t, err)
}

func TestPDFRendererOutput(t *testing.T) {
	data, err := NewPDFRenderer().Render(sampleInvoice())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestImageRendererOutput(t *testing.T) {
	data, err := NewImageRenderer().Render(sampleInvoice())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestEncodePayload(t *testing.T) {
	data, err := EncodePayload("ONLINEPAY|bill:3|patient:P7|amount:1200.50")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}
