package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kiptoo/carebill/internal/domain/entity"
	"github.com/kiptoo/carebill/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTableMissingFileIsEmpty(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	rows, err := LoadTable[entity.Bill](s, BillsTable)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadTableEmptyFileIsEmpty(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.Path(BillsTable), nil, 0o644))

	rows, err := LoadTable[entity.Bill](s, BillsTable)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSaveTableRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	bills := []entity.Bill{
		{
			ID:            "1",
			PatientID:     "P7",
			Amount:        decimal.RequireFromString("1200.50"),
			Date:          "2026-03-15",
			Mode:          enum.PaymentModeCard,
			Status:        enum.BillStatusPaid,
			MethodDetails: "Card|Jane Doe|4242",
		},
		{
			ID:        "2",
			PatientID: "P8",
			Amount:    decimal.RequireFromString("300"),
			Date:      "2026-03-16",
			Mode:      enum.PaymentModeOnline,
			Status:    enum.BillStatusPending,
		},
	}
	require.NoError(t, SaveTable(s, BillsTable, bills))

	loaded, err := LoadTable[entity.Bill](s, BillsTable)

	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "1", loaded[0].ID)
	assert.True(t, loaded[0].Amount.Equal(decimal.RequireFromString("1200.50")))
	assert.Equal(t, enum.PaymentModeCard, loaded[0].Mode)
	assert.Equal(t, "Card|Jane Doe|4242", loaded[0].MethodDetails)
	assert.Equal(t, enum.BillStatusPending, loaded[1].Status)
	assert.Equal(t, "", loaded[1].MethodDetails)
}

func TestSaveTableReplacesWholeFile(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	items := []entity.StockItem{
		{Medicine: "Paracetamol", Quantity: 120, Price: decimal.RequireFromString("5")},
		{Medicine: "Ibuprofen", Quantity: 90, Price: decimal.RequireFromString("8")},
	}
	require.NoError(t, SaveTable(s, PharmacyTable, items))
	require.NoError(t, SaveTable(s, PharmacyTable, items[:1]))

	loaded, err := LoadTable[entity.StockItem](s, PharmacyTable)

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Paracetamol", loaded[0].Medicine)
}

func TestLoadTableRejectsUnknownEnumValue(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	csv := "id,patientId,amount,date,mode,status,methodDetails\n" +
		"1,P1,100,2026-03-15,Barter,Paid,\n"
	require.NoError(t, os.WriteFile(s.Path(BillsTable), []byte(csv), 0o644))

	_, err = LoadTable[entity.Bill](s, BillsTable)

	assert.Error(t, err)
}

func TestSaveTableLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, SaveTable(s, DoctorsTable, []entity.Doctor{
		{ID: "1", Name: "Dr. Asha Singh", Specialization: "Cardiology"},
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DoctorsTable, filepath.Base(entries[0].Name()))
}
