package service

import (
	"context"
	"testing"

	"github.com/kiptoo/carebill/internal/domain/entity"
	infraRepo "github.com/kiptoo/carebill/internal/infrastructure/repository"
	"github.com/kiptoo/carebill/internal/infrastructure/store"
	"github.com/kiptoo/carebill/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPharmacy(t *testing.T) *PharmacyService {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	stockRepo, err := infraRepo.NewStockRepository(s)
	require.NoError(t, err)
	prescRepo, err := infraRepo.NewPrescriptionRepository(s)
	require.NoError(t, err)
	return NewPharmacyService(stockRepo, prescRepo, zap.NewNop())
}

func restock(t *testing.T, svc *PharmacyService, medicine string, qty int, price string) {
	t.Helper()
	_, err := svc.Restock(context.Background(), RestockInput{
		Medicine: medicine, Quantity: qty, Price: decimal.RequireFromString(price),
	})
	require.NoError(t, err)
}

func item(t *testing.T, svc *PharmacyService, medicine string) entity.StockItem {
	t.Helper()
	items, err := svc.Items(context.Background())
	require.NoError(t, err)
	for _, it := range items {
		if it.Medicine == medicine {
			return it
		}
	}
	t.Fatalf("medicine %s not in stock", medicine)
	return entity.StockItem{}
}

func TestFulfillDecrementsStock(t *testing.T) {
	svc := newTestPharmacy(t)
	restock(t, svc, "Paracetamol", 120, "5")

	require.NoError(t, svc.Fulfill(context.Background(), "Paracetamol", 20))

	assert.Equal(t, 100, item(t, svc, "Paracetamol").Quantity)
}

func TestFulfillClampsToZero(t *testing.T) {
	svc := newTestPharmacy(t)
	restock(t, svc, "Paracetamol", 5, "5")

	require.NoError(t, svc.Fulfill(context.Background(), "Paracetamol", 7))

	assert.Equal(t, 0, item(t, svc, "Paracetamol").Quantity)
}

func TestFulfillUnknownMedicineIsNoOp(t *testing.T) {
	svc := newTestPharmacy(t)
	restock(t, svc, "Paracetamol", 120, "5")

	require.NoError(t, svc.Fulfill(context.Background(), "Unobtainium", 10))

	items, err := svc.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 120, items[0].Quantity)
}

func TestFulfillMatchesCaseInsensitively(t *testing.T) {
	svc := newTestPharmacy(t)
	restock(t, svc, "Paracetamol", 120, "5")

	require.NoError(t, svc.Fulfill(context.Background(), "paracetamol", 20))

	assert.Equal(t, 100, item(t, svc, "Paracetamol").Quantity)
}

func TestRestockMergesExistingRow(t *testing.T) {
	svc := newTestPharmacy(t)
	restock(t, svc, "Amoxicillin", 60, "12")

	restock(t, svc, "AMOXICILLIN", 40, "14")

	items, err := svc.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Amoxicillin", items[0].Medicine)
	assert.Equal(t, 100, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("14")))
}

func TestRestockRejectsEmptyMedicine(t *testing.T) {
	svc := newTestPharmacy(t)

	_, err := svc.Restock(context.Background(), RestockInput{Quantity: 10})

	assert.True(t, apperror.IsValidation(err))
}

func TestFulfillPrescriptionUnknownID(t *testing.T) {
	svc := newTestPharmacy(t)

	err := svc.FulfillPrescription(context.Background(), "99")

	assert.True(t, apperror.IsNotFound(err))
}

func TestFulfillPrescriptionDecrementsStock(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	stockRepo, err := infraRepo.NewStockRepository(s)
	require.NoError(t, err)
	prescRepo, err := infraRepo.NewPrescriptionRepository(s)
	require.NoError(t, err)
	svc := NewPharmacyService(stockRepo, prescRepo, zap.NewNop())
	ctx := context.Background()

	restock(t, svc, "Ibuprofen", 90, "8")
	require.NoError(t, prescRepo.Append(ctx, entity.Prescription{
		ID: "1", PatientID: "P1", DoctorID: "D1",
		Date: "2026-03-15", Medicine: "ibuprofen", Quantity: 30,
	}))

	require.NoError(t, svc.FulfillPrescription(ctx, "1"))

	assert.Equal(t, 60, item(t, svc, "Ibuprofen").Quantity)
}
