package repository

import (
	"context"
	"testing"

	"github.com/kiptoo/carebill/internal/domain/entity"
	"github.com/kiptoo/carebill/internal/infrastructure/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockRepositoryFindByMedicineIgnoresCase(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	repo, err := NewStockRepository(s)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, entity.StockItem{
		Medicine: "Paracetamol", Quantity: 120, Price: decimal.RequireFromString("5"),
	}))

	found, err := repo.FindByMedicine(ctx, "PARACETAMOL")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Paracetamol", found.Medicine)

	missing, err := repo.FindByMedicine(ctx, "Aspirin")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStockRepositoryReplaceMatchesCaseInsensitively(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	repo, err := NewStockRepository(s)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, entity.StockItem{
		Medicine: "Amoxicillin", Quantity: 60, Price: decimal.RequireFromString("12"),
	}))

	require.NoError(t, repo.Replace(ctx, entity.StockItem{
		Medicine: "amoxicillin", Quantity: 45, Price: decimal.RequireFromString("12"),
	}))

	items, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 45, items[0].Quantity)
}
