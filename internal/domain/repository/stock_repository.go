package repository

import (
	"context"

	"github.com/kiptoo/carebill/internal/domain/entity"
)

// StockRepository defines the interface for the pharmacy stock table.
type StockRepository interface {
	All(ctx context.Context) ([]entity.StockItem, error)
	// FindByMedicine matches case-insensitively and returns (nil, nil)
	// when no row matches.
	FindByMedicine(ctx context.Context, name string) (*entity.StockItem, error)
	Append(ctx context.Context, item entity.StockItem) error
	// Replace swaps the row whose medicine matches item.Medicine
	// case-insensitively.
	Replace(ctx context.Context, item entity.StockItem) error
}
