package repository

import (
	"context"
	"strings"

	"github.com/kiptoo/carebill/internal/domain/entity"
	domainRepo "github.com/kiptoo/carebill/internal/domain/repository"
	"github.com/kiptoo/carebill/internal/infrastructure/store"
)

type stockRepository struct {
	tbl *table[entity.StockItem]
}

// NewStockRepository loads the pharmacy table and returns a repository
// over it.
func NewStockRepository(s *store.Store) (domainRepo.StockRepository, error) {
	tbl, err := loadTable[entity.StockItem](s, store.PharmacyTable)
	if err != nil {
		return nil, err
	}
	return &stockRepository{tbl: tbl}, nil
}

func (r *stockRepository) All(ctx context.Context) ([]entity.StockItem, error) {
	return r.tbl.all(), nil
}

func (r *stockRepository) FindByMedicine(ctx context.Context, name string) (*entity.StockItem, error) {
	for _, item := range r.tbl.rows {
		if strings.EqualFold(item.Medicine, name) {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (r *stockRepository) Append(ctx context.Context, item entity.StockItem) error {
	return r.tbl.mutate(func(rows []entity.StockItem) []entity.StockItem {
		return append(rows, item)
	})
}

func (r *stockRepository) Replace(ctx context.Context, item entity.StockItem) error {
	return r.tbl.mutate(func(rows []entity.StockItem) []entity.StockItem {
		for i := range rows {
			if strings.EqualFold(rows[i].Medicine, item.Medicine) {
				rows[i] = item
			}
		}
		return rows
	})
}
