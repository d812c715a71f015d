package repository

import (
	"context"

	"github.com/kiptoo/carebill/internal/domain/entity"
	domainRepo "github.com/kiptoo/carebill/internal/domain/repository"
	"github.com/kiptoo/carebill/internal/infrastructure/store"
)

type billRepository struct {
	tbl *table[entity.Bill]
}

// NewBillRepository loads the bills table and returns a repository over it.
func NewBillRepository(s *store.Store) (domainRepo.BillRepository, error) {
	tbl, err := loadTable[entity.Bill](s, store.BillsTable)
	if err != nil {
		return nil, err
	}
	return &billRepository{tbl: tbl}, nil
}

func (r *billRepository) All(ctx context.Context) ([]entity.Bill, error) {
	return r.tbl.all(), nil
}

func (r *billRepository) IDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.tbl.rows))
	for _, b := range r.tbl.rows {
		ids = append(ids, b.ID)
	}
	return ids, nil
}

func (r *billRepository) FindByID(ctx context.Context, id string) (*entity.Bill, error) {
	for _, b := range r.tbl.rows {
		if b.ID == id {
			bill := b
			return &bill, nil
		}
	}
	return nil, nil
}

func (r *billRepository) Append(ctx context.Context, bill entity.Bill) error {
	return r.tbl.mutate(func(rows []entity.Bill) []entity.Bill {
		return append(rows, bill)
	})
}

func (r *billRepository) Replace(ctx context.Context, bill entity.Bill) error {
	return r.tbl.mutate(func(rows []entity.Bill) []entity.Bill {
		for i := range rows {
			if rows[i].ID == bill.ID {
				rows[i] = bill
			}
		}
		return rows
	})
}

func (r *billRepository) Delete(ctx context.Context, id string) error {
	return r.tbl.mutate(func(rows []entity.Bill) []entity.Bill {
		kept := rows[:0]
		for _, b := range rows {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		return kept
	})
}
