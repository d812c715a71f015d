package repository

import (
	"context"

	"github.com/kiptoo/carebill/internal/domain/entity"
	domainRepo "github.com/kiptoo/carebill/internal/domain/repository"
	"github.com/kiptoo/carebill/internal/infrastructure/store"
)

type prescriptionRepository struct {
	tbl *table[entity.Prescription]
}

// NewPrescriptionRepository loads the prescriptions table and returns a
// repository over it.
func NewPrescriptionRepository(s *store.Store) (domainRepo.PrescriptionRepository, error) {
	tbl, err := loadTable[entity.Prescription](s, store.PrescriptionsTable)
	if err != nil {
		return nil, err
	}
	return &prescriptionRepository{tbl: tbl}, nil
}

func (r *prescriptionRepository) All(ctx context.Context) ([]entity.Prescription, error) {
	return r.tbl.all(), nil
}

func (r *prescriptionRepository) IDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.tbl.rows))
	for _, p := range r.tbl.rows {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (r *prescriptionRepository) FindByID(ctx context.Context, id string) (*entity.Prescription, error) {
	for _, p := range r.tbl.rows {
		if p.ID == id {
			presc := p
			return &presc, nil
		}
	}
	return nil, nil
}

func (r *prescriptionRepository) Append(ctx context.Context, presc entity.Prescription) error {
	return r.tbl.mutate(func(rows []entity.Prescription) []entity.Prescription {
		return append(rows, presc)
	})
}
