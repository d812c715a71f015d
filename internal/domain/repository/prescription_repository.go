package repository

import (
	"context"

	"github.com/kiptoo/carebill/internal/domain/entity"
)

// PrescriptionRepository defines the interface for the prescriptions table.
// Prescriptions are read-only with respect to the billing core.
type PrescriptionRepository interface {
	All(ctx context.Context) ([]entity.Prescription, error)
	IDs(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id string) (*entity.Prescription, error)
	Append(ctx context.Context, presc entity.Prescription) error
}
