package service

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kiptoo/carebill/internal/domain/entity"
	"github.com/kiptoo/carebill/internal/domain/repository"
	"github.com/kiptoo/carebill/pkg/apperror"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PharmacyService tracks medicine stock and applies prescription
// fulfilment decrements. Stock rows are created at restock time and only
// ever mutated by decrement; the core never deletes them.
type PharmacyService struct {
	stock  repository.StockRepository
	prescs repository.PrescriptionRepository
	logger *zap.Logger
}

// NewPharmacyService creates a new pharmacy service
func NewPharmacyService(
	stock repository.StockRepository,
	prescs repository.PrescriptionRepository,
	logger *zap.Logger,
) *PharmacyService {
	return &PharmacyService{stock: stock, prescs: prescs, logger: logger}
}

// RestockInput is the caller input for adding or topping up a medicine.
type RestockInput struct {
	Medicine string
	Quantity int
	Price    decimal.Decimal
}

func (i RestockInput) Validate() error {
	return toValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.Medicine, validation.Required),
		validation.Field(&i.Quantity, validation.Min(0)),
		validation.Field(&i.Price, validation.By(nonNegativeAmount)),
	))
}

// Items lists the stock ledger.
func (s *PharmacyService) Items(ctx context.Context) ([]entity.StockItem, error) {
	return s.stock.All(ctx)
}

// Fulfill applies a quantity against the named medicine. Matching is
// case-insensitive; an unknown medicine is a silent no-op, and a decrement
// that would underflow clamps the quantity to zero.
func (s *PharmacyService) Fulfill(ctx context.Context, medicine string, quantity int) error {
	item, err := s.stock.FindByMedicine(ctx, medicine)
	if err != nil {
		return err
	}
	if item == nil {
		s.logger.Warn("fulfilment for unknown medicine ignored",
			zap.String("medicine", medicine))
		return nil
	}

	remaining := item.Quantity - quantity
	if remaining < 0 {
		remaining = 0
	}
	item.Quantity = remaining
	if err := s.stock.Replace(ctx, *item); err != nil {
		return err
	}
	s.logger.Info("stock decremented",
		zap.String("medicine", item.Medicine),
		zap.Int("requested", quantity),
		zap.Int("remaining", remaining),
	)
	return nil
}

// FulfillPrescription applies a prescription's quantity as a stock
// decrement. The prescription itself is read-only.
func (s *PharmacyService) FulfillPrescription(ctx context.Context, prescID string) error {
	presc, err := s.prescs.FindByID(ctx, prescID)
	if err != nil {
		return err
	}
	if presc == nil {
		return apperror.NewNotFoundError("Prescription")
	}
	return s.Fulfill(ctx, presc.Medicine, presc.Quantity)
}

// Restock merges the given quantity into an existing row matched
// case-insensitively, updating its price, or appends a new row.
func (s *PharmacyService) Restock(ctx context.Context, input RestockInput) (*entity.StockItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.stock.FindByMedicine(ctx, input.Medicine)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += input.Quantity
		existing.Price = input.Price
		if err := s.stock.Replace(ctx, *existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := entity.StockItem{
		Medicine: input.Medicine,
		Quantity: input.Quantity,
		Price:    input.Price,
	}
	if err := s.stock.Append(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}
