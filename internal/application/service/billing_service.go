package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/kiptoo/carebill/internal/domain/entity"
	"github.com/kiptoo/carebill/internal/domain/enum"
	"github.com/kiptoo/carebill/internal/domain/repository"
	"github.com/kiptoo/carebill/pkg/apperror"
	"github.com/kiptoo/carebill/pkg/invoice"
	"github.com/kiptoo/carebill/pkg/sequence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BillingService owns the bill ledger: creation under the mode-specific
// payment protocol, online confirmation, and the compensating undo of the
// most recent creation.
type BillingService struct {
	bills    repository.BillRepository
	invoices *InvoiceService
	alloc    *sequence.Allocator
	undo     *undoStack
	logger   *zap.Logger
}

// NewBillingService creates a new billing service. The undo history starts
// empty and lives exactly as long as the service.
func NewBillingService(
	bills repository.BillRepository,
	invoices *InvoiceService,
	alloc *sequence.Allocator,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		bills:    bills,
		invoices: invoices,
		alloc:    alloc,
		undo:     &undoStack{},
		logger:   logger,
	}
}

// CreateBillInput is the caller input for any bill creation.
type CreateBillInput struct {
	PatientID string
	Amount    decimal.Decimal
}

func (i CreateBillInput) Validate() error {
	return toValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.PatientID, validation.Required),
		validation.Field(&i.Amount, validation.By(nonNegativeAmount)),
	))
}

// CardDetails is the nested capture step for card payments. The full card
// number is validated here and never persisted; only the last four digits
// survive into the ledger.
type CardDetails struct {
	HolderName string
	Number     string
	Expiry     string
	CVV        string
}

func (c CardDetails) Validate() error {
	return toValidationError(validation.ValidateStruct(&c,
		validation.Field(&c.HolderName, validation.Required),
		validation.Field(&c.Number, validation.Required, is.Digit, validation.Length(12, 0)),
		validation.Field(&c.Expiry, validation.Required),
		validation.Field(&c.CVV, validation.Required, is.Digit, validation.Length(3, 0)),
	))
}

// Bills returns the ledger contents in insertion order.
func (s *BillingService) Bills(ctx context.Context) ([]entity.Bill, error) {
	return s.bills.All(ctx)
}

// CreateCashBill records a cash payment: synchronous, single step, Paid
// immediately.
func (s *BillingService) CreateCashBill(ctx context.Context, input CreateBillInput) (*entity.Bill, error) {
	bill, err := s.newBill(ctx, input, enum.PaymentModeCash)
	if err != nil {
		return nil, err
	}
	bill.Status = enum.BillStatusPaid
	bill.MethodDetails = "Cash"
	if err := s.appendBill(ctx, bill); err != nil {
		return nil, err
	}
	s.renderInvoice(bill)
	s.logger.Info("cash bill recorded", zap.String("bill_id", bill.ID))
	return &bill, nil
}

// CreateCardBill validates the card capture before any record exists; a
// validation failure leaves the ledger untouched.
func (s *BillingService) CreateCardBill(ctx context.Context, input CreateBillInput, card CardDetails) (*entity.Bill, error) {
	if err := card.Validate(); err != nil {
		return nil, err
	}
	bill, err := s.newBill(ctx, input, enum.PaymentModeCard)
	if err != nil {
		return nil, err
	}
	bill.Status = enum.BillStatusPaid
	bill.MethodDetails = fmt.Sprintf("Card|%s|%s",
		card.HolderName, card.Number[len(card.Number)-4:])
	if err := s.appendBill(ctx, bill); err != nil {
		return nil, err
	}
	s.renderInvoice(bill)
	s.logger.Info("card bill recorded", zap.String("bill_id", bill.ID))
	return &bill, nil
}

// CreateOnlineBill is phase one of the online protocol: the bill is
// persisted as Pending and a scannable payment-reference image is returned.
// The bill remains Pending indefinitely until confirmed or undone.
func (s *BillingService) CreateOnlineBill(ctx context.Context, input CreateBillInput) (*entity.Bill, []byte, error) {
	bill, err := s.newBill(ctx, input, enum.PaymentModeOnline)
	if err != nil {
		return nil, nil, err
	}
	if err := s.appendBill(ctx, bill); err != nil {
		return nil, nil, err
	}
	png, err := invoice.EncodePayload(onlinePayload(bill))
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("online bill pending", zap.String("bill_id", bill.ID))
	return &bill, png, nil
}

// ConfirmOnlinePayment is phase two: an explicit caller-triggered
// confirmation that moves the bill to Paid and renders its invoice.
func (s *BillingService) ConfirmOnlinePayment(ctx context.Context, billID string) (*entity.Bill, error) {
	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.Mode != enum.PaymentModeOnline {
		return nil, apperror.NewValidationError(
			fmt.Sprintf("bill %s is not an online bill", billID))
	}
	if bill.Paid() {
		return nil, apperror.NewValidationError(
			fmt.Sprintf("bill %s is already paid", billID))
	}

	bill.Status = enum.BillStatusPaid
	bill.MethodDetails = "OnlineQR"
	if err := s.bills.Replace(ctx, *bill); err != nil {
		return nil, err
	}
	s.renderInvoice(*bill)
	s.logger.Info("online payment confirmed", zap.String("bill_id", bill.ID))
	return bill, nil
}

// Undo reverses the most recent creation: a full deletion of the matching
// row, not a status reset. An empty history is an informational not-found,
// and the ledger stays untouched.
func (s *BillingService) Undo(ctx context.Context) (*entity.Bill, error) {
	entry, ok := s.undo.pop()
	if !ok {
		return nil, apperror.NewAppError(apperror.KindNotFound, "nothing to undo")
	}
	if err := s.bills.Delete(ctx, entry.ID); err != nil {
		s.undo.push(entry)
		return nil, err
	}
	// The freed id may be reallocated; the next bill carrying it must not
	// inherit this bill's invoice.
	s.invoices.Forget(entry.ID)
	s.logger.Info("bill creation undone", zap.String("bill_id", entry.ID))
	return &entry, nil
}

// UndoDepth reports how many creations can still be reversed.
func (s *BillingService) UndoDepth() int {
	return s.undo.len()
}

// newBill validates input and assembles the initial Pending record with a
// freshly allocated identifier.
func (s *BillingService) newBill(ctx context.Context, input CreateBillInput, mode enum.PaymentMode) (entity.Bill, error) {
	if err := input.Validate(); err != nil {
		return entity.Bill{}, err
	}
	ids, err := s.bills.IDs(ctx)
	if err != nil {
		return entity.Bill{}, err
	}
	id, err := s.alloc.Next(ids)
	if err != nil {
		switch {
		case errors.Is(err, sequence.ErrInvalidIdentifier):
			return entity.Bill{}, apperror.NewInvalidIdentifierError(err.Error())
		case errors.Is(err, sequence.ErrIdentifierCollision):
			return entity.Bill{}, apperror.NewConflictError(err.Error())
		default:
			return entity.Bill{}, err
		}
	}
	return entity.Bill{
		ID:        id,
		PatientID: input.PatientID,
		Amount:    input.Amount,
		Date:      time.Now().Format(dateLayout),
		Mode:      mode,
		Status:    enum.BillStatusPending,
	}, nil
}

// appendBill persists the creation and records it in the undo history.
// Creation and push are one logical unit: if persistence fails, no history
// entry is made.
func (s *BillingService) appendBill(ctx context.Context, bill entity.Bill) error {
	if err := s.bills.Append(ctx, bill); err != nil {
		return err
	}
	s.undo.push(bill)
	return nil
}

// renderInvoice runs at the transition into Paid. A failed render does not
// unwind a completed payment; it is reported and the bill stands.
func (s *BillingService) renderInvoice(bill entity.Bill) {
	if _, err := s.invoices.Render(bill); err != nil {
		s.logger.Error("invoice render failed",
			zap.String("bill_id", bill.ID), zap.Error(err))
	}
}

// onlinePayload derives the scannable payment-reference payload for phase
// one of the online protocol. Distinct from the reference code embedded in
// rendered invoices.
func onlinePayload(b entity.Bill) string {
	return fmt.Sprintf("ONLINEPAY|bill:%s|patient:%s|amount:%s",
		b.ID, b.PatientID, b.Amount.StringFixed(2))
}

// nonNegativeAmount is the ozzo rule for decimal amounts.
func nonNegativeAmount(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if amount.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

// toValidationError converts ozzo validation output into the application
// error taxonomy.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if errors.As(err, &ve) {
		fields := make([]apperror.FieldError, 0, len(ve))
		for name, fieldErr := range ve {
			fields = append(fields, apperror.FieldError{Field: name, Message: fieldErr.Error()})
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
		return apperror.NewFieldValidationError(fields)
	}
	return apperror.NewValidationError(err.Error())
}
