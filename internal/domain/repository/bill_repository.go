package repository

import (
	"context"

	"github.com/kiptoo/carebill/internal/domain/entity"
)

// BillRepository defines the interface for the bill ledger table. The table
// is materialized wholesale: every mutation persists the entire table, and
// a persist failure leaves the in-memory working set unchanged.
type BillRepository interface {
	All(ctx context.Context) ([]entity.Bill, error)
	// IDs returns the identifiers in insertion order.
	IDs(ctx context.Context) ([]string, error)
	// FindByID returns (nil, nil) when no bill carries the id.
	FindByID(ctx context.Context, id string) (*entity.Bill, error)
	Append(ctx context.Context, bill entity.Bill) error
	// Replace swaps the row matching bill.ID for the given record.
	Replace(ctx context.Context, bill entity.Bill) error
	// Delete removes the row matching id; a full deletion, not a status
	// change. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}
