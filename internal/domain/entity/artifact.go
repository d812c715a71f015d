package entity

import (
	"time"

	"github.com/google/uuid"
)

// Artifact is a rendered invoice on disk. It is not a table row; it is
// registered in memory at render time, exactly once per bill, and export
// operations copy it without re-rendering.
type Artifact struct {
	ID         uuid.UUID `json:"id"`
	BillID     string    `json:"bill_id"`
	Path       string    `json:"path"`
	Format     string    `json:"format"`
	RenderedAt time.Time `json:"rendered_at"`
}
