package repository

import (
	"github.com/kiptoo/carebill/internal/infrastructure/store"
)

// table owns the in-memory working set for one CSV table. There is exactly
// one writer in the process, so no locking discipline is applied; the one
// invariant enforced here is that memory and disk stay consistent: every
// mutation persists the whole table and restores the previous working set
// when the save fails.
type table[T any] struct {
	store *store.Store
	name  string
	rows  []T
}

func loadTable[T any](s *store.Store, name string) (*table[T], error) {
	rows, err := store.LoadTable[T](s, name)
	if err != nil {
		return nil, err
	}
	return &table[T]{store: s, name: name, rows: rows}, nil
}

// all returns a copy of the working set so callers cannot alias rows.
func (t *table[T]) all() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// mutate applies fn to a copy of the working set, persists the result and
// rolls back the in-memory state if the save fails.
func (t *table[T]) mutate(fn func(rows []T) []T) error {
	next := fn(t.all())
	if err := store.SaveTable(t.store, t.name, next); err != nil {
		return err
	}
	t.rows = next
	return nil
}
