// Package sequence allocates table identifiers from the row currently at
// the end of the in-memory ordered sequence: next = last + 1. After a
// deletion from the middle of a table the last row may not carry the true
// maximum, so Next also scans the surviving ids and rejects a collision
// instead of overwriting.
package sequence

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidIdentifier means the last row's id is not an integer.
	ErrInvalidIdentifier = errors.New("sequence: identifier is not an integer")
	// ErrIdentifierCollision means last+1 already names a surviving row.
	ErrIdentifierCollision = errors.New("sequence: allocated identifier collides with an existing row")
)

// Allocator derives the next identifier for one table.
type Allocator struct {
	Start int // first identifier for an empty table
}

// NewAllocator returns an allocator whose empty-table identifier is 1.
func NewAllocator() *Allocator {
	return &Allocator{Start: 1}
}

// Next returns the identifier for the row about to be appended.
func (a *Allocator) Next(ids []string) (string, error) {
	if len(ids) == 0 {
		return strconv.Itoa(a.Start), nil
	}
	last := ids[len(ids)-1]
	n, err := strconv.Atoi(last)
	if err != nil {
		return "", fmt.Errorf("%w: last id %q", ErrInvalidIdentifier, last)
	}
	candidate := strconv.Itoa(n + 1)
	for _, id := range ids {
		if id == candidate {
			return "", fmt.Errorf("%w: %s", ErrIdentifierCollision, candidate)
		}
	}
	return candidate, nil
}
