package service

import "github.com/kiptoo/carebill/internal/domain/entity"

// undoStack is the LIFO history of bill creations, owned by the billing
// service so its lifecycle matches the ledger's. Entries are full bill
// snapshots taken at append time; the stack knows nothing about later
// payment-state transitions.
type undoStack struct {
	entries []entity.Bill
}

func (u *undoStack) push(bill entity.Bill) {
	u.entries = append(u.entries, bill)
}

func (u *undoStack) pop() (entity.Bill, bool) {
	if len(u.entries) == 0 {
		return entity.Bill{}, false
	}
	top := u.entries[len(u.entries)-1]
	u.entries = u.entries[:len(u.entries)-1]
	return top, true
}

func (u *undoStack) len() int {
	return len(u.entries)
}
