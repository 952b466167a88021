package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type is the direction of a transaction as supplied by the caller.
// It is never stored; only its effect on the sign of Amount is.
type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

func (t Type) Valid() bool {
	return t == TypeCredit || t == TypeDebit
}

// Sign applies the direction to a non-negative magnitude.
func (t Type) Sign(amount int64) int64 {
	if t == TypeDebit {
		return -amount
	}

	return amount
}

// Transaction is a ledger entry owned by a single session.
type Transaction struct {
	ID        uuid.UUID
	SessionID string
	Title     string
	Amount    int64 // Signed: credit positive, debit negative
	CreatedAt time.Time
}

// Summary is the balance of a session.
type Summary struct {
	Amount int64
}
