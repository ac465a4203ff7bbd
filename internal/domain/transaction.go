package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one immutable ledger entry. A nil From is a deposit,
// a nil To is a withdrawal, both set is a transfer between accounts.
// Participants are referenced by account number, not by pointer, so a
// transaction never owns the accounts it touches.
type Transaction struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	From      *int
	To        *int
	CreatedAt time.Time
}

// IsDeposit reports whether the entry credits an account from outside
// the bank.
func (t Transaction) IsDeposit() bool {
	return t.From == nil && t.To != nil
}

// IsWithdrawal reports whether the entry debits an account to outside
// the bank.
func (t Transaction) IsWithdrawal() bool {
	return t.From != nil && t.To == nil
}
