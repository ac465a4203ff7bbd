package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking    AccountType = "CHECKING"
	AccountTypeSavings     AccountType = "SAVINGS"
	AccountTypeMaxiSavings AccountType = "MAXI_SAVINGS"
)

// Valid reports whether the tag is one of the three supported account types.
// The set is closed; an unknown tag is a configuration error, never a
// recoverable condition.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeMaxiSavings:
		return true
	}
	return false
}

// Label returns the human-readable account type used on statements.
func (t AccountType) Label() string {
	switch t {
	case AccountTypeChecking:
		return "Checking Account"
	case AccountTypeSavings:
		return "Savings Account"
	case AccountTypeMaxiSavings:
		return "Maxi Savings Account"
	}
	return string(t)
}

// Account is a customer account. Balance is a cached projection of the
// ledger for this account number: it always equals the sum of signed
// amounts of every committed transaction touching the account.
type Account struct {
	Number     int
	CustomerID uuid.UUID
	Type       AccountType
	Balance    decimal.Decimal
	CreatedAt  time.Time
}
