package repo_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository is the single authority for recording money movement.
// Record returns the committed transaction and true, or the zero
// transaction and false when the movement was rejected for insufficient
// funds. Rejection is not an error; errors are reserved for precondition
// violations and unknown accounts.
type LedgerRepository interface {
	Record(ctx context.Context, amount decimal.Decimal, from *int, to *int) (domain.Transaction, bool, error)
	TransactionsFor(ctx context.Context, accountNumber int) ([]domain.Transaction, error)
}
