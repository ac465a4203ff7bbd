package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// InterestService computes the annualized interest an account earns.
// It returns a raw decimal so aggregating services can sum without
// round-tripping through formatted responses.
type InterestService interface {
	InterestEarned(ctx context.Context, account domain.Account) (decimal.Decimal, error)
}
