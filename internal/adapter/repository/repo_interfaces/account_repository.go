package repo_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, customerID uuid.UUID, accountType domain.AccountType) (domain.Account, error)
	GetByNumber(ctx context.Context, accountNumber int) (domain.Account, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Account, error)
}
