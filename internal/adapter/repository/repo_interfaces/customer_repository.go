package repo_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, name string) (domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error)
	// List returns customers in registration order.
	List(ctx context.Context) ([]domain.Customer, error)
}
