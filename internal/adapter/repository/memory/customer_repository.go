package memory

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking-ledger/internal/clock"
	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/google/uuid"
)

var _ repo_interfaces.CustomerRepository = (*CustomerRepository)(nil)

type CustomerRepository struct {
	store *Store
	clock clock.Clock
}

func NewCustomerRepository(store *Store, clk clock.Clock) *CustomerRepository {
	return &CustomerRepository{store: store, clock: clk}
}

func (r *CustomerRepository) Create(ctx context.Context, name string) (domain.Customer, error) {
	customer := &domain.Customer{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: r.clock.Now(),
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append(s.customers, customer)
	s.customersByID[customer.ID] = customer

	return copyCustomer(customer), nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.customersByID[id]
	if customer == nil {
		return domain.Customer{}, domain.ErrRecordNotFound
	}

	return copyCustomer(customer), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		out = append(out, copyCustomer(customer))
	}

	return out, nil
}
