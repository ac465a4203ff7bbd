package memory

import (
	"context"
	"fmt"

	"github.com/api-sage/retail-banking-ledger/internal/accountnumber"
	"github.com/api-sage/retail-banking-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking-ledger/internal/clock"
	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ repo_interfaces.AccountRepository = (*AccountRepository)(nil)

type AccountRepository struct {
	store     *Store
	generator accountnumber.Generator
	clock     clock.Clock
}

func NewAccountRepository(store *Store, generator accountnumber.Generator, clk clock.Clock) *AccountRepository {
	return &AccountRepository{store: store, generator: generator, clock: clk}
}

// Create opens an account with balance zero under the customer, drawing
// a fresh number from the generator. Accounts are never deleted.
func (r *AccountRepository) Create(ctx context.Context, customerID uuid.UUID, accountType domain.AccountType) (domain.Account, error) {
	if !accountType.Valid() {
		return domain.Account{}, domain.ErrInvalidAccountType
	}

	number, err := r.generator.Next()
	if err != nil {
		return domain.Account{}, fmt.Errorf("generate account number: %w", err)
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.customersByID[customerID]
	if customer == nil {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	if s.accounts[number] != nil {
		return domain.Account{}, fmt.Errorf("account number %d already issued", number)
	}

	account := &domain.Account{
		Number:     number,
		CustomerID: customerID,
		Type:       accountType,
		Balance:    decimal.Zero,
		CreatedAt:  r.clock.Now(),
	}
	s.accounts[number] = account
	customer.AccountNumbers = append(customer.AccountNumbers, number)

	return copyAccount(account), nil
}

func (r *AccountRepository) GetByNumber(ctx context.Context, accountNumber int) (domain.Account, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.accounts[accountNumber]
	if account == nil {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	return copyAccount(account), nil
}

// ListByCustomer returns the customer's accounts in the order they were
// opened, which is the order statements present them.
func (r *AccountRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Account, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.customersByID[customerID]
	if customer == nil {
		return nil, domain.ErrRecordNotFound
	}

	out := make([]domain.Account, 0, len(customer.AccountNumbers))
	for _, number := range customer.AccountNumbers {
		out = append(out, copyAccount(s.accounts[number]))
	}

	return out, nil
}
