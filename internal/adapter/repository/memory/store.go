// Package memory is the in-process storage backend. A single Store owns
// every customer, account and ledger entry; the repositories in this
// package are views over it sharing one mutex, so the append-to-ledger
// plus balance-projection update is observably atomic to every reader.
package memory

import (
	"sync"

	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/google/uuid"
)

type Store struct {
	mu            sync.Mutex
	accounts      map[int]*domain.Account
	customers     []*domain.Customer
	customersByID map[uuid.UUID]*domain.Customer
	transactions  []domain.Transaction
	txByAccount   map[int][]int
}

func NewStore() *Store {
	return &Store{
		accounts:      make(map[int]*domain.Account),
		customersByID: make(map[uuid.UUID]*domain.Customer),
		txByAccount:   make(map[int][]int),
	}
}

// Reads hand out copies so callers can never reach the projections the
// ledger mutates.

func copyAccount(a *domain.Account) domain.Account {
	return *a
}

func copyCustomer(c *domain.Customer) domain.Customer {
	out := *c
	out.AccountNumbers = append([]int(nil), c.AccountNumbers...)
	return out
}

func copyTransaction(t domain.Transaction) domain.Transaction {
	out := t
	if t.From != nil {
		from := *t.From
		out.From = &from
	}
	if t.To != nil {
		to := *t.To
		out.To = &to
	}
	return out
}
