package memory

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking-ledger/internal/clock"
	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ repo_interfaces.LedgerRepository = (*LedgerRepository)(nil)

type LedgerRepository struct {
	store *Store
	clock clock.Clock
}

func NewLedgerRepository(store *Store, clk clock.Clock) *LedgerRepository {
	return &LedgerRepository{store: store, clock: clk}
}

// Record validates and commits one ledger entry. The funds check, the
// append and both balance-projection updates happen under one mutex
// hold, so no reader observes a transaction without its balance effects.
//
// A negative amount is a precondition violation and returns an error;
// zero is accepted. Insufficient funds is a business rejection, reported
// as recorded == false with a nil error and no state change. The check
// is strict: a movement that would leave the source at exactly zero is
// rejected, and it runs against the pre-transaction balance, so a
// self-transfer is checked before either delta applies.
func (r *LedgerRepository) Record(ctx context.Context, amount decimal.Decimal, from *int, to *int) (domain.Transaction, bool, error) {
	if amount.IsNegative() {
		return domain.Transaction{}, false, domain.ErrNegativeAmount
	}
	if from == nil && to == nil {
		return domain.Transaction{}, false, domain.ErrNoParticipants
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var source, destination *domain.Account
	if from != nil {
		source = s.accounts[*from]
		if source == nil {
			return domain.Transaction{}, false, domain.ErrRecordNotFound
		}
	}
	if to != nil {
		destination = s.accounts[*to]
		if destination == nil {
			return domain.Transaction{}, false, domain.ErrRecordNotFound
		}
	}

	if source != nil && source.Balance.Sub(amount).LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, false, nil
	}

	tx := domain.Transaction{
		ID:        uuid.New(),
		Amount:    amount,
		CreatedAt: r.clock.Now(),
	}
	if from != nil {
		n := *from
		tx.From = &n
	}
	if to != nil {
		n := *to
		tx.To = &n
	}

	idx := len(s.transactions)
	s.transactions = append(s.transactions, tx)
	if from != nil {
		s.txByAccount[*from] = append(s.txByAccount[*from], idx)
	}
	if to != nil && (from == nil || *to != *from) {
		s.txByAccount[*to] = append(s.txByAccount[*to], idx)
	}

	if source != nil {
		source.Balance = source.Balance.Sub(amount)
	}
	if destination != nil {
		destination.Balance = destination.Balance.Add(amount)
	}

	return copyTransaction(tx), true, nil
}

// TransactionsFor returns every committed transaction touching the
// account, in insertion order. A self-transfer appears once.
func (r *LedgerRepository) TransactionsFor(ctx context.Context, accountNumber int) ([]domain.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accounts[accountNumber] == nil {
		return nil, domain.ErrRecordNotFound
	}

	indexes := s.txByAccount[accountNumber]
	out := make([]domain.Transaction, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, copyTransaction(s.transactions[idx]))
	}

	return out, nil
}
