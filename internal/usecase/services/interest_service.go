package services

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking-ledger/internal/clock"
	"github.com/api-sage/retail-banking-ledger/internal/config"
	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/api-sage/retail-banking-ledger/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// Verify that InterestService implements the service_interfaces.InterestService interface
var _ service_interfaces.InterestService = (*InterestService)(nil)

// InterestPolicy carries the tier rates as decimals so interest
// arithmetic stays exact.
type InterestPolicy struct {
	CheckingRate            decimal.Decimal
	SavingsBaseRate         decimal.Decimal
	SavingsTierThreshold    decimal.Decimal
	SavingsTierBase         decimal.Decimal
	SavingsExcessRate       decimal.Decimal
	MaxiSavingsRate         decimal.Decimal
	MaxiSavingsDegradedRate decimal.Decimal
	RecencyWindowDays       int
}

func PolicyFromConfig(cfg config.Config) InterestPolicy {
	return InterestPolicy{
		CheckingRate:            decimal.NewFromFloat(cfg.CheckingRate),
		SavingsBaseRate:         decimal.NewFromFloat(cfg.SavingsBaseRate),
		SavingsTierThreshold:    decimal.NewFromFloat(cfg.SavingsTierThreshold),
		SavingsTierBase:         decimal.NewFromFloat(cfg.SavingsTierBase),
		SavingsExcessRate:       decimal.NewFromFloat(cfg.SavingsExcessRate),
		MaxiSavingsRate:         decimal.NewFromFloat(cfg.MaxiSavingsRate),
		MaxiSavingsDegradedRate: decimal.NewFromFloat(cfg.MaxiSavingsDegradedRate),
		RecencyWindowDays:       cfg.RecentWithdrawalWindowDays,
	}
}

type InterestService struct {
	ledgerRepo repo_interfaces.LedgerRepository
	clock      clock.Clock
	policy     InterestPolicy
}

func NewInterestService(ledgerRepo repo_interfaces.LedgerRepository, clk clock.Clock, policy InterestPolicy) *InterestService {
	return &InterestService{ledgerRepo: ledgerRepo, clock: clk, policy: policy}
}

// InterestEarned returns the interest the account earns in a year at its
// current balance. Checking and Savings are pure functions of the
// balance. MaxiSavings also depends on the querying instant: the full
// rate drops to the degraded rate when any outgoing transaction falls
// inside the recency window measured against the clock's current time,
// so two calls on different days can differ for an unchanged ledger.
func (s *InterestService) InterestEarned(ctx context.Context, account domain.Account) (decimal.Decimal, error) {
	balance := account.Balance

	switch account.Type {
	case domain.AccountTypeChecking:
		return balance.Mul(s.policy.CheckingRate), nil

	case domain.AccountTypeSavings:
		if balance.LessThanOrEqual(s.policy.SavingsTierThreshold) {
			return balance.Mul(s.policy.SavingsBaseRate), nil
		}
		excess := balance.Sub(s.policy.SavingsTierThreshold)
		return s.policy.SavingsTierBase.Add(excess.Mul(s.policy.SavingsExcessRate)), nil

	case domain.AccountTypeMaxiSavings:
		recent, err := s.hasRecentOutgoing(ctx, account.Number)
		if err != nil {
			return decimal.Zero, err
		}
		if recent {
			return balance.Mul(s.policy.MaxiSavingsDegradedRate), nil
		}
		return balance.Mul(s.policy.MaxiSavingsRate), nil
	}

	return decimal.Zero, domain.ErrInvalidAccountType
}

// hasRecentOutgoing scans the account's history for any transaction with
// this account as source inside the recency window. Withdrawals and
// outgoing transfers both count.
func (s *InterestService) hasRecentOutgoing(ctx context.Context, accountNumber int) (bool, error) {
	transactions, err := s.ledgerRepo.TransactionsFor(ctx, accountNumber)
	if err != nil {
		return false, err
	}

	for _, tx := range transactions {
		if tx.From == nil || *tx.From != accountNumber {
			continue
		}
		if s.clock.DaysSince(tx.CreatedAt) <= s.policy.RecencyWindowDays {
			return true, nil
		}
	}

	return false, nil
}
