package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/retail-banking-ledger/internal/accountnumber"
	"github.com/api-sage/retail-banking-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/retail-banking-ledger/internal/clock"
	"github.com/api-sage/retail-banking-ledger/internal/config"
	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/api-sage/retail-banking-ledger/internal/models"
	"github.com/api-sage/retail-banking-ledger/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func defaultConfig() config.Config {
	return config.Config{
		AccountNumberMin:           100000,
		AccountNumberMax:           999999,
		RecentWithdrawalWindowDays: 10,
		CheckingRate:               0.001,
		SavingsBaseRate:            0.001,
		SavingsTierThreshold:       1000,
		SavingsTierBase:            1,
		SavingsExcessRate:          0.002,
		MaxiSavingsRate:            0.05,
		MaxiSavingsDegradedRate:    0.001,
	}
}

type stack struct {
	clock           *clock.Fixed
	interestService *services.InterestService
	accountService  *services.AccountService
	customerService *services.CustomerService
	bankService     *services.BankService
}

func newStack(t *testing.T) stack {
	t.Helper()

	generator, err := accountnumber.NewPooled(100000, 999999)
	if err != nil {
		t.Fatalf("build generator: %v", err)
	}

	clk := clock.NewFixed(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
	store := memory.NewStore()
	ledgerRepo := memory.NewLedgerRepository(store, clk)
	accountRepo := memory.NewAccountRepository(store, generator, clk)
	customerRepo := memory.NewCustomerRepository(store, clk)

	interestService := services.NewInterestService(ledgerRepo, clk, services.PolicyFromConfig(defaultConfig()))

	return stack{
		clock:           clk,
		interestService: interestService,
		accountService:  services.NewAccountService(accountRepo, ledgerRepo, interestService),
		customerService: services.NewCustomerService(customerRepo, accountRepo, ledgerRepo, interestService),
		bankService:     services.NewBankService(customerRepo, accountRepo, interestService),
	}
}

func (s stack) createCustomer(t *testing.T, name string) string {
	t.Helper()

	resp, err := s.customerService.CreateCustomer(context.Background(), models.CreateCustomerRequest{Name: name})
	if err != nil {
		t.Fatalf("create customer %s: %v", name, err)
	}
	return resp.Data.ID
}

func (s stack) openAccount(t *testing.T, customerID string, accountType domain.AccountType) int {
	t.Helper()

	resp, err := s.accountService.OpenAccount(context.Background(), models.OpenAccountRequest{
		CustomerID:  customerID,
		AccountType: string(accountType),
	})
	if err != nil {
		t.Fatalf("open %s account: %v", accountType, err)
	}
	return resp.Data.AccountNumber
}

func (s stack) deposit(t *testing.T, accountNumber int, amount int64) {
	t.Helper()

	resp, err := s.accountService.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: accountNumber,
		Amount:        decimal.NewFromInt(amount),
	})
	if err != nil {
		t.Fatalf("deposit %d: %v", amount, err)
	}
	if !resp.Data.Recorded {
		t.Fatalf("deposit of %d unexpectedly rejected", amount)
	}
}

func (s stack) interest(t *testing.T, accountNumber int) decimal.Decimal {
	t.Helper()

	resp, err := s.accountService.InterestEarned(context.Background(), accountNumber)
	if err != nil {
		t.Fatalf("interest for %d: %v", accountNumber, err)
	}

	d, err := decimal.NewFromString(resp.Data.Interest)
	if err != nil {
		t.Fatalf("bad interest %q: %v", resp.Data.Interest, err)
	}
	return d
}

func TestCheckingInterest(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	number := s.openAccount(t, customerID, domain.AccountTypeChecking)
	s.deposit(t, number, 500)

	if got := s.interest(t, number); !got.Equal(decimal.NewFromFloat(0.5)) {
		t.Fatalf("expected interest 0.5, got %s", got)
	}
}

func TestSavingsInterestBelowThreshold(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	number := s.openAccount(t, customerID, domain.AccountTypeSavings)
	s.deposit(t, number, 500)

	if got := s.interest(t, number); !got.Equal(decimal.NewFromFloat(0.5)) {
		t.Fatalf("expected interest 0.5, got %s", got)
	}
}

func TestSavingsInterestAboveThreshold(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	number := s.openAccount(t, customerID, domain.AccountTypeSavings)
	s.deposit(t, number, 1500)

	// 1 + 0.002 * 500
	if got := s.interest(t, number); !got.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("expected interest 2, got %s", got)
	}
}

func TestMaxiSavingsInterestWithoutRecentWithdrawal(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	number := s.openAccount(t, customerID, domain.AccountTypeMaxiSavings)
	s.deposit(t, number, 1000)

	if got := s.interest(t, number); !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected interest 50, got %s", got)
	}
}

// The degraded rate applies to the balance as it stands after the
// withdrawal: 1100 deposited, 100 withdrawn, 0.001 * 1000 = 1.
func TestMaxiSavingsInterestAfterRecentWithdrawal(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	number := s.openAccount(t, customerID, domain.AccountTypeMaxiSavings)
	s.deposit(t, number, 1100)

	resp, err := s.accountService.Withdraw(context.Background(), models.WithdrawRequest{
		AccountNumber: number,
		Amount:        decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if !resp.Data.Recorded {
		t.Fatal("withdrawal unexpectedly rejected")
	}

	if got := s.interest(t, number); !got.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected degraded interest 1, got %s", got)
	}
}

// Interest is a function of the querying instant: once the withdrawal
// ages out of the window the full rate returns with no ledger change.
func TestMaxiSavingsInterestRecoversWhenWindowPasses(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	number := s.openAccount(t, customerID, domain.AccountTypeMaxiSavings)
	s.deposit(t, number, 1100)

	if _, err := s.accountService.Withdraw(context.Background(), models.WithdrawRequest{
		AccountNumber: number,
		Amount:        decimal.NewFromInt(100),
	}); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if got := s.interest(t, number); !got.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected degraded interest inside the window, got %s", got)
	}

	s.clock.Advance(11 * 24 * time.Hour)

	if got := s.interest(t, number); !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected full interest 50 once the window passed, got %s", got)
	}
}

// An outgoing transfer counts against the window the same way a
// withdrawal does.
func TestMaxiSavingsOutgoingTransferDegradesInterest(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	maxi := s.openAccount(t, customerID, domain.AccountTypeMaxiSavings)
	checking := s.openAccount(t, customerID, domain.AccountTypeChecking)
	s.deposit(t, maxi, 1100)

	if _, err := s.accountService.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: maxi,
		ToAccountNumber:   checking,
		Amount:            decimal.NewFromInt(100),
	}); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if got := s.interest(t, maxi); !got.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected degraded interest 1 after outgoing transfer, got %s", got)
	}
}

func TestInterestUnknownAccountType(t *testing.T) {
	s := newStack(t)

	_, err := s.interestService.InterestEarned(context.Background(), domain.Account{
		Number: 123456,
		Type:   domain.AccountType("PREMIUM"),
	})
	if !errors.Is(err, domain.ErrInvalidAccountType) {
		t.Fatalf("expected ErrInvalidAccountType, got %v", err)
	}
}
