package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/api-sage/retail-banking-ledger/internal/models"
	"github.com/shopspring/decimal"
)

func TestOpenAccountValidationError(t *testing.T) {
	s := newStack(t)

	_, err := s.accountService.OpenAccount(context.Background(), models.OpenAccountRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty open account request")
	}

	_, err = s.accountService.OpenAccount(context.Background(), models.OpenAccountRequest{
		CustomerID:  "not-a-uuid",
		AccountType: "CHECKING",
	})
	if err == nil {
		t.Fatal("expected validation error for malformed customer id")
	}
}

func TestOpenAccountRejectsUnknownType(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")

	_, err := s.accountService.OpenAccount(context.Background(), models.OpenAccountRequest{
		CustomerID:  customerID,
		AccountType: "PREMIUM",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown account type")
	}
}

func TestDepositValidationRejectsNegativeAmount(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	number := s.openAccount(t, customerID, domain.AccountTypeChecking)

	_, err := s.accountService.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: number,
		Amount:        decimal.NewFromInt(-5),
	})
	if err == nil {
		t.Fatal("expected validation error for negative deposit")
	}
}

func TestWithdrawRejectionIsTypedNotAnError(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	number := s.openAccount(t, customerID, domain.AccountTypeChecking)
	s.deposit(t, number, 500)

	resp, err := s.accountService.Withdraw(context.Background(), models.WithdrawRequest{
		AccountNumber: number,
		Amount:        decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("expected no error for a business rejection, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected rejected response")
	}
	if resp.Data == nil || resp.Data.Recorded {
		t.Fatal("expected Recorded=false in rejection payload")
	}
	if resp.Data.Balance != "500" {
		t.Fatalf("expected untouched balance 500, got %s", resp.Data.Balance)
	}
}

func TestTransferBetweenCustomers(t *testing.T) {
	s := newStack(t)
	oscar := s.createCustomer(t, "Oscar")
	bill := s.createCustomer(t, "Bill")
	from := s.openAccount(t, oscar, domain.AccountTypeChecking)
	to := s.openAccount(t, bill, domain.AccountTypeSavings)
	s.deposit(t, from, 1000)

	resp, err := s.accountService.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: from,
		ToAccountNumber:   to,
		Amount:            decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if !resp.Data.Recorded {
		t.Fatal("expected transfer to be recorded")
	}
	if resp.Data.FromBalance != "750" {
		t.Fatalf("expected source balance 750, got %s", resp.Data.FromBalance)
	}
	if resp.Data.ToBalance != "250" {
		t.Fatalf("expected destination balance 250, got %s", resp.Data.ToBalance)
	}
}

func TestTransferToSelfKeepsBalance(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")
	number := s.openAccount(t, customerID, domain.AccountTypeChecking)
	s.deposit(t, number, 500)

	resp, err := s.accountService.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: number,
		ToAccountNumber:   number,
		Amount:            decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("self transfer: %v", err)
	}
	if !resp.Data.Recorded {
		t.Fatal("expected self transfer to be recorded")
	}
	if resp.Data.FromBalance != "500" || resp.Data.ToBalance != "500" {
		t.Fatalf("expected balance unchanged at 500, got from=%s to=%s", resp.Data.FromBalance, resp.Data.ToBalance)
	}
}

func TestDepositUnknownAccount(t *testing.T) {
	s := newStack(t)

	_, err := s.accountService.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: 999999,
		Amount:        decimal.NewFromInt(10),
	})
	if err == nil {
		t.Fatal("expected error for unknown account")
	}
}

func TestOpenedAccountNumbersAreDistinct(t *testing.T) {
	s := newStack(t)
	customerID := s.createCustomer(t, "Oscar")

	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		number := s.openAccount(t, customerID, domain.AccountTypeChecking)
		if seen[number] {
			t.Fatalf("account number %d issued twice", number)
		}
		seen[number] = true
	}
}
