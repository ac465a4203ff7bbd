package main

import (
	"context"
	"fmt"
	"log"

	"github.com/api-sage/retail-banking-ledger/internal/accountnumber"
	"github.com/api-sage/retail-banking-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/retail-banking-ledger/internal/clock"
	"github.com/api-sage/retail-banking-ledger/internal/config"
	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/api-sage/retail-banking-ledger/internal/models"
	"github.com/api-sage/retail-banking-ledger/internal/usecase/services"
	"github.com/shopspring/decimal"
)

// bankdemo wires the ledger together and walks through a small scenario:
// two customers, a few movements, then the statement and summary text.
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	generator, err := accountnumber.NewPooled(cfg.AccountNumberMin, cfg.AccountNumberMax)
	if err != nil {
		log.Fatalf("build account number generator: %v", err)
	}

	clk := clock.NewSystem()
	store := memory.NewStore()
	ledgerRepo := memory.NewLedgerRepository(store, clk)
	accountRepo := memory.NewAccountRepository(store, generator, clk)
	customerRepo := memory.NewCustomerRepository(store, clk)

	interestService := services.NewInterestService(ledgerRepo, clk, services.PolicyFromConfig(cfg))
	accountService := services.NewAccountService(accountRepo, ledgerRepo, interestService)
	customerService := services.NewCustomerService(customerRepo, accountRepo, ledgerRepo, interestService)
	bankService := services.NewBankService(customerRepo, accountRepo, interestService)

	ctx := context.Background()

	oscar, err := customerService.CreateCustomer(ctx, models.CreateCustomerRequest{Name: "Oscar"})
	if err != nil {
		log.Fatalf("create customer: %v", err)
	}
	bill, err := customerService.CreateCustomer(ctx, models.CreateCustomerRequest{Name: "Bill"})
	if err != nil {
		log.Fatalf("create customer: %v", err)
	}

	checking, err := accountService.OpenAccount(ctx, models.OpenAccountRequest{
		CustomerID:  oscar.Data.ID,
		AccountType: string(domain.AccountTypeChecking),
	})
	if err != nil {
		log.Fatalf("open account: %v", err)
	}
	savings, err := accountService.OpenAccount(ctx, models.OpenAccountRequest{
		CustomerID:  bill.Data.ID,
		AccountType: string(domain.AccountTypeSavings),
	})
	if err != nil {
		log.Fatalf("open account: %v", err)
	}

	if _, err := accountService.Deposit(ctx, models.DepositRequest{
		AccountNumber: checking.Data.AccountNumber,
		Amount:        decimal.NewFromInt(1000),
	}); err != nil {
		log.Fatalf("deposit: %v", err)
	}

	transfer, err := accountService.Transfer(ctx, models.TransferRequest{
		FromAccountNumber: checking.Data.AccountNumber,
		ToAccountNumber:   savings.Data.AccountNumber,
		Amount:            decimal.NewFromInt(250),
	})
	if err != nil {
		log.Fatalf("transfer: %v", err)
	}
	if !transfer.Data.Recorded {
		log.Fatal("transfer unexpectedly rejected")
	}

	statement, err := customerService.Statement(ctx, oscar.Data.ID)
	if err != nil {
		log.Fatalf("statement: %v", err)
	}
	fmt.Println(statement.Data.Statement)
	fmt.Println()

	summary, err := bankService.CustomerSummary(ctx)
	if err != nil {
		log.Fatalf("summary: %v", err)
	}
	fmt.Println(summary.Data.Summary)
}
