package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/retail-banking-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking-ledger/internal/commons"
	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/api-sage/retail-banking-ledger/internal/logger"
	"github.com/api-sage/retail-banking-ledger/internal/models"
	"github.com/api-sage/retail-banking-ledger/internal/money"
	"github.com/api-sage/retail-banking-ledger/internal/usecase/service_interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Verify that CustomerService implements the service_interfaces.CustomerService interface
var _ service_interfaces.CustomerService = (*CustomerService)(nil)

type CustomerService struct {
	customerRepo    repo_interfaces.CustomerRepository
	accountRepo     repo_interfaces.AccountRepository
	ledgerRepo      repo_interfaces.LedgerRepository
	interestService service_interfaces.InterestService
}

func NewCustomerService(
	customerRepo repo_interfaces.CustomerRepository,
	accountRepo repo_interfaces.AccountRepository,
	ledgerRepo repo_interfaces.LedgerRepository,
	interestService service_interfaces.InterestService,
) *CustomerService {
	return &CustomerService{
		customerRepo:    customerRepo,
		accountRepo:     accountRepo,
		ledgerRepo:      ledgerRepo,
		interestService: interestService,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (commons.Response[models.CustomerResponse], error) {
	logger.Info("customer service create customer request", logger.Fields{
		"name": req.Name,
	})

	if err := req.Validate(); err != nil {
		logger.Error("customer service create customer validation failed", err, nil)
		return commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()), err
	}

	customer, err := s.customerRepo.Create(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		logger.Error("customer service create customer repository failed", err, nil)
		return commons.ErrorResponse[models.CustomerResponse]("failed to create customer", "Unable to create customer right now"), err
	}

	response := models.CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Accounts:  len(customer.AccountNumbers),
		CreatedAt: customer.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("customer service create customer success", logger.Fields{
		"customerId": response.ID,
	})

	return commons.SuccessResponse("customer created successfully", response), nil
}

// FindAccount looks up an account owned by the customer. An account that
// exists but belongs to someone else is reported as not found.
func (s *CustomerService) FindAccount(ctx context.Context, customerID string, accountNumber int) (commons.Response[models.AccountResponse], error) {
	id, err := uuid.Parse(strings.TrimSpace(customerID))
	if err != nil {
		err = fmt.Errorf("customerId must be a valid UUID")
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to find account", "Unable to find account right now"), err
	}

	if account.CustomerID != id {
		err := domain.ErrRecordNotFound
		return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
	}

	response := models.AccountResponse{
		AccountNumber: account.Number,
		CustomerID:    account.CustomerID.String(),
		AccountType:   string(account.Type),
		Balance:       account.Balance.String(),
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
	}

	return commons.SuccessResponse("account found", response), nil
}

func (s *CustomerService) TotalInterestEarned(ctx context.Context, customerID string) (commons.Response[models.InterestTotalResponse], error) {
	id, err := uuid.Parse(strings.TrimSpace(customerID))
	if err != nil {
		err = fmt.Errorf("customerId must be a valid UUID")
		return commons.ErrorResponse[models.InterestTotalResponse]("validation failed", err.Error()), err
	}

	accounts, err := s.accountRepo.ListByCustomer(ctx, id)
	if err != nil {
		logger.Error("customer service total interest lookup failed", err, logger.Fields{
			"customerId": customerID,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.InterestTotalResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[models.InterestTotalResponse]("failed to compute interest", "Unable to compute interest right now"), err
	}

	total := decimal.Zero
	for _, account := range accounts {
		interest, err := s.interestService.InterestEarned(ctx, account)
		if err != nil {
			logger.Error("customer service total interest computation failed", err, logger.Fields{
				"accountNumber": account.Number,
			})
			return commons.ErrorResponse[models.InterestTotalResponse]("failed to compute interest", err.Error()), err
		}
		total = total.Add(interest)
	}

	return commons.SuccessResponse("interest computed successfully", models.InterestTotalResponse{Total: total.String()}), nil
}

// Statement renders the customer's full statement: a header, one block
// per account in opening order, and the grand total across accounts.
func (s *CustomerService) Statement(ctx context.Context, customerID string) (commons.Response[models.StatementResponse], error) {
	logger.Info("customer service statement request", logger.Fields{
		"customerId": customerID,
	})

	id, err := uuid.Parse(strings.TrimSpace(customerID))
	if err != nil {
		err = fmt.Errorf("customerId must be a valid UUID")
		return commons.ErrorResponse[models.StatementResponse]("validation failed", err.Error()), err
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.StatementResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[models.StatementResponse]("failed to build statement", "Unable to build statement right now"), err
	}

	accounts, err := s.accountRepo.ListByCustomer(ctx, id)
	if err != nil {
		return commons.ErrorResponse[models.StatementResponse]("failed to build statement", "Unable to build statement right now"), err
	}

	var b strings.Builder
	b.WriteString("Statement for " + customer.Name + "\n")

	total := decimal.Zero
	for _, account := range accounts {
		block, err := s.accountStatement(ctx, account)
		if err != nil {
			logger.Error("customer service statement block failed", err, logger.Fields{
				"accountNumber": account.Number,
			})
			return commons.ErrorResponse[models.StatementResponse]("failed to build statement", "Unable to build statement right now"), err
		}
		b.WriteString("\n" + block + "\n")
		total = total.Add(account.Balance)
	}

	b.WriteString("\nTotal In All Accounts " + money.Format(total))

	response := models.StatementResponse{
		CustomerID: customer.ID.String(),
		Statement:  b.String(),
	}

	return commons.SuccessResponse("statement built successfully", response), nil
}

func (s *CustomerService) accountStatement(ctx context.Context, account domain.Account) (string, error) {
	transactions, err := s.ledgerRepo.TransactionsFor(ctx, account.Number)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(account.Type.Label() + "\n")

	for _, tx := range transactions {
		line, err := s.statementLine(ctx, tx, account.Number)
		if err != nil {
			return "", err
		}
		if line != "" {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("Total " + money.Format(account.Balance))
	return b.String(), nil
}

// statementLine classifies the transaction from the viewpoint account's
// perspective: deposit (no source), withdrawal (no destination),
// received (a different source), sent (a different destination). A
// self-transfer matches none of the four and renders no line.
func (s *CustomerService) statementLine(ctx context.Context, tx domain.Transaction, viewpoint int) (string, error) {
	amount := money.Format(tx.Amount)

	switch {
	case tx.To != nil && *tx.To == viewpoint && tx.From == nil:
		return "deposit: " + amount, nil

	case tx.From != nil && *tx.From == viewpoint && tx.To == nil:
		return "withdrawal: " + amount, nil

	case tx.To != nil && *tx.To == viewpoint && tx.From != nil && *tx.From != viewpoint:
		name, err := s.holderName(ctx, *tx.From)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("received %s from %s (%d)", amount, name, *tx.From), nil

	case tx.From != nil && *tx.From == viewpoint && tx.To != nil && *tx.To != viewpoint:
		name, err := s.holderName(ctx, *tx.To)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("sent %s to %s (%d)", amount, name, *tx.To), nil
	}

	return "", nil
}

func (s *CustomerService) holderName(ctx context.Context, accountNumber int) (string, error) {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return "", err
	}

	customer, err := s.customerRepo.GetByID(ctx, account.CustomerID)
	if err != nil {
		return "", err
	}

	return customer.Name, nil
}
