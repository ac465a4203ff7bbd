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
	"github.com/api-sage/retail-banking-ledger/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// Verify that BankService implements the service_interfaces.BankService interface
var _ service_interfaces.BankService = (*BankService)(nil)

type BankService struct {
	customerRepo    repo_interfaces.CustomerRepository
	accountRepo     repo_interfaces.AccountRepository
	interestService service_interfaces.InterestService
}

func NewBankService(
	customerRepo repo_interfaces.CustomerRepository,
	accountRepo repo_interfaces.AccountRepository,
	interestService service_interfaces.InterestService,
) *BankService {
	return &BankService{
		customerRepo:    customerRepo,
		accountRepo:     accountRepo,
		interestService: interestService,
	}
}

// CustomerSummary lists customers in registration order with their
// account counts.
func (s *BankService) CustomerSummary(ctx context.Context) (commons.Response[models.CustomerSummaryResponse], error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		logger.Error("bank service customer summary failed", err, nil)
		return commons.ErrorResponse[models.CustomerSummaryResponse]("failed to build summary", "Unable to build summary right now"), err
	}

	if len(customers) == 0 {
		return commons.SuccessResponse("summary built successfully", models.CustomerSummaryResponse{
			Summary: "You have no customers",
		}), nil
	}

	var b strings.Builder
	b.WriteString("Customer Summary")
	for _, customer := range customers {
		b.WriteString("\n - " + customer.Name + " (" + pluralize(len(customer.AccountNumbers), "account") + ")")
	}

	return commons.SuccessResponse("summary built successfully", models.CustomerSummaryResponse{
		Summary: b.String(),
	}), nil
}

func (s *BankService) TotalInterestPaid(ctx context.Context) (commons.Response[models.InterestTotalResponse], error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		logger.Error("bank service total interest paid list failed", err, nil)
		return commons.ErrorResponse[models.InterestTotalResponse]("failed to compute interest", "Unable to compute interest right now"), err
	}

	total := decimal.Zero
	for _, customer := range customers {
		accounts, err := s.accountRepo.ListByCustomer(ctx, customer.ID)
		if err != nil {
			logger.Error("bank service total interest paid accounts failed", err, logger.Fields{
				"customerId": customer.ID.String(),
			})
			return commons.ErrorResponse[models.InterestTotalResponse]("failed to compute interest", "Unable to compute interest right now"), err
		}
		for _, account := range accounts {
			interest, err := s.interestService.InterestEarned(ctx, account)
			if err != nil {
				logger.Error("bank service total interest paid computation failed", err, logger.Fields{
					"accountNumber": account.Number,
				})
				return commons.ErrorResponse[models.InterestTotalResponse]("failed to compute interest", err.Error()), err
			}
			total = total.Add(interest)
		}
	}

	return commons.SuccessResponse("interest computed successfully", models.InterestTotalResponse{Total: total.String()}), nil
}

// GetAccountByNumber resolves an account regardless of which customer
// owns it.
func (s *BankService) GetAccountByNumber(ctx context.Context, accountNumber int) (commons.Response[models.AccountResponse], error) {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to find account", "Unable to find account right now"), err
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

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
