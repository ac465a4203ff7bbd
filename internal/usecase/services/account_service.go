package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/retail-banking-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking-ledger/internal/commons"
	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/api-sage/retail-banking-ledger/internal/logger"
	"github.com/api-sage/retail-banking-ledger/internal/models"
	"github.com/api-sage/retail-banking-ledger/internal/usecase/service_interfaces"
	"github.com/google/uuid"
)

// Verify that AccountService implements the service_interfaces.AccountService interface
var _ service_interfaces.AccountService = (*AccountService)(nil)

type AccountService struct {
	accountRepo     repo_interfaces.AccountRepository
	ledgerRepo      repo_interfaces.LedgerRepository
	interestService service_interfaces.InterestService
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	ledgerRepo repo_interfaces.LedgerRepository,
	interestService service_interfaces.InterestService,
) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		ledgerRepo:      ledgerRepo,
		interestService: interestService,
	}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"customerId":  req.CustomerID,
		"accountType": req.AccountType,
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error()), err
	}

	customerID, _ := uuid.Parse(strings.TrimSpace(req.CustomerID))
	accountType := domain.AccountType(strings.ToUpper(strings.TrimSpace(req.AccountType)))

	account, err := s.accountRepo.Create(ctx, customerID, accountType)
	if err != nil {
		logger.Error("account service open account repository failed", err, logger.Fields{
			"customerId": customerID.String(),
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.OpenAccountResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	response := models.OpenAccountResponse{
		AccountNumber: account.Number,
		CustomerID:    account.CustomerID.String(),
		AccountType:   string(account.Type),
		Balance:       account.Balance.String(),
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"accountType":   response.AccountType,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.MovementResponse], error) {
	logger.Info("account service deposit request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.MovementResponse]("validation failed", err.Error()), err
	}

	_, recorded, err := s.ledgerRepo.Record(ctx, req.Amount, nil, &req.AccountNumber)
	if err != nil {
		logger.Error("account service deposit ledger failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.MovementResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.MovementResponse]("failed to deposit", "Unable to deposit right now"), err
	}

	return s.movementResponse(ctx, req.AccountNumber, req.Amount.String(), recorded, "deposit")
}

func (s *AccountService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.MovementResponse], error) {
	logger.Info("account service withdraw request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.MovementResponse]("validation failed", err.Error()), err
	}

	_, recorded, err := s.ledgerRepo.Record(ctx, req.Amount, &req.AccountNumber, nil)
	if err != nil {
		logger.Error("account service withdraw ledger failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.MovementResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.MovementResponse]("failed to withdraw", "Unable to withdraw right now"), err
	}

	return s.movementResponse(ctx, req.AccountNumber, req.Amount.String(), recorded, "withdrawal")
}

func (s *AccountService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("account service transfer request", logger.Fields{
		"fromAccountNumber": req.FromAccountNumber,
		"toAccountNumber":   req.ToAccountNumber,
		"amount":            req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	_, recorded, err := s.ledgerRepo.Record(ctx, req.Amount, &req.FromAccountNumber, &req.ToAccountNumber)
	if err != nil {
		logger.Error("account service transfer ledger failed", err, logger.Fields{
			"fromAccountNumber": req.FromAccountNumber,
			"toAccountNumber":   req.ToAccountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer", "Unable to transfer right now"), err
	}

	fromAccount, err := s.accountRepo.GetByNumber(ctx, req.FromAccountNumber)
	if err != nil {
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer", "Unable to transfer right now"), err
	}
	toAccount, err := s.accountRepo.GetByNumber(ctx, req.ToAccountNumber)
	if err != nil {
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer", "Unable to transfer right now"), err
	}

	response := models.TransferResponse{
		FromAccountNumber: req.FromAccountNumber,
		ToAccountNumber:   req.ToAccountNumber,
		Amount:            req.Amount.String(),
		Recorded:          recorded,
		FromBalance:       fromAccount.Balance.String(),
		ToBalance:         toAccount.Balance.String(),
	}

	if !recorded {
		logger.Info("account service transfer rejected for insufficient funds", logger.Fields{
			"fromAccountNumber": req.FromAccountNumber,
		})
		return commons.RejectedResponse("transfer rejected for insufficient funds", response), nil
	}

	logger.Info("account service transfer success", logger.Fields{
		"fromAccountNumber": req.FromAccountNumber,
		"toAccountNumber":   req.ToAccountNumber,
	})

	return commons.SuccessResponse("transfer recorded successfully", response), nil
}

func (s *AccountService) InterestEarned(ctx context.Context, accountNumber int) (commons.Response[models.InterestResponse], error) {
	logger.Info("account service interest earned request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("account service interest earned lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.InterestResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.InterestResponse]("failed to compute interest", "Unable to compute interest right now"), err
	}

	interest, err := s.interestService.InterestEarned(ctx, account)
	if err != nil {
		logger.Error("account service interest earned computation failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"accountType":   string(account.Type),
		})
		return commons.ErrorResponse[models.InterestResponse]("failed to compute interest", err.Error()), err
	}

	response := models.InterestResponse{
		AccountNumber: account.Number,
		AccountType:   string(account.Type),
		Interest:      interest.String(),
	}

	return commons.SuccessResponse("interest computed successfully", response), nil
}

func (s *AccountService) movementResponse(ctx context.Context, accountNumber int, amount string, recorded bool, kind string) (commons.Response[models.MovementResponse], error) {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return commons.ErrorResponse[models.MovementResponse]("failed to "+kind, "Unable to read account balance"), err
	}

	response := models.MovementResponse{
		AccountNumber: accountNumber,
		Amount:        amount,
		Recorded:      recorded,
		Balance:       account.Balance.String(),
	}

	if !recorded {
		logger.Info("account service "+kind+" rejected for insufficient funds", logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.RejectedResponse(kind+" rejected for insufficient funds", response), nil
	}

	logger.Info("account service "+kind+" success", logger.Fields{
		"accountNumber": accountNumber,
	})

	return commons.SuccessResponse(kind+" recorded successfully", response), nil
}
