package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/commons"
	"github.com/api-sage/retail-banking-ledger/internal/models"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.MovementResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.MovementResponse], error)
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	InterestEarned(ctx context.Context, accountNumber int) (commons.Response[models.InterestResponse], error)
}
