package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/commons"
	"github.com/api-sage/retail-banking-ledger/internal/models"
)

type BankService interface {
	CustomerSummary(ctx context.Context) (commons.Response[models.CustomerSummaryResponse], error)
	TotalInterestPaid(ctx context.Context) (commons.Response[models.InterestTotalResponse], error)
	GetAccountByNumber(ctx context.Context, accountNumber int) (commons.Response[models.AccountResponse], error)
}
