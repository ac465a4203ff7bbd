package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-ledger/internal/commons"
	"github.com/api-sage/retail-banking-ledger/internal/models"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (commons.Response[models.CustomerResponse], error)
	FindAccount(ctx context.Context, customerID string, accountNumber int) (commons.Response[models.AccountResponse], error)
	TotalInterestEarned(ctx context.Context, customerID string) (commons.Response[models.InterestTotalResponse], error)
	Statement(ctx context.Context, customerID string) (commons.Response[models.StatementResponse], error)
}
