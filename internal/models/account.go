package models

import (
	"errors"
	"strings"

	"github.com/api-sage/retail-banking-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	CustomerID  string `json:"customerId"`
	AccountType string `json:"accountType"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CustomerID) == "" {
		errs = append(errs, "customerId is required")
	} else if _, err := uuid.Parse(strings.TrimSpace(r.CustomerID)); err != nil {
		errs = append(errs, "customerId must be a valid UUID")
	}

	accountType := domain.AccountType(strings.ToUpper(strings.TrimSpace(r.AccountType)))
	if accountType == "" {
		errs = append(errs, "accountType is required")
	} else if !accountType.Valid() {
		errs = append(errs, "accountType must be one of CHECKING, SAVINGS, MAXI_SAVINGS")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type OpenAccountResponse struct {
	AccountNumber int    `json:"accountNumber"`
	CustomerID    string `json:"customerId"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"createdAt"`
}

type AccountResponse struct {
	AccountNumber int    `json:"accountNumber"`
	CustomerID    string `json:"customerId"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"createdAt"`
}

type DepositRequest struct {
	AccountNumber int             `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r DepositRequest) Validate() error {
	return validateMovement(r.AccountNumber, r.Amount)
}

type WithdrawRequest struct {
	AccountNumber int             `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	return validateMovement(r.AccountNumber, r.Amount)
}

type TransferRequest struct {
	FromAccountNumber int             `json:"fromAccountNumber"`
	ToAccountNumber   int             `json:"toAccountNumber"`
	Amount            decimal.Decimal `json:"amount"`
}

// Validate permits a transfer to the same account: both deltas apply and
// cancel out, and the movement is still recorded on the ledger.
func (r TransferRequest) Validate() error {
	var errs []string

	if r.FromAccountNumber <= 0 {
		errs = append(errs, "fromAccountNumber is required")
	}
	if r.ToAccountNumber <= 0 {
		errs = append(errs, "toAccountNumber is required")
	}
	if r.Amount.IsNegative() {
		errs = append(errs, "amount cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// validateMovement accepts a zero amount: the ledger has always recorded
// zero-amount entries and that boundary is pinned by tests.
func validateMovement(accountNumber int, amount decimal.Decimal) error {
	var errs []string

	if accountNumber <= 0 {
		errs = append(errs, "accountNumber is required")
	}
	if amount.IsNegative() {
		errs = append(errs, "amount cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// MovementResponse reports a deposit or withdrawal. Recorded is false
// when the ledger rejected the movement for insufficient funds; in that
// case Balance is the untouched balance.
type MovementResponse struct {
	AccountNumber int    `json:"accountNumber"`
	Amount        string `json:"amount"`
	Recorded      bool   `json:"recorded"`
	Balance       string `json:"balance"`
}

type TransferResponse struct {
	FromAccountNumber int    `json:"fromAccountNumber"`
	ToAccountNumber   int    `json:"toAccountNumber"`
	Amount            string `json:"amount"`
	Recorded          bool   `json:"recorded"`
	FromBalance       string `json:"fromBalance"`
	ToBalance         string `json:"toBalance"`
}

type InterestResponse struct {
	AccountNumber int    `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	Interest      string `json:"interest"`
}
