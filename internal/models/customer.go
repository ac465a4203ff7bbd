package models

import (
	"errors"
	"strings"
)

type CreateCustomerRequest struct {
	Name string `json:"name"`
}

func (r CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Accounts  int    `json:"accounts"`
	CreatedAt string `json:"createdAt"`
}

type StatementResponse struct {
	CustomerID string `json:"customerId"`
	Statement  string `json:"statement"`
}

type InterestTotalResponse struct {
	Total string `json:"total"`
}

type CustomerSummaryResponse struct {
	Summary string `json:"summary"`
}
