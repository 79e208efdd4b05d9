package model

import "github.com/shopspring/decimal"

// Customer is an account holder as returned by the backend.
type Customer struct {
	ID            int64           `json:"id"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

// NewCustomer is the create payload. The backend assigns the id.
type NewCustomer struct {
	FirstName     string          `json:"firstName" validate:"required"`
	LastName      string          `json:"lastName" validate:"required"`
	AccountNumber string          `json:"accountNumber" validate:"required"`
	Balance       decimal.Decimal `json:"balance" validate:"gte=0"`
}
