package model

import "github.com/shopspring/decimal"

// Goal represents a named savings goal with its current balance.
type Goal struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}
