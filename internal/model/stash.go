package model

import "github.com/shopspring/decimal"

// StashItem represents a user-defined savings bucket tracked outside the
// category-budget system. It carries the same shape as Goal but originates
// from a different host subsystem, so it stays a distinct type.
type StashItem struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}
