package model

import "github.com/shopspring/decimal"

// CategoryBudget represents one budget category for the current period.
type CategoryBudget struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Budgeted decimal.Decimal `json:"budgeted"` // committed this period
	Spent    decimal.Decimal `json:"spent"`    // consumed this period, non-negative
	// Remaining is rollover + budgeted - spent, computed upstream.
	// It already includes carry-forward and is never recomputed here.
	Remaining decimal.Decimal `json:"remaining"`
	Expense   bool            `json:"isExpense"`
}
