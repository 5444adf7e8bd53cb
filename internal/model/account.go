package model

import "github.com/shopspring/decimal"

// Account represents one financial account in the host's snapshot export.
//
// Balance sign convention: positive means money on hand for cash accounts
// and money owed for credit/debt accounts, though some upstream sources
// report the owed amount inverted.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"` // may contain HTML-entity encoded characters
	Balance decimal.Decimal `json:"balance"`
	Type    string          `json:"accountType"` // free-text upstream classification
	Enabled bool            `json:"isEnabled"`
}
