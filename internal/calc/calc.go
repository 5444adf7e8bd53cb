// Package calc turns a budget snapshot into the available-to-allocate figure
// and the itemized breakdown that justifies it.
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/spendable-dev/spendable/internal/model"
)

// Options control a single calculation pass.
type Options struct {
	// IncludeExpectedIncome counts income still expected this period
	// (planned minus actual, floored at zero) as available.
	IncludeExpectedIncome bool

	// SelectedCashAccountIDs restricts the cash bucket. nil means every
	// enabled cash account; an empty non-nil slice means none. IDs not
	// present in the snapshot contribute nothing.
	SelectedCashAccountIDs []string

	// Buffer is a reserve subtracted unconditionally from the result.
	Buffer decimal.Decimal
}

// LineItem is one row of an itemized list, in whole currency units.
type LineItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// Breakdown holds the whole-unit totals that enter the available formula.
type Breakdown struct {
	Cash           int64 `json:"cash"`
	ExpectedIncome int64 `json:"expectedIncome"`
	CreditCards    int64 `json:"creditCards"`
	UnspentBudget  int64 `json:"unspentBudget"`
	Goals          int64 `json:"goals"`
	Stash          int64 `json:"stash"`
	Buffer         int64 `json:"buffer"`
}

// DetailedBreakdown itemizes each bucket so a report can re-derive every
// total: each list sums exactly to its Breakdown counterpart. LeftToBudget
// explains the snapshot's headroom figure and takes no part in the
// available formula.
type DetailedBreakdown struct {
	CashAccounts  []LineItem `json:"cashAccounts"`
	CreditCards   []LineItem `json:"creditCards"`
	UnspentBudget []LineItem `json:"unspentBudget"`
	Goals         []LineItem `json:"goals"`
	Stash         []LineItem `json:"stash"`
	LeftToBudget  []LineItem `json:"leftToBudget"`
}

// Result is the outcome of one calculation.
type Result struct {
	Available              int64             `json:"available"`
	Breakdown              Breakdown         `json:"breakdown"`
	Detailed               DetailedBreakdown `json:"detailed"`
	IncludesExpectedIncome bool              `json:"includesExpectedIncome"`
}

// Calculate computes how much of a snapshot is free to allocate right now.
// It is pure: no I/O, no retained state, identical inputs produce identical
// results, so callers may re-run it on every option change.
//
// There is no failure mode. Unknown account types, empty collections, and
// selected IDs missing from the snapshot all degrade to zero contributions.
// Inputs are assumed finite; the engine does not defend against NaN.
func Calculate(snap model.Snapshot, opts Options) Result {
	cash := cashItems(snap.Accounts, opts.SelectedCashAccountIDs)
	cards := creditCardItems(snap.Accounts)
	unspent := unspentBudgetItems(snap.Budgets)
	goals := goalItems(snap.Goals)
	stash := stashItems(snap)

	b := Breakdown{
		Cash:          sumItems(cash),
		CreditCards:   sumItems(cards),
		UnspentBudget: sumItems(unspent),
		Goals:         sumItems(goals),
		Stash:         sumItems(stash),
		Buffer:        wholeUnits(opts.Buffer),
	}
	if opts.IncludeExpectedIncome {
		b.ExpectedIncome = wholeUnits(expectedIncome(snap))
	}

	available := b.Cash + b.ExpectedIncome - b.CreditCards - b.UnspentBudget - b.Goals - b.Stash - b.Buffer

	return Result{
		Available: available,
		Breakdown: b,
		Detailed: DetailedBreakdown{
			CashAccounts:  cash,
			CreditCards:   cards,
			UnspentBudget: unspent,
			Goals:         goals,
			Stash:         stash,
			LeftToBudget:  leftToBudgetItems(snap),
		},
		IncludesExpectedIncome: opts.IncludeExpectedIncome,
	}
}

// expectedIncome is the unreceived remainder of the period's planned income,
// never negative: income received beyond plan does not reduce the figure.
func expectedIncome(snap model.Snapshot) decimal.Decimal {
	return decimal.Max(decimal.Zero, snap.PlannedIncome.Sub(snap.ActualIncome))
}

// wholeUnits rounds half away from zero to the nearest whole currency unit.
func wholeUnits(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
