package model

import "github.com/shopspring/decimal"

// Snapshot bundles everything the calculation engine reads for one
// invocation: accounts, the current period's budgets, goals, stash
// balances, and income figures. The caller owns it; the engine never
// mutates it or keeps references past the call.
type Snapshot struct {
	Accounts []Account        `json:"accounts"`
	Budgets  []CategoryBudget `json:"budgets"`
	Goals    []Goal           `json:"goals"`

	PlannedIncome decimal.Decimal `json:"plannedIncome"` // period total
	ActualIncome  decimal.Decimal `json:"actualIncome"`  // received so far

	// StashTotal is the upstream sum of all stash balances. StashItems is
	// the optional itemization; when present it is the source of truth for
	// the stash bucket so that totals always reconcile against line items.
	StashTotal decimal.Decimal `json:"stashBalancesTotal"`
	StashItems []StashItem     `json:"stashItems,omitempty"`

	// LeftToBudget is the upstream "income minus budgeted minus planned
	// savings" headroom figure. Opaque input: surfaced in the breakdown,
	// never recomputed and never subtracted from available funds.
	LeftToBudget decimal.Decimal `json:"leftToBudget"`
}
