package calc

import (
	"github.com/shopspring/decimal"

	"github.com/spendable-dev/spendable/internal/model"
)

// leftToBudgetItems explains the snapshot's headroom figure as budgeted
// income in, category commitments out, and a back-solved remainder the
// upstream value implies but never itemizes:
//
//	savingsAndOther = plannedIncome - totalBudgeted - leftToBudget
//
// The remainder is an algebraic identity, not a measurement. If the upstream
// inputs disagree with each other the discrepancy lands here silently.
// Subtracted lines carry negative amounts so the list sums to the figure it
// explains; lines that round to zero are dropped like any other display line.
func leftToBudgetItems(snap model.Snapshot) []LineItem {
	totalBudgeted := decimal.Zero
	for _, c := range snap.Budgets {
		totalBudgeted = totalBudgeted.Add(c.Budgeted)
	}
	savingsAndOther := snap.PlannedIncome.Sub(totalBudgeted).Sub(snap.LeftToBudget)

	lines := []LineItem{
		lineItem("planned_income", "Budgeted income", snap.PlannedIncome),
		lineItem("budgeted_categories", "Budgeted categories", totalBudgeted.Neg()),
		lineItem("savings_and_other", "Savings & other", savingsAndOther.Neg()),
	}

	// Narrative order, not amount order: income, then what it was spent on.
	var kept []LineItem
	for _, line := range lines {
		if line.Amount != 0 {
			kept = append(kept, line)
		}
	}
	return kept
}
