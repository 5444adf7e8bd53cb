package calc

import (
	"html"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendable-dev/spendable/internal/classify"
	"github.com/spendable-dev/spendable/internal/model"
)

// cashItems builds the cash bucket: enabled cash accounts, optionally
// restricted to a selected subset, balances kept signed.
func cashItems(accounts []model.Account, selected []string) []LineItem {
	var chosen map[string]bool
	if selected != nil {
		chosen = make(map[string]bool, len(selected))
		for _, id := range selected {
			chosen[id] = true
		}
	}

	var items []LineItem
	for _, a := range accounts {
		if !a.Enabled || !classify.Classify(a.Type).IsCash {
			continue
		}
		if chosen != nil && !chosen[a.ID] {
			continue
		}
		items = append(items, lineItem(a.ID, a.Name, a.Balance))
	}
	return displayList(items)
}

// creditCardItems builds the credit-card bucket. Balances are taken as
// absolute values so either stored sign convention reads as debt owed.
func creditCardItems(accounts []model.Account) []LineItem {
	var items []LineItem
	for _, a := range accounts {
		if !a.Enabled || !classify.Classify(a.Type).IsCreditCard {
			continue
		}
		items = append(items, lineItem(a.ID, a.Name, a.Balance.Abs()))
	}
	return displayList(items)
}

// unspentBudgetItems builds the unspent-budget bucket from the non-negative
// remainder of each expense category. An overspent category contributes
// zero, never a negative offset.
func unspentBudgetItems(budgets []model.CategoryBudget) []LineItem {
	var items []LineItem
	for _, c := range budgets {
		if !c.Expense {
			continue
		}
		items = append(items, lineItem(c.ID, c.Name, decimal.Max(decimal.Zero, c.Remaining)))
	}
	return displayList(items)
}

// goalItems builds the goal bucket from goals holding a positive balance.
func goalItems(goals []model.Goal) []LineItem {
	var items []LineItem
	for _, g := range goals {
		if !g.Balance.IsPositive() {
			continue
		}
		items = append(items, lineItem(g.ID, g.Name, g.Balance))
	}
	return displayList(items)
}

// stashItems builds the stash bucket. When the snapshot carries only the
// total, one synthetic line stands in for the missing itemization so the
// breakdown still reconciles.
func stashItems(snap model.Snapshot) []LineItem {
	if len(snap.StashItems) == 0 {
		if snap.StashTotal.IsZero() {
			return nil
		}
		return displayList([]LineItem{lineItem("stash", "Stash balances", snap.StashTotal)})
	}

	var items []LineItem
	for _, s := range snap.StashItems {
		if !s.Balance.IsPositive() {
			continue
		}
		items = append(items, lineItem(s.ID, s.Name, s.Balance))
	}
	return displayList(items)
}

// lineItem rounds an amount to whole units and decodes HTML entities that
// upstream sources leave in display names. Decoding never feeds back into
// any calculation.
func lineItem(id, name string, amount decimal.Decimal) LineItem {
	return LineItem{ID: id, Name: html.UnescapeString(name), Amount: wholeUnits(amount)}
}

// displayList drops lines that rounded to zero and orders the rest largest
// first. Dropped lines are exactly zero, so the list's sum is unchanged.
// Ties order by name then ID to keep output deterministic.
func displayList(items []LineItem) []LineItem {
	var kept []LineItem
	for _, it := range items {
		if it.Amount != 0 {
			kept = append(kept, it)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return kept
}

// sumItems totals a list's whole-unit amounts.
func sumItems(items []LineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Amount
	}
	return total
}
