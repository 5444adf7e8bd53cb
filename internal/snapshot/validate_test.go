package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendable-dev/spendable/internal/model"
)

func TestValidate_CleanDocument(t *testing.T) {
	snap, err := Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	assert.Empty(t, Validate(snap))
}

func TestValidate_DuplicateAccountID(t *testing.T) {
	snap := model.Snapshot{Accounts: []model.Account{
		{ID: "a1", Name: "Checking"},
		{ID: "a1", Name: "Checking again"},
	}}

	errs := Validate(snap)
	require.Len(t, errs, 1)
	assert.Equal(t, "account [a1]: duplicate id", errs[0].Error())
}

func TestValidate_BlankID(t *testing.T) {
	snap := model.Snapshot{Goals: []model.Goal{{ID: "", Name: "Vacation"}}}

	errs := Validate(snap)
	require.Len(t, errs, 1)
	assert.Equal(t, "goal [Vacation]: blank id", errs[0].Error())
}

func TestValidate_NegativeSpent(t *testing.T) {
	snap := model.Snapshot{Budgets: []model.CategoryBudget{
		{ID: "b1", Name: "Groceries", Spent: dec("-12.50")},
	}}

	errs := Validate(snap)
	require.Len(t, errs, 1)
	assert.Equal(t, "spent -12.50 is negative", errs[0].Description)
}

func TestValidate_SameIDAcrossCollections(t *testing.T) {
	// Goals and stash items come from different host subsystems; their ID
	// spaces are independent.
	snap := model.Snapshot{
		Goals:      []model.Goal{{ID: "x", Name: "Goal"}},
		StashItems: []model.StashItem{{ID: "x", Name: "Stash"}},
	}
	assert.Empty(t, Validate(snap))
}

func TestValidate_CollectsEveryFinding(t *testing.T) {
	snap := model.Snapshot{
		Accounts: []model.Account{
			{ID: "a1"}, {ID: "a1"},
		},
		Budgets: []model.CategoryBudget{
			{ID: "", Name: "No id", Spent: dec("-1")},
		},
	}

	errs := Validate(snap)
	assert.Len(t, errs, 3, "duplicate account, blank category id, negative spent")
}
