package snapshot

import (
	"fmt"

	"github.com/spendable-dev/spendable/internal/model"
)

// ValidationError describes a single structural problem in a snapshot.
type ValidationError struct {
	Kind        string
	ID          string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Kind, e.ID, e.Description)
}

// Validate flags structural problems that would make a calculation
// misleading: blank or duplicate IDs within a collection, and negative
// spent figures. Callers refuse documents with findings before
// calculating; the calculation itself never validates.
func Validate(snap model.Snapshot) []ValidationError {
	var errs []ValidationError

	check := func(kind, id, name string, seen map[string]bool) {
		switch {
		case id == "":
			errs = append(errs, ValidationError{Kind: kind, ID: name, Description: "blank id"})
		case seen[id]:
			errs = append(errs, ValidationError{Kind: kind, ID: id, Description: "duplicate id"})
		default:
			seen[id] = true
		}
	}

	seen := make(map[string]bool, len(snap.Accounts))
	for _, a := range snap.Accounts {
		check("account", a.ID, a.Name, seen)
	}

	seen = make(map[string]bool, len(snap.Budgets))
	for _, c := range snap.Budgets {
		check("category", c.ID, c.Name, seen)
		if c.Spent.IsNegative() {
			errs = append(errs, ValidationError{
				Kind:        "category",
				ID:          c.ID,
				Description: fmt.Sprintf("spent %s is negative", c.Spent),
			})
		}
	}

	seen = make(map[string]bool, len(snap.Goals))
	for _, g := range snap.Goals {
		check("goal", g.ID, g.Name, seen)
	}

	seen = make(map[string]bool, len(snap.StashItems))
	for _, s := range snap.StashItems {
		check("stash item", s.ID, s.Name, seen)
	}

	return errs
}
