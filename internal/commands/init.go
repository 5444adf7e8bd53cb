package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendable-dev/spendable/internal/config"
	"github.com/spendable-dev/spendable/internal/model"
	"github.com/spendable-dev/spendable/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default config and a sample snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "spendable.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	// Write spendable.yaml.
	if err := config.Save(cfgPath, config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write a sample snapshot to calculate against until a real export
	// replaces it.
	f, err := os.Create(filepath.Join(dir, "snapshot.json"))
	if err != nil {
		return fmt.Errorf("creating sample snapshot: %w", err)
	}
	defer f.Close()
	if err := snapshot.Write(f, sampleSnapshot()); err != nil {
		return fmt.Errorf("writing sample snapshot: %w", err)
	}

	fmt.Printf("Initialized spendable workspace at %s\n", dir)
	return nil
}

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Accounts: []model.Account{
			{ID: uuid.NewString(), Name: "Everyday Checking", Balance: decimal.NewFromInt(2400), Type: "checking", Enabled: true},
			{ID: uuid.NewString(), Name: "Rainy Day Savings", Balance: decimal.NewFromInt(5200), Type: "savings", Enabled: true},
			{ID: uuid.NewString(), Name: "Travel Card", Balance: decimal.RequireFromString("-310.25"), Type: "credit_card", Enabled: true},
		},
		Budgets: []model.CategoryBudget{
			{ID: uuid.NewString(), Name: "Groceries", Budgeted: decimal.NewFromInt(600), Spent: decimal.RequireFromString("310.40"), Remaining: decimal.RequireFromString("289.60"), Expense: true},
			{ID: uuid.NewString(), Name: "Rent", Budgeted: decimal.NewFromInt(1800), Spent: decimal.NewFromInt(1800), Expense: true},
		},
		Goals: []model.Goal{
			{ID: uuid.NewString(), Name: "Emergency Fund", Balance: decimal.NewFromInt(1500)},
		},
		PlannedIncome: decimal.NewFromInt(6500),
		ActualIncome:  decimal.NewFromInt(6500),
	}
}
