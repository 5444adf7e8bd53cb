package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendable-dev/spendable/internal/calc"
	"github.com/spendable-dev/spendable/internal/config"
	"github.com/spendable-dev/spendable/internal/model"
	"github.com/spendable-dev/spendable/internal/render"
	"github.com/spendable-dev/spendable/internal/snapshot"
)

func newAvailableCommand() *cobra.Command {
	var (
		configPath     string
		asJSON         bool
		buffer         float64
		expectedIncome bool
		accountIDs     []string
	)

	cmd := &cobra.Command{
		Use:   "available [snapshot]",
		Short: "Calculate the amount available to allocate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "snapshot.json"
			if len(args) > 0 {
				path = args[0]
			}

			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			// Flags beat the config file, but only when actually given:
			// an untouched flag must not clobber a configured default.
			opts := cfg.Options.CalcOptions()
			if cmd.Flags().Changed("buffer") {
				opts.Buffer = decimal.NewFromFloat(buffer)
			}
			if cmd.Flags().Changed("expected-income") {
				opts.IncludeExpectedIncome = expectedIncome
			}
			if cmd.Flags().Changed("accounts") {
				opts.SelectedCashAccountIDs = accountIDs
			}

			snap, err := loadSnapshot(cmd, path)
			if err != nil {
				return err
			}

			res := calc.Calculate(snap, opts)
			if asJSON {
				return render.JSON(cmd.OutOrStdout(), res)
			}
			return render.Report(cmd.OutOrStdout(), res, render.Options{
				Currency: cfg.Currency,
				LowBelow: cfg.Thresholds.Low,
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "spendable.yaml", "path to the config file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	cmd.Flags().Float64Var(&buffer, "buffer", 0, "amount to hold back from the available figure")
	cmd.Flags().BoolVar(&expectedIncome, "expected-income", false, "count unreceived planned income as available")
	cmd.Flags().StringSliceVar(&accountIDs, "accounts", nil, "cash account IDs to include (omit for all enabled, empty for none)")

	return cmd
}

// loadConfig reads the config file. A missing file at the default path
// falls back to built-in defaults; a missing file the user named
// explicitly is an error.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// loadSnapshot reads the document and refuses to calculate on one with
// structural problems, listing every finding on stderr.
func loadSnapshot(cmd *cobra.Command, path string) (model.Snapshot, error) {
	snap, err := snapshot.Load(path)
	if err != nil {
		return model.Snapshot{}, err
	}
	if errs := snapshot.Validate(snap); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}
		return model.Snapshot{}, fmt.Errorf("snapshot failed validation with %d problem(s)", len(errs))
	}
	return snap, nil
}
