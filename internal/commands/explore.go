package commands

import (
	"github.com/spf13/cobra"

	"github.com/spendable-dev/spendable/internal/tui"
)

func newExploreCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "explore [snapshot]",
		Short: "Interactively explore what moves the available figure",
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
			snap, err := loadSnapshot(cmd, path)
			if err != nil {
				return err
			}
			return tui.Run(snap, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "spendable.yaml", "path to the config file")

	return cmd
}
