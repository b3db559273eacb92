package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/depusage/pkg/deps"
	"github.com/Sumatoshi-tech/depusage/pkg/report"
	"github.com/Sumatoshi-tech/depusage/pkg/terminal"
)

// NewDepsCommand creates the command listing the active dependency table.
func NewDepsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "List the dependency table and the package patterns of each entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			table, err := deps.LoadTable(cfg.Scan.Table)
			if err != nil {
				return err
			}

			term := terminal.NewConfig()

			return report.WriteDependencyTable(cmd.OutOrStdout(), table, report.Options{
				NoColor: cfg.Output.NoColor || term.NoColor,
				Width:   term.Width,
			})
		},
	}
}
