package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/depusage/pkg/version"
)

// NewRootCommand builds the depusage command tree. Without a subcommand it runs scan.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "depusage",
		Short: "Find which Android dependencies a Kotlin project actually imports",
		Long: `depusage scans Kotlin sources for import statements and reports which
dependencies from a known table appear to be used or unused.

Commands:
  scan      Scan sources and print the dependency report (default)
  deps      List the dependency table`,
		Args:          cobra.NoArgs,
		RunE:          opts.RunScan,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.RegisterFlags(rootCmd)

	rootCmd.AddCommand(NewScanCommand(opts))
	rootCmd.AddCommand(NewDepsCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "depusage %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
