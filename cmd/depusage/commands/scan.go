package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Sumatoshi-tech/depusage/pkg/deps"
	"github.com/Sumatoshi-tech/depusage/pkg/importscan"
	"github.com/Sumatoshi-tech/depusage/pkg/report"
	"github.com/Sumatoshi-tech/depusage/pkg/terminal"
)

const tracerName = "depusage"

// NewScanCommand creates the scan command.
func NewScanCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Report which known dependencies are imported by the project sources",
		Long: `Scan collects every import statement under the source directory and
classifies each known dependency as used or potentially unused.

A dependency counts as used when any import contains one of its package
patterns. Fully-qualified references without an import line are not seen.`,
		Args: cobra.NoArgs,
		RunE: opts.RunScan,
	}
}

// RunScan changes into the project root, collects imports, classifies them and prints the report.
func (o *Options) RunScan(cmd *cobra.Command, _ []string) error {
	cfg, err := o.load(cmd)
	if err != nil {
		return err
	}

	ctx, span := otel.Tracer(tracerName).Start(commandContext(cmd), "depusage.scan")
	defer span.End()

	logger := o.logger(cfg, "scan", cmd.ErrOrStderr())

	// The table path is resolved against the caller's directory, so load it before chdir.
	table, err := deps.LoadTable(cfg.Scan.Table)
	if err != nil {
		return err
	}

	if cfg.Project.Root != "" {
		chdirErr := os.Chdir(cfg.Project.Root)
		if chdirErr != nil {
			return fmt.Errorf("%w: change to project root: %w", importscan.ErrFileRead, chdirErr)
		}

		logger.DebugContext(ctx, "changed working directory", slog.String("root", cfg.Project.Root))
	}

	collector := importscan.NewCollector(cfg.Scan.Extension, logger)
	collector.SkipVendor = cfg.Scan.SkipVendor

	imports, err := collector.Collect(ctx, cfg.Project.SourceDir)
	if err != nil {
		span.RecordError(err)

		return fmt.Errorf("collect imports: %w", err)
	}

	result := deps.Classify(table, imports)

	span.SetAttributes(
		attribute.Int("depusage.imports", imports.Len()),
		attribute.Int("depusage.used", len(result.Used)),
		attribute.Int("depusage.unused", len(result.Unused)),
	)

	logger.InfoContext(ctx, "dependencies classified",
		slog.Int("used", len(result.Used)),
		slog.Int("unused", len(result.Unused)),
	)

	term := terminal.NewConfig()

	return report.Write(cmd.OutOrStdout(), cfg.Output.Format, report.New(result, imports), report.Options{
		NoColor: cfg.Output.NoColor || term.NoColor,
		Width:   term.Width,
	})
}
