// Package commands implements CLI command handlers for depusage.
package commands

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/depusage/pkg/config"
	"github.com/Sumatoshi-tech/depusage/pkg/observability"
	"github.com/Sumatoshi-tech/depusage/pkg/report"
)

// Flag names shared by all commands.
const (
	flagConfig     = "config"
	flagRoot       = "root"
	flagSourceDir  = "source-dir"
	flagExt        = "ext"
	flagTable      = "table"
	flagFormat     = "format"
	flagNoColor    = "no-color"
	flagSkipVendor = "skip-vendor"
	flagVerbose    = "verbose"
	flagQuiet      = "quiet"
	flagLogJSON    = "log-json"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"project.root":       flagRoot,
	"project.source_dir": flagSourceDir,
	"scan.extension":     flagExt,
	"scan.table":         flagTable,
	"scan.skip_vendor":   flagSkipVendor,
	"output.format":      flagFormat,
	"output.no_color":    flagNoColor,
	"logging.json":       flagLogJSON,
}

// Options holds the persistent flags of the root command.
type Options struct {
	configPath string
	verbose    bool
	quiet      bool
}

// RegisterFlags adds the persistent flags shared by every command to cmd.
func (o *Options) RegisterFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&o.configPath, flagConfig, "", "config file (default: .depusage.yaml in CWD or $HOME)")
	flags.String(flagRoot, config.DefaultProjectRoot, "project root to change into before scanning (empty keeps CWD)")
	flags.String(flagSourceDir, config.DefaultSourceDir, "source directory to scan, relative to the project root")
	flags.String(flagExt, config.DefaultExtension, "source file extension")
	flags.String(flagTable, "", "YAML dependency table replacing the built-in one")
	flags.StringP(flagFormat, "f", config.DefaultFormat, "output format: "+strings.Join(report.Formats(), ", "))
	flags.Bool(flagNoColor, false, "disable colored output")
	flags.Bool(flagSkipVendor, false, "skip vendored paths")
	flags.Bool(flagLogJSON, false, "emit logs as JSON")
	flags.BoolVarP(&o.verbose, flagVerbose, "v", false, "verbose logging")
	flags.BoolVarP(&o.quiet, flagQuiet, "q", false, "log errors only")
}

// load reads the configuration with cmd's flags layered on top.
func (o *Options) load(cmd *cobra.Command) (*config.Config, error) {
	bindings := make(config.FlagBindings, len(flagKeys))
	for key, name := range flagKeys {
		bindings[key] = cmd.Flags().Lookup(name)
	}

	return config.LoadConfig(o.configPath, bindings)
}

// logger builds the logger for a command run. Verbose and quiet override the configured level.
func (o *Options) logger(cfg *config.Config, command string, w io.Writer) *slog.Logger {
	level, _ := cfg.Logging.SlogLevel()

	switch {
	case o.verbose:
		level = slog.LevelDebug
	case o.quiet:
		level = slog.LevelError
	}

	return observability.NewLogger(w, observability.LoggerConfig{
		Level:   level,
		JSON:    cfg.Logging.JSON,
		Command: command,
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
