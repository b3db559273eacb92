// Package main provides the entry point for the depusage CLI tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sumatoshi-tech/depusage/cmd/depusage/commands"
	"github.com/Sumatoshi-tech/depusage/pkg/observability"
	"github.com/Sumatoshi-tech/depusage/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	providers, err := observability.Init(observability.ConfigFromEnv(version.Version))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: init tracing: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = commands.NewRootCommand().ExecuteContext(ctx)

	stop()

	shutdownErr := providers.Shutdown(context.Background())
	if shutdownErr != nil {
		err = errors.Join(err, fmt.Errorf("flush traces: %w", shutdownErr))
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
