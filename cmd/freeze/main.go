// Package main is the entry point for the freeze packaging runner.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/freeze/cmd/freeze/commands"
	"go.trai.ch/freeze/internal/app"
	"go.trai.ch/freeze/internal/core/domain"
	_ "go.trai.ch/freeze/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return domain.ExitFailure
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	return exitCode(cli.Execute(ctx), components)
}

func exitCode(err error, components *app.Components) int {
	switch {
	case err == nil:
		return domain.ExitSuccess
	case errors.Is(err, domain.ErrBuildAborted):
		return domain.OutcomeAborted.ExitCode()
	case errors.Is(err, domain.ErrBuildFailed):
		return domain.OutcomeFailure.ExitCode()
	default:
		components.Logger.Error(err)
		return domain.ExitFailure
	}
}
