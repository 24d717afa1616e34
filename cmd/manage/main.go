// Package main is the entry point for the manage build tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/manage/cmd/manage/commands"
	"go.trai.ch/manage/internal/app"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/registry"
	_ "go.trai.ch/manage/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, func() {}, err
		}
		return c, func() { closeComponents(c) }, nil
	}))
}

// closeComponents closes the telemetry session and reports the recorded phases.
func closeComponents(c *app.Components) {
	if err := c.Telemetry.Close(); err != nil {
		c.Logger.Warn("failed to close telemetry: " + err.Error())
	}
	if summary := c.Telemetry.Summary(); summary.Total > 0 {
		c.Logger.Info(summary.String())
	}
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli, err := commands.New(components.App)
	if err != nil {
		components.Logger.Error(err)
		return 1
	}
	cli.SetOutput(os.Stdout, stderr)

	return exitCode(cli.Dispatch(ctx, args), components)
}

func exitCode(err error, components *app.Components) int {
	if err == nil {
		return 0
	}

	var usage *registry.UsageError
	if errors.As(err, &usage) {
		return 2
	}

	var status *domain.ExitStatusError
	if errors.As(err, &status) {
		return status.Code
	}

	components.Logger.Error(err)
	return 1
}
