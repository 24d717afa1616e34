// Package commands registers the subcommands of the manage build tool.
package commands

import (
	"context"

	"go.trai.ch/manage/internal/app"
	"go.trai.ch/manage/internal/build"
	"go.trai.ch/manage/internal/registry"
)

// Application represents the application logic interface.
type Application interface {
	Setup(ctx context.Context) error
	Build(ctx context.Context, opts app.BuildOptions) error
	Test(ctx context.Context, opts app.TestOptions) error
	Clean(opts app.CleanOptions) error
	Compare(left, right string) error
	Bundle(root, bundle string) error
	Examples(from, to string) error
	Convert(in, out string) error
}

// Register adds every subcommand to t.
func Register(t *registry.Table, a Application) error {
	entries := []registry.Entry{
		setupEntry(a),
		buildEntry(a),
		testEntry(a),
		cleanEntry(a),
		compareEntry(a),
		bundleEntry(a),
		examplesEntry(a),
		convertEntry(a),
	}
	for _, e := range entries {
		if err := t.Register(e); err != nil {
			return err
		}
	}
	return nil
}

// New creates the dispatcher for the manage command line.
func New(a Application) (*registry.Dispatcher, error) {
	t := registry.NewTable()
	if err := Register(t, a); err != nil {
		return nil, err
	}
	return registry.NewDispatcher("manage", "Cross-platform cmake build manager", build.Version, t), nil
}
