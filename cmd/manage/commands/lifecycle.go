package commands

import (
	"context"

	"go.trai.ch/manage/internal/app"
	"go.trai.ch/manage/internal/registry"
)

func setupEntry(a Application) registry.Entry {
	return registry.Entry{
		Name:  "setup",
		Short: "setup prerequisites",
		Handler: func(ctx context.Context, _ registry.Values) error {
			return a.Setup(ctx)
		},
	}
}

func buildEntry(a Application) registry.Entry {
	return registry.Entry{
		Name:  "build",
		Short: "build packages",
		Options: []registry.OptionSpec{
			{Long: "shared", Short: "s", Help: "build shared libraries"},
			{Long: "all", Short: "a", Help: "build all"},
		},
		Handler: func(ctx context.Context, v registry.Values) error {
			return a.Build(ctx, app.BuildOptions{
				Shared: v.Bool("shared"),
				All:    v.Bool("all"),
			})
		},
	}
}

func testEntry(a Application) registry.Entry {
	return registry.Entry{
		Name:  "test",
		Short: "test modules",
		Options: []registry.OptionSpec{
			{Long: "pytest", Short: "p", Help: "run pytest"},
		},
		Handler: func(ctx context.Context, v registry.Values) error {
			return a.Test(ctx, app.TestOptions{Pytest: v.Bool("pytest")})
		},
	}
}

func cleanEntry(a Application) registry.Entry {
	return registry.Entry{
		Name:  "clean",
		Short: "clean detritus",
		Options: []registry.OptionSpec{
			{Long: "reset", Short: "r", Help: "reset project"},
			{Long: "verbose", Short: "v", Help: "verbose cleaning ops"},
		},
		Handler: func(_ context.Context, v registry.Values) error {
			return a.Clean(app.CleanOptions{
				Reset:   v.Bool("reset"),
				Verbose: v.Bool("verbose"),
			})
		},
	}
}
