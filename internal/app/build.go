package app

import (
	"context"
	"strings"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// BuildOptions configures the build subcommand.
type BuildOptions struct {
	// Shared builds the extension against shared libraries.
	Shared bool
	// All rebuilds dependencies whose static libraries are already installed.
	All bool
}

// Build runs the full lifecycle of every dependency, then builds the extension.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	project, err := a.loadProject()
	if err != nil {
		return err
	}

	builders, err := a.builders(project)
	if err != nil {
		return err
	}
	checked := false
	for _, b := range builders {
		if !opts.All && staticLibsInstalled(b) {
			a.logger.Info("skipping " + b.Descriptor().Name + ": static libraries already installed")
			continue
		}
		if !checked {
			if err := a.checkCMake(ctx); err != nil {
				return err
			}
			checked = true
		}
		if err := a.runner.Process(ctx, b); err != nil {
			return err
		}
	}

	return a.buildExtension(ctx, project.Extension, opts.Shared)
}

func staticLibsInstalled(b lifecycle.Builder) bool {
	checker, ok := b.(lifecycle.StaticChecker)
	return ok && checker.LibsStaticExist()
}

// checkCMake fails early when cmake is not installed and logs the version in use.
func (a *App) checkCMake(ctx context.Context) error {
	out, err := a.shell.Output(ctx, domain.CMakeVersion())
	if err != nil {
		return zerr.Wrap(err, "cmake is required to build dependencies")
	}
	first, _, _ := strings.Cut(out, "\n")
	a.logger.Info("using " + first)
	return nil
}

func (a *App) buildExtension(ctx context.Context, ext domain.Extension, shared bool) error {
	if len(ext.Cmd) == 0 {
		return nil
	}

	cmd := domain.NewCommand(a.dir, ext.Cmd...)
	for k, v := range ext.Env {
		cmd = cmd.WithEnv(k, v)
	}
	if !shared {
		cmd = cmd.WithEnv("STATIC", "1")
	}
	return a.shell.Run(ctx, cmd)
}
