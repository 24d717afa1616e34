// Package app implements the subcommand handlers of the build manager.
package app

import (
	"context"
	"io"
	"os"
	"slices"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/manage/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// App holds the collaborators shared by all subcommands.
type App struct {
	shell    ports.Shell
	loader   ports.ConfigLoader
	runner   *lifecycle.Runner
	comparer ports.Comparer
	logger   ports.Logger
	settings domain.Settings

	dir string
	out io.Writer
}

// New creates a new App working in the current directory.
func New(
	shell ports.Shell,
	loader ports.ConfigLoader,
	runner *lifecycle.Runner,
	comparer ports.Comparer,
	logger ports.Logger,
	settings domain.Settings,
) *App {
	return &App{
		shell:    shell,
		loader:   loader,
		runner:   runner,
		comparer: comparer,
		logger:   logger,
		settings: settings,
		dir:      ".",
		out:      os.Stdout,
	}
}

// WithDir sets the project directory.
func (a *App) WithDir(dir string) *App {
	a.dir = dir
	return a
}

// WithOutput sets where reports are printed.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Layout returns the project layout of the working directory.
func (a *App) Layout() domain.Layout {
	return domain.NewLayout(a.dir)
}

func (a *App) loadProject() (*domain.Project, error) {
	project, err := a.loader.Load(a.dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

// builders creates one builder per dependency, in declaration order. A dependency
// declared after one that depends on it only produces a warning.
func (a *App) builders(project *domain.Project) ([]lifecycle.Builder, error) {
	deps := lifecycle.Deps{
		Layout:   a.Layout(),
		Shell:    a.shell,
		Logger:   a.logger,
		Platform: a.settings.Platform,
	}

	seen := make([]string, 0, len(project.Dependencies))
	builders := make([]lifecycle.Builder, 0, len(project.Dependencies))
	for _, desc := range project.Dependencies {
		for _, dep := range desc.DependsOn {
			if !slices.Contains(seen, dep) {
				a.logger.Warn(desc.Name + " depends on " + dep + ", which is built after it")
			}
		}
		seen = append(seen, desc.Name)

		b, err := lifecycle.New(desc, deps)
		if err != nil {
			return nil, err
		}
		builders = append(builders, b)
	}
	return builders, nil
}

// Setup fetches the sources of every dependency.
func (a *App) Setup(ctx context.Context) error {
	project, err := a.loadProject()
	if err != nil {
		return err
	}

	if err := a.shell.MakeDirs(a.Layout().SetupDirs()...); err != nil {
		return err
	}

	if err := a.installPrerequisites(ctx, project.Prerequisites); err != nil {
		return err
	}

	builders, err := a.builders(project)
	if err != nil {
		return err
	}
	for _, b := range builders {
		if err := a.runner.RunPhase(ctx, b, domain.PhaseSetup); err != nil {
			return err
		}
	}
	return nil
}

// installPrerequisites installs the python packages, then the system packages of
// the current platform.
func (a *App) installPrerequisites(ctx context.Context, pre domain.Prerequisites) error {
	if pre.Empty() {
		return nil
	}
	a.logger.Info("installing prerequisites")

	var cmds []domain.Command
	if pre.Requirements != "" {
		cmds = append(cmds, domain.PipInstall(domain.PipInstallOptions{
			Requirements: a.Layout().Path(pre.Requirements),
		}))
	}
	if len(pre.Pip) > 0 {
		cmds = append(cmds, domain.PipInstall(domain.PipInstallOptions{
			Upgrade:  pre.Upgrade,
			Packages: pre.Pip,
		}))
	}
	switch a.settings.Platform {
	case domain.PlatformLinux:
		if len(pre.Apt) > 0 {
			cmds = append(cmds, domain.AptInstall(pre.Upgrade, pre.Apt...))
		}
	case domain.PlatformDarwin:
		if len(pre.Brew) > 0 {
			cmds = append(cmds, domain.BrewInstall(pre.Upgrade, pre.Brew...)...)
		}
	default:
		if len(pre.Apt) > 0 || len(pre.Brew) > 0 {
			a.logger.Warn("skipping system packages on " + a.settings.Platform.String())
		}
	}

	for _, cmd := range cmds {
		cmd.Dir = a.Layout().Root()
		if err := a.shell.Run(ctx, cmd); err != nil {
			return zerr.Wrap(err, "failed to install prerequisites")
		}
	}
	return nil
}
