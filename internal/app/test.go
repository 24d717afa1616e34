package app

import (
	"context"
	"errors"
	"strconv"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/zerr"
)

// TestOptions configures the test subcommand.
type TestOptions struct {
	// Pytest runs the suite through pytest instead of file by file.
	Pytest bool
}

// Test runs the project tests. With pytest the runner's exit status is passed
// through. Otherwise every test file runs and any failure fails the command.
func (a *App) Test(ctx context.Context, opts TestOptions) error {
	project, err := a.loadProject()
	if err != nil {
		return err
	}
	layout := a.Layout()

	if opts.Pytest {
		cmd := domain.Pytest(project.Tests)
		cmd.Dir = layout.Root()
		if err := a.shell.Run(ctx, cmd); err != nil {
			var cmdErr *domain.CommandError
			if errors.As(err, &cmdErr) {
				return &domain.ExitStatusError{Code: cmdErr.ExitCode, Err: err}
			}
			return err
		}
		return nil
	}

	files, err := a.shell.Glob(layout.Path(project.Tests), []string{domain.TestFilePattern})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		a.logger.Warn("no test files found in " + project.Tests)
		return nil
	}

	failed := 0
	for _, f := range files {
		cmd := domain.PythonRun(a.settings.Python, f)
		cmd.Dir = layout.Root()
		if err := a.shell.Run(ctx, cmd); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.logger.Error(err)
			failed++
		}
	}
	if failed > 0 {
		err := zerr.Wrap(domain.ErrTestsFailed, strconv.Itoa(failed)+" of "+strconv.Itoa(len(files))+" test files failed")
		return zerr.With(err, "failed", failed)
	}
	return nil
}
