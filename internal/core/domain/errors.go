package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrDuplicateCommand is returned when two handlers register the same subcommand name.
	ErrDuplicateCommand = zerr.New("duplicate subcommand")

	// ErrRegistryFrozen is returned when registering into a table that has already been frozen.
	ErrRegistryFrozen = zerr.New("command registry is frozen")

	// ErrUnknownCommand is returned when a subcommand is not in the registry.
	ErrUnknownCommand = zerr.New("unknown subcommand")

	// ErrInvalidCommandName is returned when a subcommand name is empty or contains whitespace.
	ErrInvalidCommandName = zerr.New("invalid subcommand name")

	// ErrInvalidOption is returned when an option definition has no long name.
	ErrInvalidOption = zerr.New("invalid option definition")

	// ErrUnsupportedPlatform is returned when artifact names are requested for an unknown platform.
	ErrUnsupportedPlatform = zerr.New("platform not supported")

	// ErrUnknownBuilderKind is returned when a descriptor names a builder kind that is not registered.
	ErrUnknownBuilderKind = zerr.New("unknown builder kind")

	// ErrMissingDependency is returned when a dependency references an undeclared dependency.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrConfigInvalid is returned when the project file fails validation.
	ErrConfigInvalid = zerr.New("invalid project file")

	// ErrSourceNotFound is returned when a copy or glob source does not exist.
	ErrSourceNotFound = zerr.New("source not found")

	// ErrRemoveFailed is returned when a path cannot be removed, even after remediation.
	ErrRemoveFailed = zerr.New("failed to remove path")

	// ErrCopyFailed is returned when a file or directory cannot be copied.
	ErrCopyFailed = zerr.New("failed to copy path")

	// ErrMkdirFailed is returned when a directory cannot be created.
	ErrMkdirFailed = zerr.New("failed to create directory")

	// ErrDownloadFailed is returned when a remote file cannot be fetched.
	ErrDownloadFailed = zerr.New("failed to download file")

	// ErrExtractFailed is returned when an archive is recognised but cannot be expanded.
	ErrExtractFailed = zerr.New("failed to extract archive")

	// ErrUnsafeArchivePath is returned when an archive entry would escape the destination folder.
	ErrUnsafeArchivePath = zerr.New("archive entry escapes destination")

	// ErrCommandStartFailed is returned when an external process cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrEmptyCommand is returned when an empty argument list is run.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrTestsFailed is returned when one or more individually run test files fail.
	ErrTestsFailed = zerr.New("tests failed")

	// ErrPhaseFailed is returned when a builder lifecycle phase fails.
	ErrPhaseFailed = zerr.New("builder phase failed")
)

// CommandError is returned by the shell façade when an external process exits with a
// nonzero status.
type CommandError struct {
	Args     []string
	Dir      string
	ExitCode int
	Err      error
}

// Error implements error.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed with exit code %d: %s", e.ExitCode, strings.Join(e.Args, " "))
}

// Unwrap returns the underlying process error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// UnsupportedArchiveError is returned when a file is neither a tar nor a zip archive.
type UnsupportedArchiveError struct {
	Path string
}

// Error implements error.
func (e *UnsupportedArchiveError) Error() string {
	return "cannot extract from this file: " + e.Path
}

// ExitStatusError asks the entry point to exit with a specific status instead of the
// default failure status. It is used when a subprocess exit code is passed through.
type ExitStatusError struct {
	Code int
	Err  error
}

// Error implements error.
func (e *ExitStatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitStatusError) Unwrap() error {
	return e.Err
}
