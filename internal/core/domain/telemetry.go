package domain

import (
	"fmt"
	"time"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Phase names one step of the builder lifecycle.
type Phase string

const (
	// PhasePreProcess runs before any source is fetched.
	PhasePreProcess Phase = "preProcess"
	// PhaseSetup fetches the sources.
	PhaseSetup Phase = "setup"
	// PhaseConfigure generates the build tree.
	PhaseConfigure Phase = "configure"
	// PhaseBuild compiles the build tree.
	PhaseBuild Phase = "build"
	// PhaseInstall copies the artifacts into the install prefix.
	PhaseInstall Phase = "install"
	// PhaseClean removes intermediate build output.
	PhaseClean Phase = "clean"
	// PhasePostProcess runs after the dependency is installed.
	PhasePostProcess Phase = "postProcess"
)

// Phases lists the lifecycle phases in execution order.
func Phases() []Phase {
	return []Phase{
		PhasePreProcess,
		PhaseSetup,
		PhaseConfigure,
		PhaseBuild,
		PhaseInstall,
		PhaseClean,
		PhasePostProcess,
	}
}

// RunSummary tallies the phases recorded during one invocation.
type RunSummary struct {
	Total     int
	Completed int
	Cached    int
	Failed    int
	Duration  time.Duration
}

func (s RunSummary) String() string {
	return fmt.Sprintf("phases: %d completed (%d cached), %d failed in %s",
		s.Completed, s.Cached, s.Failed, s.Duration.Round(time.Millisecond))
}
