// Package env builds the process-wide settings record from environment variables.
package env

import (
	"fmt"
	"os"
	"strings"

	"go.trai.ch/manage/internal/core/domain"
)

// Environment variables consulted at start-up.
const (
	DebugVar            = "DEBUG"
	ColorVar            = "COLOR"
	DeploymentTargetVar = "MACOSX_DEPLOYMENT_TARGET"
	PythonVar           = "PYTHON"
	LogFormatVar        = "LOG_FORMAT"
)

// Environment abstracts reads and writes of process environment variables.
type Environment interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

type osEnvironment struct{}

func (osEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (osEnvironment) Setenv(key, value string) error { return os.Setenv(key, value) }

// OS returns the Environment backed by the running process.
func OS() Environment {
	return osEnvironment{}
}

// LoadSettings reads the settings record for platform from environ.
//
// DEBUG and COLOR are decimal integers where zero means false. Surrounding spaces, a
// sign, leading zeros and digit-separating underscores are accepted. Unset or
// unparsable values keep the default of true; unparsable values are reported in
// Settings.Warnings. LOG_FORMAT=json switches the logger to JSON lines.
// On darwin the deployment target is written back to the environment when absent so
// that spawned compilers see it.
func LoadSettings(environ Environment, platform domain.Platform) domain.Settings {
	s := domain.DefaultSettings()
	s.Platform = platform

	s.Debug = boolVar(environ, DebugVar, s.Debug, &s.Warnings)
	s.Color = boolVar(environ, ColorVar, s.Color, &s.Warnings)

	switch format, _ := environ.LookupEnv(LogFormatVar); strings.ToLower(strings.TrimSpace(format)) {
	case "", "pretty", "text":
	case "json":
		s.LogJSON = true
	default:
		s.Warnings = append(s.Warnings, fmt.Sprintf("ignoring %s=%q: expected json or pretty", LogFormatVar, format))
	}

	if python, ok := environ.LookupEnv(PythonVar); ok && python != "" {
		s.Python = python
	}

	if platform == domain.PlatformDarwin {
		target, ok := environ.LookupEnv(DeploymentTargetVar)
		if !ok {
			target = domain.DefaultDeploymentTarget
			if err := environ.Setenv(DeploymentTargetVar, target); err != nil {
				s.Warnings = append(s.Warnings, fmt.Sprintf("could not set %s: %v", DeploymentTargetVar, err))
			}
		}
		s.DeploymentTarget = target
	}

	return s
}

func boolVar(environ Environment, key string, def bool, warnings *[]string) bool {
	raw, ok := environ.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	nonzero, ok := parseFlag(raw)
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf("ignoring %s=%q: expected 0 or 1", key, raw))
		return def
	}
	return nonzero
}

// parseFlag reports whether raw is a decimal integer and whether it is nonzero.
func parseFlag(raw string) (nonzero, ok bool) {
	s := strings.TrimSpace(raw)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" || strings.HasPrefix(s, "_") || strings.HasSuffix(s, "_") || strings.Contains(s, "__") {
		return false, false
	}
	for _, r := range s {
		switch {
		case r == '_':
		case r < '0' || r > '9':
			return false, false
		case r != '0':
			nonzero = true
		}
	}
	return nonzero, true
}
