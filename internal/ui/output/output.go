// Package output provides utilities for creating termenv.Output with consistent
// color profile handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile to use. Colors are off when enabled is
// false or NO_COLOR is set. Otherwise the terminal's capabilities are detected.
func ColorProfile(enabled bool) termenv.Profile {
	if !enabled || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output writing to w.
func New(w io.Writer, color bool, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile(color)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
