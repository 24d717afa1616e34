// Package build holds build-time information.
package build

// Version is the application version.
// It can be overwritten by linker flags.
var Version = "0.0.4"
