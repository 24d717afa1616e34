package domain

import (
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Platform enumerates the operating systems the build manager knows artifact names for.
type Platform int

const (
	// PlatformUnknown is any operating system without known artifact names.
	PlatformUnknown Platform = iota
	// PlatformDarwin is macOS.
	PlatformDarwin
	// PlatformLinux is Linux.
	PlatformLinux
	// PlatformWindows is Windows.
	PlatformWindows
)

// ParsePlatform maps a GOOS value to a Platform.
func ParsePlatform(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

// CurrentPlatform returns the platform the binary is running on.
func CurrentPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}

func (p Platform) String() string {
	switch p {
	case PlatformDarwin:
		return "darwin"
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// ArtifactNames holds the platform-specific file names of a library and its executable.
type ArtifactNames struct {
	StaticLib  string
	DynamicLib string
	// DynamicLink is empty on Windows, which has no separate link name.
	DynamicLink string
	Executable  string
}

// PlatformArtifactNames returns the artifact file names for base on platform p.
func PlatformArtifactNames(p Platform, base string) (ArtifactNames, error) {
	libname := "lib" + base

	switch p {
	case PlatformDarwin:
		return ArtifactNames{
			StaticLib:   libname + ".a",
			DynamicLib:  libname + ".dylib",
			DynamicLink: libname + ".dylib",
			Executable:  strings.ToLower(base),
		}, nil
	case PlatformLinux:
		return ArtifactNames{
			StaticLib:   libname + ".a",
			DynamicLib:  libname + ".so",
			DynamicLink: libname + ".so",
			Executable:  strings.ToLower(base),
		}, nil
	case PlatformWindows:
		return ArtifactNames{
			StaticLib:  libname + ".lib",
			DynamicLib: libname + ".dll",
			Executable: base + ".exe",
		}, nil
	default:
		return ArtifactNames{}, zerr.With(zerr.Wrap(ErrUnsupportedPlatform, "cannot derive artifact names"), "platform", p.String())
	}
}
