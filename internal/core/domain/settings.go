package domain

// DefaultDeploymentTarget is the macOS deployment target used when none is set.
const DefaultDeploymentTarget = "12.6"

// DefaultPython is the interpreter used for extension builds and tests.
const DefaultPython = "python3"

// Settings is the process-wide configuration record. It is built once at start-up
// and passed to the components that need it.
type Settings struct {
	Debug            bool
	Color            bool
	DeploymentTarget string
	Python           string
	Platform         Platform
	// LogJSON selects JSON log lines instead of the pretty handler.
	LogJSON bool
	// Warnings lists problems found while reading the environment.
	Warnings []string
}

// DefaultSettings returns the settings used when no environment overrides are present.
func DefaultSettings() Settings {
	return Settings{
		Debug:    true,
		Color:    true,
		Python:   DefaultPython,
		Platform: CurrentPlatform(),
	}
}
