package config

const (
	// YAMLFileName is the YAML project file looked up in the working directory.
	YAMLFileName = "manage.yaml"
	// TOMLFileName is the TOML project file looked up in the working directory.
	TOMLFileName = "manage.toml"
)

// Projectfile represents the structure of the project file.
type Projectfile struct {
	Version       string           `yaml:"version" toml:"version"`
	Description   string           `yaml:"description" toml:"description"`
	Requires      string           `yaml:"requires" toml:"requires" validate:"omitempty,semver"`
	Tests         string           `yaml:"tests" toml:"tests"`
	Prerequisites PrerequisitesDTO `yaml:"prerequisites" toml:"prerequisites"`
	Extension     ExtensionDTO     `yaml:"extension" toml:"extension"`
	Dependencies  []DependencyDTO  `yaml:"dependencies" toml:"dependencies" validate:"unique=Name,dive"`
}

// PrerequisitesDTO lists the system and python packages installed by setup.
type PrerequisitesDTO struct {
	Pip          []string `yaml:"pip" toml:"pip" validate:"dive,required"`
	Requirements string   `yaml:"requirements" toml:"requirements"`
	Apt          []string `yaml:"apt" toml:"apt" validate:"dive,required"`
	Brew         []string `yaml:"brew" toml:"brew" validate:"dive,required"`
	Upgrade      bool     `yaml:"upgrade" toml:"upgrade"`
}

// ExtensionDTO represents the native extension build step.
type ExtensionDTO struct {
	Cmd []string          `yaml:"cmd" toml:"cmd" validate:"omitempty,dive,required"`
	Env map[string]string `yaml:"env" toml:"env"`
}

// DependencyDTO represents one third-party library in the project file.
type DependencyDTO struct {
	Name        string            `yaml:"name" toml:"name" validate:"required,excludesall= /\\"`
	Version     string            `yaml:"version" toml:"version"`
	Kind        string            `yaml:"kind" toml:"kind" validate:"oneof=git archive"`
	RepoURL     string            `yaml:"repo_url" toml:"repo_url" validate:"required_if=Kind git"`
	DownloadURL string            `yaml:"download_url" toml:"download_url" validate:"required_if=Kind archive"`
	StaticLibs  []string          `yaml:"static_libs" toml:"static_libs"`
	DependsOn   []string          `yaml:"depends_on" toml:"depends_on"`
	Recurse     bool              `yaml:"recurse" toml:"recurse"`
	Release     bool              `yaml:"release" toml:"release"`
	CMake       map[string]string `yaml:"cmake" toml:"cmake"`
	Preload     []string          `yaml:"preload" toml:"preload"`
}
