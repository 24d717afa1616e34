// Package config loads the optional project file describing the dependencies to build.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/manage/internal/build"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for manage.yaml and manage.toml.
type Loader struct {
	Logger      ports.Logger
	Python      string
	// ToolVersion is checked against the project file's requires field.
	ToolVersion string
	validate    *validator.Validate
}

// NewLoader creates a new Loader. python is the interpreter used by the default
// extension build command.
func NewLoader(logger ports.Logger, python string) *Loader {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
		return semver.IsValid(canonical(fl.Field().String()))
	})
	return &Loader{Logger: logger, Python: python, ToolVersion: build.Version, validate: v}
}

// canonical prefixes v to version so that "1.2.0" and "v1.2.0" both parse.
func canonical(version string) string {
	if version == "" || strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// Load reads the project file in cwd. Without a project file the project has no
// dependencies and uses the default extension command.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	path, ok := l.findProjectfile(cwd)
	if !ok {
		l.Logger.Debug("no project file in " + cwd)
		return domain.NewProject(l.Python), nil
	}

	pf, err := readProjectfile(path)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	normalize(pf)

	if err := l.validateProjectfile(pf); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return toProject(pf, l.Python), nil
}

func (l *Loader) findProjectfile(cwd string) (string, bool) {
	yamlPath := filepath.Join(cwd, YAMLFileName)
	tomlPath := filepath.Join(cwd, TOMLFileName)

	_, yamlErr := os.Stat(yamlPath)
	_, tomlErr := os.Stat(tomlPath)

	switch {
	case yamlErr == nil && tomlErr == nil:
		l.Logger.Warn(fmt.Sprintf("both %s and %s found, using %s", YAMLFileName, TOMLFileName, YAMLFileName))
		return yamlPath, true
	case yamlErr == nil:
		return yamlPath, true
	case tomlErr == nil:
		return tomlPath, true
	default:
		return "", false
	}
}

func readProjectfile(path string) (*Projectfile, error) {
	// #nosec G304 -- path is built from the working directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var pf Projectfile
	if filepath.Ext(path) == ".toml" {
		err = toml.Unmarshal(data, &pf)
	} else {
		err = yaml.Unmarshal(data, &pf)
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return &pf, nil
}

func normalize(pf *Projectfile) {
	for i := range pf.Dependencies {
		if pf.Dependencies[i].Kind == "" {
			pf.Dependencies[i].Kind = string(domain.KindGit)
		}
	}
}

func (l *Loader) validateProjectfile(pf *Projectfile) error {
	if err := l.validate.Struct(pf); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			field := fieldPath(fe.Namespace())
			return zerr.With(zerr.Wrap(errors.New(field+" "+describe(fe)), domain.ErrConfigInvalid.Error()), "field", field)
		}
		return zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}

	if pf.Requires != "" && l.ToolVersion != "" && semver.Compare(canonical(l.ToolVersion), canonical(pf.Requires)) < 0 {
		err := zerr.Wrap(errors.New("requires manage "+pf.Requires+" or newer, running "+l.ToolVersion), domain.ErrConfigInvalid.Error())
		return zerr.With(zerr.With(err, "field", "requires"), "version", l.ToolVersion)
	}

	declared := make(map[string]bool, len(pf.Dependencies))
	for _, d := range pf.Dependencies {
		declared[d.Name] = true
	}
	for _, d := range pf.Dependencies {
		for _, dep := range d.DependsOn {
			if !declared[dep] {
				err := zerr.Wrap(domain.ErrMissingDependency, "invalid depends_on")
				return zerr.With(zerr.With(err, "dependency", d.Name), "missing_dependency", dep)
			}
		}
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		kind := strings.TrimPrefix(fe.Param(), "Kind ")
		return "is required for " + kind + " dependencies"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "unique":
		return "must have unique " + strings.ToLower(fe.Param()) + "s"
	case "excludesall":
		return "must not contain spaces or slashes"
	case "semver":
		return "must be a semantic version"
	default:
		return "failed the '" + fe.Tag() + "' rule"
	}
}

func toProject(pf *Projectfile, python string) *domain.Project {
	p := domain.NewProject(python)
	p.Version = pf.Version
	p.Description = pf.Description
	if pf.Tests != "" {
		p.Tests = pf.Tests
	}
	if len(pf.Extension.Cmd) > 0 {
		p.Extension.Cmd = pf.Extension.Cmd
	}
	p.Extension.Env = pf.Extension.Env
	p.Prerequisites = domain.Prerequisites{
		Pip:          pf.Prerequisites.Pip,
		Requirements: pf.Prerequisites.Requirements,
		Apt:          pf.Prerequisites.Apt,
		Brew:         pf.Prerequisites.Brew,
		Upgrade:      pf.Prerequisites.Upgrade,
	}

	for _, dto := range pf.Dependencies {
		d := domain.NewDescriptor(dto.Name, dto.Version)
		d.Kind = domain.Kind(dto.Kind)
		d.RepoURL = dto.RepoURL
		d.DownloadURLTemplate = dto.DownloadURL
		d.StaticLibs = dto.StaticLibs
		d.DependsOn = dto.DependsOn
		d.Recurse = dto.Recurse
		d.Release = dto.Release
		d.CMake = dto.CMake
		d.Preload = dto.Preload
		p.Dependencies = append(p.Dependencies, d)
	}
	return p
}
