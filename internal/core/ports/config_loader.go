package ports

import "go.trai.ch/manage/internal/core/domain"

// ConfigLoader defines the interface for loading the project file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file from the given working directory.
	// A missing project file yields a project without dependencies.
	Load(cwd string) (*domain.Project, error)
}
