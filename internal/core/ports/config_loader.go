package ports

import "go.trai.ch/freeze/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the resulting build configuration.
	// A missing file yields the defaults.
	Load(path string) (domain.BuildConfig, error)
}
