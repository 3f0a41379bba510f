package ports

import "go.trai.ch/slink/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration starting from the given working
	// directory, walking upward until a configuration file is found.
	Load(cwd string) (*domain.Config, error)
}
