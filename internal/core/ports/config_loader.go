package ports

import "github.com/scribibble/dpnd/internal/core/domain"

// ConfigLoader loads the optional tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd looking for a dpnd.yaml file and returns the
	// parsed settings, or defaults when no file exists.
	Load(cwd string) (*domain.Settings, error)
}
