package ports

import (
	"context"

	"go.trai.ch/slink/internal/core/domain"
)

// PluginRegistry enumerates the host's installed plugins.
//
//go:generate mockgen -source=plugin_registry.go -destination=mocks/mock_plugin_registry.go -package=mocks
type PluginRegistry interface {
	// Installed returns all installed plugins keyed by basename. The
	// enumeration is expensive; callers should go through the inventory
	// cache instead of calling this directly.
	Installed(ctx context.Context) (map[string]domain.PluginRecord, error)

	// NetworkActive returns the basenames of network-activated plugins.
	NetworkActive() []string

	// Describe reads the metadata of a single plugin.
	Describe(ctx context.Context, basename string) (domain.PluginRecord, error)
}
