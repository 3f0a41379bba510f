package inventory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slink/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/adapters/pluginfs"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/adapters/transient" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
)

// NodeID is the unique identifier for the plugin inventory Graft node.
const NodeID graft.ID = "engine.inventory"

func init() {
	graft.Register(graft.Node[*Inventory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			transient.NodeID,
			pluginfs.NodeID,
		},
		Run: func(ctx context.Context) (*Inventory, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.TransientStore](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[ports.PluginRegistry](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, registry, log, cfg.Site, cfg.PluginTTL), nil
		},
	})
}
