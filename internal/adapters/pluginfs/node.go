package pluginfs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slink/internal/adapters/config"
	"go.trai.ch/slink/internal/adapters/logger"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
)

const NodeID graft.ID = "adapter.pluginfs"

func init() {
	graft.Register(graft.Node[ports.PluginRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PluginRegistry, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(cfg.PluginsDir, cfg.NetworkActive, log), nil
		},
	})
}
