package menucache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slink/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/adapters/menureg"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/adapters/transient" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
)

// NodeID is the unique identifier for the menu cache Graft node.
const NodeID graft.ID = "engine.menucache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			transient.NodeID,
			menureg.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
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

			registry, err := graft.Dep[ports.MenuRegistry](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, registry, log, cfg.Site, cfg.MenuTTL), nil
		},
	})
}
