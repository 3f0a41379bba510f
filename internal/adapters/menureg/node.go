package menureg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slink/internal/adapters/config"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
)

const NodeID graft.ID = "adapter.menureg"

func init() {
	graft.Register(graft.Node[ports.MenuRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.MenuRegistry, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(cfg.MenusExport), nil
		},
	})
}
