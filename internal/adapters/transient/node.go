package transient

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slink/internal/adapters/config"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
)

// NodeID is the unique identifier for the transient store Graft node.
const NodeID graft.ID = "adapter.transient"

func init() {
	graft.Register(graft.Node[ports.TransientStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.TransientStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			if cfg.CacheBackend == domain.CacheBackendRedis {
				return NewRedis(ctx, cfg.Redis)
			}
			return NewMemory(), nil
		},
	})
}
