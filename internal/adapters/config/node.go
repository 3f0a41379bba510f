package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/slink/internal/core/domain"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*domain.Config, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewLoader().Load(cwd)
		},
	})
}
