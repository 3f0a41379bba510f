package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slink/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/adapters/overrides" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/slink/internal/engine/menucache"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			overrides.NodeID,
			menucache.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.OverrideStore](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[*menucache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			detectors := []Detector{
				NewOverrideDetector(store, cfg.Site),
				NewMenuDetector(cache, cfg.SettingsTerms),
			}
			return New(detectors, cfg.LinkSynonyms, log, tracer), nil
		},
	})
}
