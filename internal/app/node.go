package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slink/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/slink/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/slink/internal/adapters/overrides" //nolint:depguard // Wired in app layer
	"go.trai.ch/slink/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/slink/internal/adapters/transient" //nolint:depguard // Wired in app layer
	"go.trai.ch/slink/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/slink/internal/engine/inventory"
	"go.trai.ch/slink/internal/engine/menucache"
	"go.trai.ch/slink/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			overrides.NodeID,
			telemetry.TracerNodeID,
			transient.NodeID,
			watcher.NodeID,
			inventory.NodeID,
			menucache.NodeID,
			resolver.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	inv, err := graft.Dep[*inventory.Inventory](ctx)
	if err != nil {
		return nil, err
	}

	menus, err := graft.Dep[*menucache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	overrideStore, err := graft.Dep[ports.OverrideStore](ctx)
	if err != nil {
		return nil, err
	}

	events, err := graft.Dep[ports.EventSource](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.TransientStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	if cfg.Verbose {
		if v, ok := log.(interface{ SetVerbose(bool) }); ok {
			v.SetVerbose(true)
		}
	}

	return New(cfg, inv, menus, res, overrideStore, events, store, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
