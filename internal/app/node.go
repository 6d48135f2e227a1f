package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/backend"             //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/config"              //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/dataset"             //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/digest"              //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/logger"              //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/telemetry"           //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/blocks"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line needs from the dependency graph.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			blocks.NodeID,
			backend.NodeID,
			dataset.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			progrock.NodeID,
			digest.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.BlockFactory](ctx)
	if err != nil {
		return nil, err
	}

	backends, err := graft.Dep[ports.BackendFactory](ctx)
	if err != nil {
		return nil, err
	}

	datasets, err := graft.Dep[ports.DatasetIO](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, factory, backends, datasets, log, tracer, recorder, hasher), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Telemetry: recorder,
	}, nil
}
