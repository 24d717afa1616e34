package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/manage/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/manage/internal/adapters/env"    //nolint:depguard // Wired in app layer
	"go.trai.ch/manage/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/manage/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/manage/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/manage/internal/adapters/telemetry/progrock"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/manage/internal/engine/lifecycle"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			config.NodeID,
			lifecycle.NodeID,
			fs.ComparerNodeID,
			logger.NodeID,
			env.NodeID,
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
	sh, err := graft.Dep[ports.Shell](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*lifecycle.Runner](ctx)
	if err != nil {
		return nil, err
	}

	comparer, err := graft.Dep[ports.Comparer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(sh, loader, runner, comparer, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
