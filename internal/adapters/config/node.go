package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/manage/internal/adapters/env"
	"go.trai.ch/manage/internal/adapters/logger"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
)

// NodeID is the unique identifier for the project file loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, env.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, settings.Python), nil
		},
	})
}
