package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/manage/internal/adapters/env"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log := New(WithDebug(settings.Debug), WithColor(settings.Color), WithJSON(settings.LogJSON))
			for _, w := range settings.Warnings {
				log.Warn(w)
			}
			return log, nil
		},
	})
}
