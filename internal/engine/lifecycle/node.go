package lifecycle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/manage/internal/adapters/logger"
	"go.trai.ch/manage/internal/adapters/telemetry/progrock"
	"go.trai.ch/manage/internal/core/ports"
)

// NodeID is the unique identifier for the lifecycle runner Graft node.
const NodeID graft.ID = "engine.lifecycle"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(tel, log), nil
		},
	})
}
