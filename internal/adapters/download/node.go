package download

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/manage/internal/adapters/logger"
	"go.trai.ch/manage/internal/core/ports"
)

// NodeID is the unique identifier for the download Graft node.
const NodeID graft.ID = "adapter.download"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(http.DefaultClient, log), nil
		},
	})
}
