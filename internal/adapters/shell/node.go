package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/manage/internal/adapters/archive"
	"go.trai.ch/manage/internal/adapters/download"
	"go.trai.ch/manage/internal/adapters/fs"
	"go.trai.ch/manage/internal/adapters/logger"
	"go.trai.ch/manage/internal/core/ports"
)

const (
	// ExecutorNodeID is the unique identifier for the executor Graft node.
	ExecutorNodeID graft.ID = "adapter.executor"
	// NodeID is the unique identifier for the shell façade Graft node.
	NodeID graft.ID = "adapter.shell"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        ExecutorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})

	graft.Register(graft.Node[ports.Shell]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			ExecutorNodeID,
			download.NodeID,
			archive.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Shell, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			extractor, err := graft.Dep[ports.Extractor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys, executor, fetcher, extractor, log), nil
		},
	})
}
