package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.orqa.ch/estim/internal/adapters/logger"
	"go.orqa.ch/estim/internal/core/ports"
)

// NodeID is the unique identifier for the job loader Graft node.
const NodeID graft.ID = "adapter.job_loader"

func init() {
	graft.Register(graft.Node[ports.JobLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.JobLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
