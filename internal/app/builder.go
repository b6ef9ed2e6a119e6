package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.orqa.ch/estim/internal/adapters/config"
	"go.orqa.ch/estim/internal/adapters/logger"
	"go.orqa.ch/estim/internal/core/ports"
)

// Components bundles the fully wired application with the adapters the
// entry point needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.JobLoader](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, log),
				Logger: log,
			}, nil
		},
	})
}
