package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the telemetry adapter node.
	NodeID graft.ID = "adapter.telemetry"
	// RunLogNodeID is the unique identifier for the run log store node.
	RunLogNodeID graft.ID = "adapter.runlog"
)

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return New(domain.DefaultRunLogDir), nil
		},
	})

	graft.Register(graft.Node[ports.RunLogStore]{
		ID:        RunLogNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RunLogStore, error) {
			return NewJournalStore(domain.DefaultRunLogDir), nil
		},
	})
}
