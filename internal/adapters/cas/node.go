package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
)

// NodeID is the unique identifier for the build history store Graft node.
const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.BuildRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildRecordStore, error) {
			return NewStore(domain.DefaultHistoryPath), nil
		},
	})
}
