package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the graft node providing the backend factory.
const NodeID graft.ID = "adapter.backend_factory"

func init() {
	graft.Register(graft.Node[ports.BackendFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BackendFactory, error) {
			return NewFactory(), nil
		},
	})
}
