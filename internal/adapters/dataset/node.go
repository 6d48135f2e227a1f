package dataset

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the graft node providing dataset IO.
const NodeID graft.ID = "adapter.dataset_io"

func init() {
	graft.Register(graft.Node[ports.DatasetIO]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DatasetIO, error) {
			return NewCSV(), nil
		},
	})
}
