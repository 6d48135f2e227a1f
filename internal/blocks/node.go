package blocks

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/digest"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the graft node providing the block factory.
const NodeID graft.ID = "blocks.factory"

func init() {
	graft.Register(graft.Node[ports.BlockFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{digest.NodeID},
		Run: func(ctx context.Context) (ports.BlockFactory, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(hasher), nil
		},
	})
}
