package runner

import (
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// plan is the ordered transitive closure of the requested blocks.
type plan struct {
	blocks []ports.Block
	tasks  []*domain.Task
}

// buildPlan collects every requested block and its ancestors, deduplicated by key,
// and orders them so that each block comes after all of its parents.
// Blocks are added to the graph in discovery order (requested blocks first, then
// ancestors breadth-first), which fixes the tie-breaking between unrelated blocks.
func buildPlan(requested []ports.Block) (*plan, error) {
	if len(requested) == 0 {
		return nil, domain.ErrNoBlocks
	}

	byKey := make(map[domain.Key]ports.Block)
	g := domain.NewGraph()

	queue := make([]ports.Block, 0, len(requested))
	for _, b := range requested {
		added, err := addBlock(g, byKey, b)
		if err != nil {
			return nil, err
		}
		if added {
			queue = append(queue, b)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, p := range current.Parents() {
			added, err := addBlock(g, byKey, p)
			if err != nil {
				return nil, err
			}
			if added {
				queue = append(queue, p)
			}
		}
	}

	order, err := g.Sort()
	if err != nil {
		return nil, err
	}

	blocks := make([]ports.Block, len(order))
	for i, n := range order {
		blocks[i] = byKey[n.Key]
	}

	return &plan{blocks: blocks, tasks: domain.NewTasks(order)}, nil
}

// addBlock registers b unless a block with the same key is already known.
// Two distinct blocks sharing a key are rejected.
func addBlock(g *domain.Graph, byKey map[domain.Key]ports.Block, b ports.Block) (bool, error) {
	key := b.Key()
	if existing, ok := byKey[key]; ok {
		if existing != b {
			return false, zerr.With(zerr.Wrap(domain.ErrBlockAlreadyExists, "two blocks share a key"), "block", b.Name())
		}
		return false, nil
	}

	parents := uniqueParents(b)
	keys := make([]domain.Key, len(parents))
	for i, p := range parents {
		keys[i] = p.Key()
	}

	if err := g.AddNode(domain.Node{Key: key, Name: b.Name(), Parents: keys}); err != nil {
		return false, err
	}
	byKey[key] = b
	return true, nil
}

// uniqueParents returns the parents of b in declared order with repeated keys removed.
func uniqueParents(b ports.Block) []ports.Block {
	parents := b.Parents()
	out := make([]ports.Block, 0, len(parents))
	seen := make(map[domain.Key]bool, len(parents))
	for _, p := range parents {
		k := p.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}
