package runner

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// sourceAssembler builds a block's input from the root dataset or its parents' outputs.
type sourceAssembler struct {
	backend     ports.ExperimentBackend
	phase       domain.Phase
	root        *domain.Frame
	concurrency int

	// cache maps a runtime env to the output produced in this run.
	cache map[string]*domain.Frame
	// pending counts the children of a runtime env that have not assembled their input yet.
	pending map[string]int
}

func newSourceAssembler(
	backend ports.ExperimentBackend,
	phase domain.Phase,
	root *domain.Frame,
	blocks []ports.Block,
	concurrency int,
) *sourceAssembler {
	pending := make(map[string]int)
	for _, b := range blocks {
		for _, p := range uniqueParents(b) {
			pending[p.RuntimeEnv()]++
		}
	}
	return &sourceAssembler{
		backend:     backend,
		phase:       phase,
		root:        root,
		concurrency: concurrency,
		cache:       make(map[string]*domain.Frame),
		pending:     pending,
	}
}

// store keeps a finished block's output for its children.
// Outputs nobody consumes are not retained.
func (a *sourceAssembler) store(b ports.Block, out *domain.Frame) {
	if a.pending[b.RuntimeEnv()] > 0 {
		a.cache[b.RuntimeEnv()] = out
	}
}

// release drops the cached outputs of b's parents once their last child has consumed them.
func (a *sourceAssembler) release(b ports.Block) {
	for _, p := range uniqueParents(b) {
		env := p.RuntimeEnv()
		a.pending[env]--
		if a.pending[env] <= 0 {
			delete(a.cache, env)
		}
	}
}

// reset discards every cached output.
func (a *sourceAssembler) reset() {
	clear(a.cache)
}

// assemble returns the input of b. A block without parents reads the root dataset.
// Otherwise each parent's output is taken from the run cache or loaded from the
// backend, prefixed with the parent's name, and concatenated in declared order.
func (a *sourceAssembler) assemble(ctx context.Context, b ports.Block) (*domain.Frame, error) {
	parents := uniqueParents(b)
	if len(parents) == 0 {
		return a.root, nil
	}

	frames := make([]*domain.Frame, len(parents))
	var missing []int
	for i, p := range parents {
		if out, ok := a.cache[p.RuntimeEnv()]; ok {
			frames[i] = out
			continue
		}
		missing = append(missing, i)
	}

	if len(missing) > 0 {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(a.concurrency)
		for _, i := range missing {
			p := parents[i]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				out, err := a.load(b, p)
				if err != nil {
					return err
				}
				frames[i] = out
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	prefixed := make([]*domain.Frame, len(parents))
	for i, p := range parents {
		if frames[i].Rows() != a.root.Rows() {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidBlockOutput, "parent output row count differs from the dataset"), "block", b.Name())
			err = zerr.With(err, "parent", p.Name())
			err = zerr.With(err, "rows", frames[i].Rows())
			return nil, zerr.With(err, "expected_rows", a.root.Rows())
		}
		prefixed[i] = frames[i].WithPrefix(p.Name())
	}

	input, err := domain.Concat(prefixed...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to assemble block input"), "block", b.Name())
	}
	return input, nil
}

// load reads a parent's persisted output for the current phase.
func (a *sourceAssembler) load(b, parent ports.Block) (*domain.Frame, error) {
	key := a.phase.StorageKey()

	env, err := a.backend.AsEnvironment(parent.RuntimeEnv())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open parent namespace"), "parent", parent.Name())
	}

	ok, err := env.Has(key)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to look up parent output"), "parent", parent.Name())
	}
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrMissingUpstreamOutput, "parent output is neither cached nor persisted"), "block", b.Name())
		err = zerr.With(err, "parent", parent.Name())
		err = zerr.With(err, "namespace", env.Location())
		return nil, zerr.With(err, "storage_key", key)
	}

	out, err := parent.LoadOutput(key, env, a.phase.IsFit())
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to load parent output"), "parent", parent.Name())
		return nil, zerr.With(err, "storage_key", key)
	}
	if out == nil {
		err := zerr.With(zerr.Wrap(domain.ErrMissingUpstreamOutput, "parent returned no output"), "block", b.Name())
		return nil, zerr.With(err, "parent", parent.Name())
	}
	return out, nil
}
