package blocks

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Block kinds accepted in the pipeline configuration.
const (
	KindPassthrough    = "passthrough"
	KindStandardScaler = "standard_scaler"
	KindRidge          = "ridge"
	KindLogistic       = "logistic"
)

// runtimeEnvHashLen is the number of hex digits of the configuration hash kept in a runtime env.
const runtimeEnvHashLen = 8

var _ ports.BlockFactory = (*Factory)(nil)

// block is a built-in block whose graph position is set by the factory.
type block interface {
	ports.Block
	setParents(parents []ports.Block)
	setRuntimeEnv(env string)
}

type constructor struct {
	params map[string]float64
	build  func(spec domain.BlockSpec) (block, error)
}

var constructors = map[string]constructor{
	KindPassthrough: {
		build: func(spec domain.BlockSpec) (block, error) {
			return NewPassthrough(spec.Name), nil
		},
	},
	KindStandardScaler: {
		build: func(spec domain.BlockSpec) (block, error) {
			return NewStandardScaler(spec.Name), nil
		},
	},
	KindRidge: {
		params: map[string]float64{"alpha": 1, "folds": 5},
		build: func(spec domain.BlockSpec) (block, error) {
			folds, err := intParam(spec, "folds", 5)
			if err != nil {
				return nil, err
			}
			r, err := NewRidge(spec.Name, spec.Param("alpha", 1), folds)
			if err != nil {
				return nil, err
			}
			r.Use(ImportanceReporter{})
			return r, nil
		},
	},
	KindLogistic: {
		params: map[string]float64{
			"folds": 5, "learning_rate": 0.1, "epochs": 200, "l2": 0, "patience": 10, "min_delta": 1e-4,
		},
		build: func(spec domain.BlockSpec) (block, error) {
			folds, err := intParam(spec, "folds", 5)
			if err != nil {
				return nil, err
			}
			epochs, err := intParam(spec, "epochs", 200)
			if err != nil {
				return nil, err
			}
			patience, err := intParam(spec, "patience", 10)
			if err != nil {
				return nil, err
			}

			// A patience of zero trains for every epoch.
			var stopping *EarlyStopping
			var stopper Stopper
			if patience > 0 {
				stopping = NewEarlyStopping(patience, spec.Param("min_delta", 1e-4))
				stopper = stopping
			}

			l, err := NewLogistic(spec.Name, LogisticParams{
				Folds:        folds,
				LearningRate: spec.Param("learning_rate", 0.1),
				Epochs:       epochs,
				L2:           spec.Param("l2", 0),
			}, stopper)
			if err != nil {
				return nil, err
			}
			l.Use(ImportanceReporter{})
			if stopping != nil {
				l.Use(stopping)
			}
			return l, nil
		},
	},
}

// Kinds returns the supported block kinds, sorted.
func Kinds() []string {
	return slices.Sorted(maps.Keys(constructors))
}

// Factory builds the blocks of a pipeline.
type Factory struct {
	hasher ports.Hasher
}

// NewFactory creates a Factory deriving runtime envs with hasher.
func NewFactory(hasher ports.Hasher) *Factory {
	return &Factory{hasher: hasher}
}

// Build constructs every declared block and links it to its parents.
//
// The runtime env of a block is its name followed by a hash of its kind, its
// parameters and the runtime envs of its parents, so changing the configuration
// of a block moves it and every descendant to a fresh namespace.
func (f *Factory) Build(p *domain.Pipeline) ([]ports.Block, error) {
	byName := make(map[string]block, len(p.Blocks))
	built := make([]block, 0, len(p.Blocks))

	for _, spec := range p.Blocks {
		if _, exists := byName[spec.Name]; exists {
			return nil, zerr.With(zerr.Wrap(domain.ErrBlockAlreadyExists, "block declared twice"), "block", spec.Name)
		}
		c, ok := constructors[spec.Kind]
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnknownBlockKind, "no such block kind"), "block", spec.Name)
			return nil, zerr.With(err, "kind", spec.Kind)
		}
		if err := checkParams(spec, c.params); err != nil {
			return nil, err
		}
		b, err := c.build(spec)
		if err != nil {
			return nil, err
		}
		byName[spec.Name] = b
		built = append(built, b)
	}

	g := domain.NewGraph()
	out := make([]ports.Block, len(built))
	for i, spec := range p.Blocks {
		parents := make([]ports.Block, len(spec.Parents))
		for j, name := range spec.Parents {
			parent, ok := byName[name]
			if !ok {
				err := zerr.With(zerr.Wrap(domain.ErrMissingDependency, "parent block is not declared"), "block", spec.Name)
				return nil, zerr.With(err, "missing_dependency", name)
			}
			parents[j] = parent
		}
		built[i].setParents(parents)
		out[i] = built[i]
		if err := g.AddNode(domain.Node{Key: domain.NewKey(spec.Name), Name: spec.Name, Parents: domain.NewKeys(spec.Parents)}); err != nil {
			return nil, err
		}
	}

	order, err := g.Sort()
	if err != nil {
		return nil, err
	}
	specs := make(map[string]domain.BlockSpec, len(p.Blocks))
	for _, spec := range p.Blocks {
		specs[spec.Name] = spec
	}
	// Parents come first in order, so their runtime envs are final when a child hashes them.
	for _, n := range order {
		b := byName[n.Name]
		b.setRuntimeEnv(f.runtimeEnv(specs[n.Name], b.Parents()))
	}
	return out, nil
}

func (f *Factory) runtimeEnv(spec domain.BlockSpec, parents []ports.Block) string {
	parts := []string{spec.Kind}
	for _, k := range slices.Sorted(maps.Keys(spec.Params)) {
		parts = append(parts, k+"="+strconv.FormatFloat(spec.Params[k], 'g', -1, 64))
	}
	parts = append(parts, "parents")
	for _, parent := range parents {
		parts = append(parts, parent.RuntimeEnv())
	}

	sum := f.hasher.HashStrings(parts...)
	if len(sum) > runtimeEnvHashLen {
		sum = sum[:runtimeEnvHashLen]
	}
	return spec.Name + "-" + sum
}

func checkParams(spec domain.BlockSpec, known map[string]float64) error {
	for _, k := range slices.Sorted(maps.Keys(spec.Params)) {
		if _, ok := known[k]; !ok {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidParam, "unknown parameter"), "block", spec.Name)
			err = zerr.With(err, "kind", spec.Kind)
			return zerr.With(err, "param", k)
		}
	}
	return nil
}

func intParam(spec domain.BlockSpec, name string, def int) (int, error) {
	v := spec.Param(name, float64(def))
	if v != math.Trunc(v) {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidParam, "parameter must be a whole number"), "block", spec.Name)
		err = zerr.With(err, "param", name)
		return 0, zerr.With(err, "value", v)
	}
	return int(v), nil
}
