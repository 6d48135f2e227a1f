package backend

import (
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// None is a backend that stores nothing. Runs against it recompute every block
// and skip all persistence.
type None struct{}

// NewNone returns the dry-run backend.
func NewNone() *None {
	return &None{}
}

// AsEnvironment returns an empty namespace.
func (n *None) AsEnvironment(namespace string) (ports.Environment, error) {
	return noneEnv{namespace: namespace}, nil
}

// CanSave always reports false.
func (n *None) CanSave() bool {
	return false
}

// SaveDataframe discards the frame.
func (n *None) SaveDataframe(string, *domain.Frame) error {
	return nil
}

// Close is a no-op.
func (n *None) Close() error {
	return nil
}

type noneEnv struct {
	namespace string
}

func (e noneEnv) Namespace() string { return e.namespace }

func (e noneEnv) Location() string { return "none://" + e.namespace }

func (e noneEnv) Has(string) (bool, error) { return false, nil }

func (e noneEnv) LoadFrame(key string) (*domain.Frame, error) {
	return nil, e.notFound(key)
}

func (e noneEnv) SaveFrame(string, *domain.Frame) error { return nil }

func (e noneEnv) LoadObject(key string, _ any) error {
	return e.notFound(key)
}

func (e noneEnv) SaveObject(string, any) error { return nil }

func (e noneEnv) MarkTime(string) func() { return func() {} }

func (e noneEnv) notFound(key string) error {
	err := zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "dry-run backend stores nothing"), "namespace", e.namespace)
	return zerr.With(err, "key", key)
}
