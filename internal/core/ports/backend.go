package ports

import "go.trai.ch/kiln/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// ExperimentBackend is the namespaced persistence facility the scheduler reads from and writes to.
type ExperimentBackend interface {
	// AsEnvironment returns a handle scoped to the given namespace.
	// All calls for one block go through its handle.
	AsEnvironment(namespace string) (Environment, error)
	// CanSave reports whether persistence side effects should run.
	// A backend that cannot save is used for dry runs.
	CanSave() bool
	// SaveDataframe stores a run-level artifact under name.
	SaveDataframe(name string, frame *domain.Frame) error
	// Close releases the backend's resources.
	Close() error
}

// Environment is a backend handle scoped to a single namespace.
type Environment interface {
	// Namespace returns the namespace this handle is scoped to.
	Namespace() string
	// Location describes where the namespace is stored, for diagnostics.
	Location() string
	// Has reports whether key exists in the namespace.
	Has(key string) (bool, error)
	// LoadFrame reads the frame stored under key.
	LoadFrame(key string) (*domain.Frame, error)
	// SaveFrame stores frame under key.
	SaveFrame(key string, frame *domain.Frame) error
	// LoadObject decodes the object stored under key into v.
	LoadObject(key string, v any) error
	// SaveObject stores v under key.
	SaveObject(key string, v any) error
	// MarkTime starts a timer for label. The returned function stops it and records the elapsed time.
	MarkTime(label string) func()
}

// BackendFactory opens the experiment backend selected by configuration.
type BackendFactory interface {
	// Open opens the backend. Relative paths are resolved against root.
	Open(cfg domain.BackendConfig, root string) (ExperimentBackend, error)
}
