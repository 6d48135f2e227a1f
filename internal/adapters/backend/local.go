// Package backend implements the experiment backends: a directory tree, a sqlite
// database and a no-op backend for dry runs.
package backend

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

const objectExt = ".json"

// Local stores every namespace as a directory of JSON documents under root.
// Run-level artifacts live in the _artifacts directory next to the namespaces.
type Local struct {
	root string
	// mu serializes writes; parents may be loaded concurrently.
	mu sync.RWMutex
}

// NewLocal creates a local backend rooted at path. The directory is created on
// the first write, so reads against a missing root find nothing.
func NewLocal(path string) (*Local, error) {
	root := filepath.Clean(path)
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, "not a directory"), "path", root)
	}
	return &Local{root: root}, nil
}

// Root returns the directory holding the namespaces.
func (l *Local) Root() string {
	return l.root
}

// AsEnvironment returns the handle of a namespace directory.
func (l *Local) AsEnvironment(namespace string) (ports.Environment, error) {
	if err := validateName(namespace); err != nil {
		return nil, err
	}
	return &localEnv{backend: l, namespace: namespace, dir: filepath.Join(l.root, namespace)}, nil
}

// CanSave always reports true.
func (l *Local) CanSave() bool {
	return true
}

// SaveDataframe writes frame to _artifacts/<name>.json.
func (l *Local) SaveDataframe(name string, frame *domain.Frame) error {
	if err := validateName(name); err != nil {
		return err
	}
	return l.write(filepath.Join(l.root, domain.ArtifactsDirName, name+objectExt), frame)
}

// LoadDataframe reads an artifact saved by SaveDataframe.
func (l *Local) LoadDataframe(name string) (*domain.Frame, error) {
	var f domain.Frame
	if err := l.read(filepath.Join(l.root, domain.ArtifactsDirName, name+objectExt), &f); err != nil {
		return nil, zerr.With(err, "artifact", name)
	}
	return &f, nil
}

// Close is a no-op.
func (l *Local) Close() error {
	return nil
}

func (l *Local) read(path string, v any) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	//nolint:gosec // Path is built from validated names under the backend root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "no such object"), "path", path)
		}
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", path)
	}
	return nil
}

func (l *Local) write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error()), "path", path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", filepath.Dir(path))
	}
	//nolint:gosec // Path is built from validated names under the backend root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}
	return nil
}

type localEnv struct {
	backend   *Local
	namespace string
	dir       string
}

func (e *localEnv) Namespace() string {
	return e.namespace
}

func (e *localEnv) Location() string {
	return e.dir
}

func (e *localEnv) path(key string) string {
	return filepath.Join(e.dir, key+objectExt)
}

func (e *localEnv) Has(key string) (bool, error) {
	if err := validateName(key); err != nil {
		return false, err
	}
	e.backend.mu.RLock()
	defer e.backend.mu.RUnlock()

	_, err := os.Stat(e.path(key))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", e.path(key))
}

func (e *localEnv) LoadFrame(key string) (*domain.Frame, error) {
	var f domain.Frame
	if err := e.LoadObject(key, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (e *localEnv) SaveFrame(key string, frame *domain.Frame) error {
	return e.SaveObject(key, frame)
}

func (e *localEnv) LoadObject(key string, v any) error {
	if err := validateName(key); err != nil {
		return err
	}
	if err := e.backend.read(e.path(key), v); err != nil {
		return zerr.With(zerr.With(err, "namespace", e.namespace), "key", key)
	}
	return nil
}

func (e *localEnv) SaveObject(key string, v any) error {
	if err := validateName(key); err != nil {
		return err
	}
	if err := e.backend.write(e.path(key), v); err != nil {
		return zerr.With(zerr.With(err, "namespace", e.namespace), "key", key)
	}
	return nil
}

func (e *localEnv) MarkTime(label string) func() {
	return markTime(e, label)
}

// validateName rejects names that would escape the backend root.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidObjectName, "name would escape the backend root"), "name", name)
	}
	return nil
}
