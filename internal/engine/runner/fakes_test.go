package runner_test

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

const modelKey = "model"

// journal records the order in which blocks were fitted or transformed.
type journal struct {
	mu    sync.Mutex
	calls []string
}

func (j *journal) add(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = append(j.calls, name)
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.calls)
}

// fakeBlock outputs one column, named after the block unless outCol is set,
// holding the row sums of its input plus one.
type fakeBlock struct {
	name      string
	env       string
	outCol    string
	parents   []ports.Block
	estimator bool
	journal   *journal

	// rowsDelta changes the output row count to simulate a broken block.
	rowsDelta int

	fitted         bool
	fitCalls       int
	transformCalls int
	loadCalls      int
	lastInput      *domain.Frame
}

func newBlock(j *journal, name string, parents ...ports.Block) *fakeBlock {
	return &fakeBlock{name: name, parents: parents, journal: j}
}

func newEstimator(j *journal, name string, parents ...ports.Block) *fakeBlock {
	b := newBlock(j, name, parents...)
	b.estimator = true
	return b
}

func (b *fakeBlock) Name() string      { return b.name }
func (b *fakeBlock) Key() domain.Key   { return domain.NewKey(b.name) }
func (b *fakeBlock) IsEstimator() bool { return b.estimator }

func (b *fakeBlock) Parents() []ports.Block {
	return b.parents
}

func (b *fakeBlock) RuntimeEnv() string {
	if b.env != "" {
		return b.env
	}
	return b.name + "-env"
}

func (b *fakeBlock) compute(input *domain.Frame) (*domain.Frame, error) {
	rows := input.Rows() + b.rowsDelta
	values := make([]float64, max(rows, 0))
	for i := range values {
		if i < input.Rows() {
			for _, v := range input.Row(i) {
				values[i] += v
			}
		}
		values[i]++
	}
	col := b.outCol
	if col == "" {
		col = b.name
	}
	return domain.NewFrame(domain.Column{Name: col, Values: values})
}

func (b *fakeBlock) Fit(_ context.Context, input *domain.Frame, _ domain.Labels, _ ports.Environment) (*domain.Frame, error) {
	b.fitCalls++
	b.lastInput = input
	b.journal.add(b.name)
	b.fitted = true
	return b.compute(input)
}

func (b *fakeBlock) Transform(_ context.Context, input *domain.Frame) (*domain.Frame, error) {
	b.transformCalls++
	b.lastInput = input
	b.journal.add(b.name)
	return b.compute(input)
}

func (b *fakeBlock) CheckIsFitted(env ports.Environment) bool {
	if b.fitted {
		return true
	}
	ok, _ := env.Has(modelKey)
	return ok
}

func (b *fakeBlock) Report(context.Context, *domain.Frame, domain.Labels, *domain.Frame, ports.Environment) error {
	return nil
}

func (b *fakeBlock) Frozen(env ports.Environment) error {
	return env.SaveObject(modelKey, map[string]bool{"fitted": true})
}

func (b *fakeBlock) ClearFitCache() {}

func (b *fakeBlock) Unzip(env ports.Environment) error {
	ok, err := env.Has(modelKey)
	if err != nil {
		return err
	}
	if ok {
		b.fitted = true
	}
	return nil
}

func (b *fakeBlock) LoadOutput(key string, env ports.Environment, _ bool) (*domain.Frame, error) {
	b.loadCalls++
	return env.LoadFrame(key)
}

// memBackend is an in-memory ExperimentBackend storing JSON documents.
type memBackend struct {
	mu        sync.Mutex
	readOnly  bool
	objects   map[string]map[string][]byte
	artifacts map[string]*domain.Frame
	writes    int
}

func newMemBackend() *memBackend {
	return &memBackend{
		objects:   make(map[string]map[string][]byte),
		artifacts: make(map[string]*domain.Frame),
	}
}

func (m *memBackend) AsEnvironment(namespace string) (ports.Environment, error) {
	return &memEnv{backend: m, namespace: namespace}, nil
}

func (m *memBackend) CanSave() bool { return !m.readOnly }

func (m *memBackend) SaveDataframe(name string, frame *domain.Frame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	m.artifacts[name] = frame
	return nil
}

func (m *memBackend) Close() error { return nil }

func (m *memBackend) delete(namespace, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects[namespace], key)
}

func (m *memBackend) keys(namespace string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.objects[namespace]))
}

func (m *memBackend) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

type memEnv struct {
	backend   *memBackend
	namespace string
}

func (e *memEnv) Namespace() string { return e.namespace }
func (e *memEnv) Location() string  { return "mem://" + e.namespace }

func (e *memEnv) Has(key string) (bool, error) {
	e.backend.mu.Lock()
	defer e.backend.mu.Unlock()
	_, ok := e.backend.objects[e.namespace][key]
	return ok, nil
}

func (e *memEnv) LoadFrame(key string) (*domain.Frame, error) {
	var f domain.Frame
	if err := e.LoadObject(key, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (e *memEnv) SaveFrame(key string, frame *domain.Frame) error {
	return e.SaveObject(key, frame)
}

func (e *memEnv) LoadObject(key string, v any) error {
	e.backend.mu.Lock()
	data, ok := e.backend.objects[e.namespace][key]
	e.backend.mu.Unlock()
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "object missing"), "key", key)
	}
	return json.Unmarshal(data, v)
}

func (e *memEnv) SaveObject(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e.backend.mu.Lock()
	defer e.backend.mu.Unlock()
	if e.backend.objects[e.namespace] == nil {
		e.backend.objects[e.namespace] = make(map[string][]byte)
	}
	e.backend.objects[e.namespace][key] = data
	e.backend.writes++
	return nil
}

func (e *memEnv) MarkTime(string) func() { return func() {} }

// recordingLogger keeps every message logged at info level.
type recordingLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(error)          {}

func (l *recordingLogger) Info(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		msg += fmt.Sprint(args...)
	}
	l.infos = append(l.infos, msg)
}

// lastStatus returns the status lines of the last rendered task table.
func (l *recordingLogger) lastStatus(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.infos[len(l.infos)-n:])
}

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, msg := range l.infos {
		if len(msg) >= len(substr) && containsString(msg, substr) {
			return true
		}
	}
	return false
}

func containsString(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func dataset(t *testing.T) *domain.Frame {
	t.Helper()
	f, err := domain.NewFrame(
		domain.Column{Name: "a", Values: []float64{1, 2, 3, 4}},
		domain.Column{Name: "b", Values: []float64{0, 1, 0, 1}},
	)
	require.NoError(t, err)
	return f
}

func labels() domain.Labels {
	return domain.Labels{0, 1, 0, 1}
}
