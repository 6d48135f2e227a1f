package backend

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

//go:embed migrations.sql
var migrationsFS embed.FS

// SQLite stores namespaces as rows of a single database file.
type SQLite struct {
	path string
	db   *sql.DB
}

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLite, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", path)
	}
	// A single connection serializes writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")
	_, _ = db.Exec("PRAGMA busy_timeout = 5000")

	s := &SQLite{path: path, db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return zerr.Wrap(err, "failed to read schema")
	}
	if _, err := s.db.Exec(string(schema)); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", s.path)
	}
	return nil
}

// AsEnvironment returns the handle of a namespace.
func (s *SQLite) AsEnvironment(namespace string) (ports.Environment, error) {
	if namespace == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidObjectName, "empty namespace"), "path", s.path)
	}
	return &sqliteEnv{backend: s, namespace: namespace}, nil
}

// CanSave always reports true.
func (s *SQLite) CanSave() bool {
	return true
}

// SaveDataframe upserts frame into the artifacts table.
func (s *SQLite) SaveDataframe(name string, frame *domain.Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error()), "artifact", name)
	}
	_, err = s.db.Exec(
		`INSERT INTO artifacts(name, payload, updated_at) VALUES(?,?,?)
		 ON CONFLICT(name) DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at`,
		name, payload, now().UnixMilli(),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "artifact", name)
	}
	return nil
}

// LoadDataframe reads an artifact saved by SaveDataframe.
func (s *SQLite) LoadDataframe(name string) (*domain.Frame, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM artifacts WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "no such artifact"), "artifact", name)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "artifact", name)
	}
	var f domain.Frame
	if err := json.Unmarshal(payload, &f); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "artifact", name)
	}
	return &f, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type sqliteEnv struct {
	backend   *SQLite
	namespace string
}

func (e *sqliteEnv) Namespace() string {
	return e.namespace
}

func (e *sqliteEnv) Location() string {
	return e.backend.path + "#" + e.namespace
}

func (e *sqliteEnv) Has(key string) (bool, error) {
	var n int
	err := e.backend.db.QueryRow(
		`SELECT COUNT(1) FROM objects WHERE namespace = ? AND key = ?`, e.namespace, key,
	).Scan(&n)
	if err != nil {
		return false, e.wrap(domain.ErrStoreReadFailed, err, key)
	}
	return n > 0, nil
}

func (e *sqliteEnv) LoadFrame(key string) (*domain.Frame, error) {
	var f domain.Frame
	if err := e.LoadObject(key, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (e *sqliteEnv) SaveFrame(key string, frame *domain.Frame) error {
	return e.SaveObject(key, frame)
}

func (e *sqliteEnv) LoadObject(key string, v any) error {
	var payload []byte
	err := e.backend.db.QueryRow(
		`SELECT payload FROM objects WHERE namespace = ? AND key = ?`, e.namespace, key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return e.wrap(domain.ErrObjectNotFound, errors.New("no such object"), key)
	}
	if err != nil {
		return e.wrap(domain.ErrStoreReadFailed, err, key)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return e.wrap(domain.ErrStoreUnmarshalFailed, err, key)
	}
	return nil
}

func (e *sqliteEnv) SaveObject(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return e.wrap(domain.ErrStoreMarshalFailed, err, key)
	}
	_, err = e.backend.db.Exec(
		`INSERT INTO objects(namespace, key, payload, updated_at) VALUES(?,?,?,?)
		 ON CONFLICT(namespace, key) DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at`,
		e.namespace, key, payload, now().UnixMilli(),
	)
	if err != nil {
		return e.wrap(domain.ErrStoreWriteFailed, err, key)
	}
	return nil
}

func (e *sqliteEnv) MarkTime(label string) func() {
	return markTime(e, label)
}

func (e *sqliteEnv) wrap(sentinel, cause error, key string) error {
	err := zerr.With(zerr.Wrap(sentinel, cause.Error()), "namespace", e.namespace)
	return zerr.With(err, "key", key)
}
