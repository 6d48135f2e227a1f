package domain

import (
	"path/filepath"
	"strings"
)

// Backend driver names.
const (
	DriverLocal  = "local"
	DriverSQLite = "sqlite"
	DriverNone   = "none"
)

// Pipeline is the validated configuration of a block pipeline.
type Pipeline struct {
	Version string
	Backend BackendConfig
	Dataset DatasetConfig
	// Blocks are kept in declaration order, which is also the graph construction order.
	Blocks []BlockSpec
}

// BackendConfig selects and locates the experiment backend.
type BackendConfig struct {
	Driver string
	Path   string
}

// NormalizedDriver returns the lower-cased driver name, defaulting to DriverLocal.
// The "sqlite3" alias maps to DriverSQLite.
func (c BackendConfig) NormalizedDriver() string {
	driver := strings.ToLower(strings.TrimSpace(c.Driver))
	switch driver {
	case "":
		return DriverLocal
	case "sqlite3":
		return DriverSQLite
	default:
		return driver
	}
}

// Location returns the storage path of the backend, with relative paths joined to
// root. An empty path selects the driver's default location. The none driver has
// no location.
func (c BackendConfig) Location(root string) string {
	path := strings.TrimSpace(c.Path)
	if path == "" {
		switch c.NormalizedDriver() {
		case DriverLocal:
			path = DefaultExperimentPath()
		case DriverSQLite:
			path = DefaultSQLitePath()
		default:
			return ""
		}
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// DatasetConfig describes how datasets map onto frames and labels.
type DatasetConfig struct {
	// Label is the name of the label column. Empty means the dataset has no labels.
	Label string
}

// BlockSpec declares one block of the pipeline.
type BlockSpec struct {
	Name    string
	Kind    string
	Parents []string
	Params  map[string]float64
}

// Param returns the named parameter or def when it is not set.
func (b BlockSpec) Param(name string, def float64) float64 {
	if v, ok := b.Params[name]; ok {
		return v
	}
	return def
}

// Block returns the spec with the given name.
func (p *Pipeline) Block(name string) (BlockSpec, bool) {
	for _, b := range p.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return BlockSpec{}, false
}
