package backend

import (
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory opens backends by driver name.
type Factory struct{}

// NewFactory creates a backend factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open opens the configured backend. An empty driver selects the local backend and
// an empty path selects the driver's default location. Relative paths are joined
// to root.
func (f *Factory) Open(cfg domain.BackendConfig, root string) (ports.ExperimentBackend, error) {
	switch cfg.NormalizedDriver() {
	case domain.DriverLocal:
		return NewLocal(cfg.Location(root))
	case domain.DriverSQLite:
		return OpenSQLite(cfg.Location(root))
	case domain.DriverNone:
		return NewNone(), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownBackendDriver, "expected local, sqlite or none"), "driver", cfg.Driver)
	}
}
