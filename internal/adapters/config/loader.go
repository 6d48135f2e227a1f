// Package config provides the pipeline configuration loader for kiln.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version this loader understands.
const SupportedVersion = "1"

var validBlockNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path and returns the validated pipeline.
func (l *Loader) Load(path string) (*domain.Pipeline, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var kilnfile Kilnfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&kilnfile); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	p, err := l.build(&kilnfile)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return p, nil
}

func (l *Loader) build(kf *Kilnfile) (*domain.Pipeline, error) {
	switch kf.Version {
	case SupportedVersion:
	case "":
		l.Logger.Warn(fmt.Sprintf("no version set in %s, assuming %q", domain.ConfigFileName, SupportedVersion))
	default:
		l.Logger.Warn("unsupported config version, loading anyway", "version", kf.Version)
	}

	backend, err := buildBackend(kf.Backend)
	if err != nil {
		return nil, err
	}

	if len(kf.Blocks) == 0 {
		return nil, zerr.Wrap(domain.ErrNoBlocks, "the blocks list is empty")
	}

	// First pass: collect all block names to verify parents later
	names := make(map[string]bool, len(kf.Blocks))
	for _, dto := range kf.Blocks {
		if err := validateBlockName(dto.Name); err != nil {
			return nil, err
		}
		if names[dto.Name] {
			return nil, zerr.With(zerr.Wrap(domain.ErrBlockAlreadyExists, "block declared twice"), "block", dto.Name)
		}
		names[dto.Name] = true
	}

	// Second pass: build specs in declaration order
	blocks := make([]domain.BlockSpec, 0, len(kf.Blocks))
	for _, dto := range kf.Blocks {
		if strings.TrimSpace(dto.Kind) == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownBlockKind, "block has no kind"), "block", dto.Name)
		}
		for _, parent := range dto.Parents {
			if !names[parent] {
				err := zerr.With(zerr.Wrap(domain.ErrMissingDependency, "parent is not declared"), "block", dto.Name)
				return nil, zerr.With(err, "missing_dependency", parent)
			}
		}
		blocks = append(blocks, domain.BlockSpec{
			Name:    dto.Name,
			Kind:    strings.TrimSpace(dto.Kind),
			Parents: dto.Parents,
			Params:  dto.Params,
		})
	}

	return &domain.Pipeline{
		Version: kf.Version,
		Backend: backend,
		Dataset: domain.DatasetConfig{Label: strings.TrimSpace(kf.Dataset.Label)},
		Blocks:  blocks,
	}, nil
}

func buildBackend(dto BackendDTO) (domain.BackendConfig, error) {
	cfg := domain.BackendConfig{Driver: dto.Driver, Path: strings.TrimSpace(dto.Path)}
	cfg.Driver = cfg.NormalizedDriver()

	switch cfg.Driver {
	case domain.DriverLocal:
		if cfg.Path == "" {
			cfg.Path = domain.DefaultExperimentPath()
		}
	case domain.DriverSQLite:
		if cfg.Path == "" {
			cfg.Path = domain.DefaultSQLitePath()
		}
	case domain.DriverNone:
	default:
		return domain.BackendConfig{}, zerr.With(zerr.Wrap(domain.ErrUnknownBackendDriver, "expected local, sqlite or none"), "driver", dto.Driver)
	}
	return cfg, nil
}

func validateBlockName(name string) error {
	if name == "all" {
		return zerr.With(zerr.Wrap(domain.ErrReservedBlockName, "pick another block name"), "block", name)
	}
	if !validBlockNameRegex.MatchString(name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidBlockName, "use letters, digits, '_' or '-'"), "block", name)
	}
	return nil
}
