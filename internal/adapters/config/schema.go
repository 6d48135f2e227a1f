package config

// Kilnfile represents the structure of the kiln.yaml configuration file.
type Kilnfile struct {
	Version string     `yaml:"version"`
	Backend BackendDTO `yaml:"backend"`
	Dataset DatasetDTO `yaml:"dataset"`
	Blocks  []BlockDTO `yaml:"blocks"`
}

// BackendDTO selects the experiment backend.
type BackendDTO struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// DatasetDTO describes the dataset files.
type DatasetDTO struct {
	Label string `yaml:"label"`
}

// BlockDTO represents a block definition in the configuration.
type BlockDTO struct {
	Name    string             `yaml:"name"`
	Kind    string             `yaml:"kind"`
	Parents []string           `yaml:"parents"`
	Params  map[string]float64 `yaml:"params"`
}
