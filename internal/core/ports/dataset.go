package ports

import "go.trai.ch/kiln/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=dataset.go -destination=mocks/mock_dataset.go -package=mocks

// DatasetReader loads a tabular dataset.
type DatasetReader interface {
	// Read parses the dataset at path. When label is non-empty the column of that
	// name is split off as labels; a missing label column yields nil labels.
	Read(path, label string) (*domain.Frame, domain.Labels, error)
}

// DatasetWriter stores a tabular dataset.
type DatasetWriter interface {
	// Write stores frame at path.
	Write(path string, frame *domain.Frame) error
}

// DatasetIO combines DatasetReader and DatasetWriter.
type DatasetIO interface {
	DatasetReader
	DatasetWriter
}
