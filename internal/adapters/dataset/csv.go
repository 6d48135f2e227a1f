// Package dataset reads and writes frames as CSV files.
package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatasetIO = (*CSV)(nil)

// CSV implements ports.DatasetIO for comma-separated files with a header row.
// Every cell must parse as a finite float.
type CSV struct{}

// NewCSV creates a CSV dataset adapter.
func NewCSV() *CSV {
	return &CSV{}
}

// Read parses the file at path. When label names a header column, that column is
// returned as labels and left out of the frame.
func (c *CSV) Read(path, label string) (*domain.Frame, domain.Labels, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrDatasetReadFailed, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	frame, labels, err := decode(f, label)
	if err != nil {
		return nil, nil, zerr.With(err, "path", path)
	}
	return frame, labels, nil
}

func decode(r io.Reader, label string) (*domain.Frame, domain.Labels, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, zerr.Wrap(domain.ErrDatasetReadFailed, "file has no header")
	}
	if err != nil {
		return nil, nil, zerr.Wrap(domain.ErrDatasetReadFailed, err.Error())
	}

	values := make([][]float64, len(header))
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, zerr.With(zerr.Wrap(domain.ErrDatasetReadFailed, err.Error()), "line", line)
		}
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				err := zerr.With(zerr.Wrap(domain.ErrDatasetReadFailed, "cell is not a number"), "line", line)
				return nil, nil, zerr.With(err, "column", header[i])
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				err := zerr.With(zerr.Wrap(domain.ErrDatasetReadFailed, "cell is not a finite number"), "line", line)
				return nil, nil, zerr.With(err, "column", header[i])
			}
			values[i] = append(values[i], v)
		}
	}

	var labels domain.Labels
	cols := make([]domain.Column, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if label != "" && name == label {
			labels = values[i]
			continue
		}
		if values[i] == nil {
			values[i] = []float64{}
		}
		cols = append(cols, domain.Column{Name: name, Values: values[i]})
	}

	frame, err := domain.NewFrame(cols...)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrDatasetReadFailed.Error())
	}
	if len(cols) == 0 {
		frame = domain.EmptyFrame(len(labels))
	}
	return frame, labels, nil
}

// Write stores frame at path with a header row, creating parent directories.
func (c *CSV) Write(path string, frame *domain.Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDatasetWriteFailed, err.Error()), "path", path)
	}

	f, err := os.Create(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDatasetWriteFailed, err.Error()), "path", path)
	}

	if err := encode(f, frame); err != nil {
		_ = f.Close()
		return zerr.With(err, "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDatasetWriteFailed, err.Error()), "path", path)
	}
	return nil
}

func encode(w io.Writer, frame *domain.Frame) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(frame.Names()); err != nil {
		return zerr.Wrap(domain.ErrDatasetWriteFailed, err.Error())
	}

	record := make([]string, frame.Width())
	for i := range frame.Rows() {
		for j, v := range frame.Row(i) {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return zerr.Wrap(domain.ErrDatasetWriteFailed, err.Error())
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return zerr.Wrap(domain.ErrDatasetWriteFailed, err.Error())
	}
	return nil
}
