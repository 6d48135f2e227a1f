package domain

import (
	"encoding/json"
	"slices"

	"go.trai.ch/zerr"
)

// PrefixSeparator joins a parent block name and one of its column names.
const PrefixSeparator = "__"

// Labels holds one target value per row.
type Labels []float64

// Column is a named vector of values.
type Column struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Frame is an ordered, column-major table where every column has the same length.
// Frames are treated as immutable once built; derived frames share value slices.
type Frame struct {
	rows    int
	columns []Column
	index   map[string]int
}

// NewFrame builds a frame from the given columns. The row count is taken from the
// first column; a frame without columns has zero rows.
func NewFrame(columns ...Column) (*Frame, error) {
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0].Values)
	}
	return newFrame(rows, columns)
}

// EmptyFrame returns a frame with the given number of rows and no columns.
func EmptyFrame(rows int) *Frame {
	return &Frame{rows: rows, index: map[string]int{}}
}

func newFrame(rows int, columns []Column) (*Frame, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c.Name == "" {
			return nil, zerr.With(zerr.Wrap(ErrEmptyColumnName, "column has no name"), "position", i)
		}
		if len(c.Values) != rows {
			err := zerr.With(zerr.Wrap(ErrRowCountMismatch, "column length differs"), "column", c.Name)
			err = zerr.With(err, "rows", len(c.Values))
			return nil, zerr.With(err, "expected_rows", rows)
		}
		if _, exists := index[c.Name]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateColumn, "column name repeated"), "column", c.Name)
		}
		index[c.Name] = i
	}
	return &Frame{rows: rows, columns: columns, index: index}, nil
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	return f.rows
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.columns)
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in order.
func (f *Frame) Columns() []Column {
	return slices.Clone(f.columns)
}

// At returns the i-th column.
func (f *Frame) At(i int) Column {
	return f.columns[i]
}

// Column returns the column with the given name.
func (f *Frame) Column(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, false
	}
	return f.columns[i], true
}

// Row returns the values of row i across all columns.
func (f *Frame) Row(i int) []float64 {
	row := make([]float64, len(f.columns))
	for j, c := range f.columns {
		row[j] = c.Values[i]
	}
	return row
}

// Drop returns a frame without the named column.
func (f *Frame) Drop(name string) (*Frame, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrColumnNotFound, "cannot drop column"), "column", name)
	}
	cols := slices.Delete(slices.Clone(f.columns), i, i+1)
	return newFrame(f.rows, cols)
}

// WithPrefix returns a frame whose column names are "<prefix>__<name>".
func (f *Frame) WithPrefix(prefix string) *Frame {
	cols := make([]Column, len(f.columns))
	index := make(map[string]int, len(f.columns))
	for i, c := range f.columns {
		name := prefix + PrefixSeparator + c.Name
		cols[i] = Column{Name: name, Values: c.Values}
		index[name] = i
	}
	return &Frame{rows: f.rows, columns: cols, index: index}
}

// Concat joins frames column-wise, in argument order.
// All frames must share the same row count and no column name may repeat.
func Concat(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return EmptyFrame(0), nil
	}
	rows := frames[0].rows
	width := 0
	for _, f := range frames {
		width += len(f.columns)
	}

	cols := make([]Column, 0, width)
	for i, f := range frames {
		if f.rows != rows {
			err := zerr.With(zerr.Wrap(ErrRowCountMismatch, "cannot concatenate frames"), "position", i)
			err = zerr.With(err, "rows", f.rows)
			return nil, zerr.With(err, "expected_rows", rows)
		}
		cols = append(cols, f.columns...)
	}
	return newFrame(rows, cols)
}

type frameJSON struct {
	Rows    int      `json:"rows"`
	Columns []Column `json:"columns"`
}

// MarshalJSON implements json.Marshaler.
func (f *Frame) MarshalJSON() ([]byte, error) {
	cols := f.columns
	if cols == nil {
		cols = []Column{}
	}
	return json.Marshal(frameJSON{Rows: f.rows, Columns: cols})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var raw frameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := newFrame(raw.Rows, raw.Columns)
	if err != nil {
		return err
	}
	*f = *decoded
	return nil
}
