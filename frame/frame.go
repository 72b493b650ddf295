package frame

import (
	"errors"
	"fmt"
)

// ErrRaggedColumns indicates columns of unequal length.
var ErrRaggedColumns = errors.New("columns have unequal lengths")

// ErrDuplicateColumn indicates two columns sharing one name.
var ErrDuplicateColumn = errors.New("duplicate column name")

// Frame is an ordered, name-indexed collection of equal-length series.
type Frame struct {
	cols        []*Series
	nameToIndex map[string]int
}

// New builds a frame from the given columns. All columns must have the same
// length and unique names.
func New(cols ...*Series) (*Frame, error) {
	f := &Frame{
		cols:        make([]*Series, 0, len(cols)),
		nameToIndex: make(map[string]int, len(cols)),
	}
	for _, col := range cols {
		if len(f.cols) > 0 && col.Len() != f.cols[0].Len() {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
				ErrRaggedColumns, col.Name(), col.Len(), f.cols[0].Len())
		}
		if _, ok := f.nameToIndex[col.Name()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, col.Name())
		}
		f.nameToIndex[col.Name()] = len(f.cols)
		f.cols = append(f.cols, col)
	}
	return f, nil
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.cols)
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// Column returns the series with the given name.
func (f *Frame) Column(name string) (*Series, bool) {
	i, ok := f.nameToIndex[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.nameToIndex[name]
	return ok
}

// Columns returns the series in insertion order. The returned slice is a
// copy; the series themselves are shared.
func (f *Frame) Columns() []*Series {
	cols := make([]*Series, len(f.cols))
	copy(cols, f.cols)
	return cols
}
