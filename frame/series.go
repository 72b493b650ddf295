package frame

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
)

// Series is a single named column of values. A nil value is a null. The
// dtype is the column's native Arrow storage type when one claims it, or nil
// for untyped object-like columns.
type Series struct {
	name   string
	dtype  arrow.DataType
	values []any
}

// NewSeries builds a series from the given values, copying the slice. Pass a
// nil dtype for an untyped column. Nil entries are nulls.
func NewSeries(name string, dtype arrow.DataType, values []any) *Series {
	vs := make([]any, len(values))
	copy(vs, values)
	return &Series{name: name, dtype: dtype, values: vs}
}

// FromValues builds an untyped column. The runtime shape of its first
// non-null value decides its logical kind at inference time.
func FromValues(name string, values ...any) *Series {
	return NewSeries(name, nil, values)
}

// FromInts builds an int64-typed column with no nulls.
func FromInts(name string, values ...int64) *Series {
	return &Series{name: name, dtype: arrow.PrimitiveTypes.Int64, values: box(values)}
}

// FromFloats builds a float64-typed column with no nulls.
func FromFloats(name string, values ...float64) *Series {
	return &Series{name: name, dtype: arrow.PrimitiveTypes.Float64, values: box(values)}
}

// FromStrings builds a string-typed column with no nulls.
func FromStrings(name string, values ...string) *Series {
	return &Series{name: name, dtype: arrow.BinaryTypes.String, values: box(values)}
}

// FromBools builds a boolean-typed column with no nulls.
func FromBools(name string, values ...bool) *Series {
	return &Series{name: name, dtype: arrow.FixedWidthTypes.Boolean, values: box(values)}
}

// FromTimes builds a microsecond-timestamp-typed column with no nulls.
func FromTimes(name string, values ...time.Time) *Series {
	return &Series{name: name, dtype: arrow.FixedWidthTypes.Timestamp_us, values: box(values)}
}

func box[T any](values []T) []any {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return vs
}

// Name returns the column name.
func (s *Series) Name() string {
	return s.name
}

// DataType returns the column's native Arrow storage type, or nil for an
// untyped column.
func (s *Series) DataType() arrow.DataType {
	return s.dtype
}

// Len returns the number of rows, nulls included.
func (s *Series) Len() int {
	return len(s.values)
}

// Value returns the value at row i; nil means null.
func (s *Series) Value(i int) any {
	return s.values[i]
}

// IsNull reports whether row i is null.
func (s *Series) IsNull(i int) bool {
	return s.values[i] == nil
}

// HasNull reports whether any row is null.
func (s *Series) HasNull() bool {
	for _, v := range s.values {
		if v == nil {
			return true
		}
	}
	return false
}

// FirstNonNull returns the first non-null value in row order, if any.
func (s *Series) FirstNonNull() (any, bool) {
	for _, v := range s.values {
		if v != nil {
			return v, true
		}
	}
	return nil, false
}

// Values returns a copy of all row values, nulls included.
func (s *Series) Values() []any {
	vs := make([]any, len(s.values))
	copy(vs, s.values)
	return vs
}
