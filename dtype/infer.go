package dtype

import (
	"reflect"
	"time"

	"github.com/apache/arrow-go/v18/arrow/decimal128"

	"github.com/framecheck/framecheck/frame"
)

// Infer determines the best-fit logical kind for a column of actual values.
//
// A column whose storage already carries an unambiguous Arrow dtype maps
// through the registry directly, except that an integer column containing
// any null widens to Float64: the storage has no way to hold a missing
// integer. The storage dtype wins even over an empty column: emptiness does
// not erase a declared type. An untyped column is classified by the runtime
// shape of its first non-null value; untyped and empty or all-null yields
// Object, a soft outcome rather than an error, so emptiness alone does not
// block schema construction.
func Infer(s *frame.Series) Kind {
	if s == nil {
		return Object
	}
	if dt := s.DataType(); dt != nil {
		k, ok := KindForStorage(dt)
		if !ok {
			return Object
		}
		if k == Int64 && s.HasNull() {
			return Float64
		}
		return k
	}
	sample, ok := s.FirstNonNull()
	if !ok {
		return Object
	}
	k := KindOf(sample)
	if k == Int64 && s.HasNull() {
		return Float64
	}
	return k
}

// KindOf classifies a single runtime value. Booleans are checked before the
// integer cases so a bool never reads as an integer.
func KindOf(v any) Kind {
	switch v.(type) {
	case bool:
		return Bool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Int64
	case float32, float64:
		return Float64
	case string:
		return Utf8
	case time.Time:
		return Timestamp
	case decimal128.Num:
		return Decimal
	}

	// Named types and container shapes.
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int64
	case reflect.Float32, reflect.Float64:
		return Float64
	case reflect.String:
		return Utf8
	case reflect.Map:
		return Map
	case reflect.Slice, reflect.Array:
		return List
	}
	return Object
}
