package dtype

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// ErrUnsupportedType indicates a logical kind with no storage mapping, either
// the Object marker or a kind outside the built-in set.
var ErrUnsupportedType = errors.New("unsupported logical type")

// storageTypes is the process-wide registry from logical kind to Arrow
// storage descriptor. Initialized once, never mutated.
var storageTypes = map[Kind]arrow.DataType{
	Int64:     arrow.PrimitiveTypes.Int64,
	Float64:   arrow.PrimitiveTypes.Float64,
	Utf8:      arrow.BinaryTypes.String,
	Bool:      arrow.FixedWidthTypes.Boolean,
	Timestamp: arrow.FixedWidthTypes.Timestamp_us,
	Date:      arrow.FixedWidthTypes.Date32,
	Time:      arrow.FixedWidthTypes.Time64us,
	Decimal:   &arrow.Decimal128Type{Precision: 38, Scale: 18},
	List:      arrow.ListOf(arrow.Null),
	Map:       arrow.MapOf(arrow.BinaryTypes.String, arrow.Null),
}

// StorageType returns the Arrow storage descriptor for the given logical
// kind. It fails with ErrUnsupportedType for Object and for kinds outside
// the built-in set.
func StorageType(k Kind) (arrow.DataType, error) {
	dt, ok := storageTypes[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, k)
	}
	return dt, nil
}

// KindForStorage maps a native Arrow storage type back to its logical
// equivalent. It is used only by inference, when deriving a schema from a
// frame whose columns already carry a typed dtype.
//
// The logical schema is semantics-preserving, not dtype-preserving: every
// integer width and signedness collapses to Int64, float widths to Float64,
// dictionary-encoded (categorical) columns to their value kind, and duration
// counts to Int64. Types with no logical equivalent report Object and false.
func KindForStorage(dt arrow.DataType) (Kind, bool) {
	if dt == nil {
		return Object, false
	}
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return Int64, true
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return Float64, true
	case arrow.STRING, arrow.LARGE_STRING:
		return Utf8, true
	case arrow.BOOL:
		return Bool, true
	case arrow.TIMESTAMP:
		return Timestamp, true
	case arrow.DATE32, arrow.DATE64:
		return Date, true
	case arrow.TIME32, arrow.TIME64:
		return Time, true
	case arrow.DECIMAL128:
		return Decimal, true
	case arrow.LIST, arrow.LARGE_LIST, arrow.FIXED_SIZE_LIST:
		return List, true
	case arrow.MAP:
		return Map, true
	case arrow.DICTIONARY:
		return Utf8, true
	case arrow.DURATION:
		return Int64, true
	}
	return Object, false
}
