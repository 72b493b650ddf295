package dtype

// Kind identifies a logical column type. The set is closed: custom behavior
// is expressed through validators, never through new kinds.
type Kind string

const (
	// Int64 is a 64-bit signed integer column.
	Int64 Kind = "int64"

	// Float64 is a 64-bit floating point column.
	Float64 Kind = "float64"

	// Utf8 is a UTF-8 string column.
	Utf8 Kind = "utf8"

	// Bool is a boolean column.
	Bool Kind = "bool"

	// Timestamp is an instant with microsecond precision.
	Timestamp Kind = "timestamp[us]"

	// Date is a calendar date stored as days since the Unix epoch.
	Date Kind = "date32"

	// Time is a time of day with microsecond precision.
	Time Kind = "time64[us]"

	// Decimal is a fixed-point decimal128(38, 18) column.
	Decimal Kind = "decimal128(38,18)"

	// List is a variable-length sequence column with unknown element type.
	List Kind = "list<null>"

	// Map is a string-keyed mapping column with unknown value type.
	Map Kind = "map<utf8,null>"

	// Object is the untyped marker produced by inference when no kind fits.
	// It has no storage mapping and fails structural coercion.
	Object Kind = "object"
)

// IsValid returns true if k is one of the built-in kinds, including Object.
func (k Kind) IsValid() bool {
	switch k {
	case Int64, Float64, Utf8, Bool, Timestamp, Date, Time, Decimal, List, Map, Object:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}
