package dtype

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// BuildArray attempts to construct a typed Arrow array of the kind's storage
// type from the given non-null values. It is the structural half of
// validation: can every value be losslessly placed into the declared
// storage? Coercion is explicit per kind and reports the first value that
// does not fit; it never relies on recovered panics.
//
// The caller owns the returned array and must Release it. Kinds without a
// storage mapping fail with ErrUnsupportedType.
func BuildArray(k Kind, values []any) (arrow.Array, error) {
	mem := memory.DefaultAllocator

	switch k {
	case Int64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		for _, v := range values {
			n, ok := asInt64(v)
			if !ok {
				return nil, coerceError(v, k)
			}
			b.Append(n)
		}
		return b.NewArray(), nil

	case Float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for _, v := range values {
			f, ok := asFloat64(v)
			if !ok {
				return nil, coerceError(v, k)
			}
			b.Append(f)
		}
		return b.NewArray(), nil

	case Utf8:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for _, v := range values {
			s, ok := asString(v)
			if !ok {
				return nil, coerceError(v, k)
			}
			b.Append(s)
		}
		return b.NewArray(), nil

	case Bool:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		for _, v := range values {
			t, ok := asBool(v)
			if !ok {
				return nil, coerceError(v, k)
			}
			b.Append(t)
		}
		return b.NewArray(), nil

	case Timestamp:
		b := array.NewTimestampBuilder(mem, &arrow.TimestampType{Unit: arrow.Microsecond})
		defer b.Release()
		for _, v := range values {
			t, ok := v.(time.Time)
			if !ok {
				return nil, coerceError(v, k)
			}
			ts, err := arrow.TimestampFromTime(t, arrow.Microsecond)
			if err != nil {
				return nil, fmt.Errorf("value %v is out of range for %s", v, k)
			}
			b.Append(ts)
		}
		return b.NewArray(), nil

	case Date:
		b := array.NewDate32Builder(mem)
		defer b.Release()
		for _, v := range values {
			t, ok := v.(time.Time)
			if !ok {
				return nil, coerceError(v, k)
			}
			b.Append(arrow.Date32FromTime(t))
		}
		return b.NewArray(), nil

	case Time:
		b := array.NewTime64Builder(mem, &arrow.Time64Type{Unit: arrow.Microsecond})
		defer b.Release()
		for _, v := range values {
			us, ok := asTimeOfDay(v)
			if !ok {
				return nil, coerceError(v, k)
			}
			b.Append(arrow.Time64(us))
		}
		return b.NewArray(), nil

	case Decimal:
		dt := &arrow.Decimal128Type{Precision: 38, Scale: 18}
		b := array.NewDecimal128Builder(mem, dt)
		defer b.Release()
		for _, v := range values {
			n, err := asDecimal(v, dt)
			if err != nil {
				return nil, fmt.Errorf("value %v (%T) is not representable as %s: %v", v, v, k, err)
			}
			b.Append(n)
		}
		return b.NewArray(), nil

	case List:
		b := array.NewListBuilder(mem, arrow.Null)
		defer b.Release()
		for _, v := range values {
			n, ok := sequenceLen(v)
			if !ok {
				return nil, coerceError(v, k)
			}
			// Element type is unknown, so only the list shape is stored.
			b.Append(true)
			for range n {
				b.ValueBuilder().AppendNull()
			}
		}
		return b.NewArray(), nil

	case Map:
		b := array.NewMapBuilder(mem, arrow.BinaryTypes.String, arrow.Null, false)
		defer b.Release()
		kb := b.KeyBuilder().(*array.StringBuilder)
		for _, v := range values {
			keys, ok := stringKeys(v)
			if !ok {
				return nil, coerceError(v, k)
			}
			b.Append(true)
			for _, key := range keys {
				kb.Append(key)
				b.ItemBuilder().AppendNull()
			}
		}
		return b.NewArray(), nil
	}

	_, err := StorageType(k)
	return nil, err
}

func coerceError(v any, k Kind) error {
	return fmt.Errorf("value %v (%T) is not representable as %s", v, v, k)
}

// asInt64 converts a value to int64 when the conversion is lossless.
// Floating point values are accepted only when integral and in range;
// booleans are never integers. Named types with an integer underlying kind
// qualify through the reflect fallback, so coercion accepts every value the
// inference side classifies as an integer.
func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), uint64(x) <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	case float32:
		return asIntegralFloat(float64(x))
	case float64:
		return asIntegralFloat(x)
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	case reflect.Float32, reflect.Float64:
		return asIntegralFloat(rv.Float())
	}
	return 0, false
}

func asIntegralFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// asFloat64 converts numeric values to float64. Booleans and strings do not
// qualify.
func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// asString accepts strings and named types with a string underlying kind.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// asBool accepts booleans and named types with a bool underlying kind.
func asBool(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	return false, false
}

// asTimeOfDay converts a value to microseconds since midnight. Durations
// must fall within one day; wall-clock times contribute their clock reading.
func asTimeOfDay(v any) (int64, bool) {
	const day = 24 * time.Hour
	switch x := v.(type) {
	case time.Duration:
		if x < 0 || x >= day {
			return 0, false
		}
		return x.Microseconds(), true
	case time.Time:
		clock := time.Duration(x.Hour())*time.Hour +
			time.Duration(x.Minute())*time.Minute +
			time.Duration(x.Second())*time.Second +
			time.Duration(x.Nanosecond())*time.Nanosecond
		return clock.Microseconds(), true
	}
	return 0, false
}

func asDecimal(v any, dt *arrow.Decimal128Type) (decimal128.Num, error) {
	switch x := v.(type) {
	case decimal128.Num:
		return x, nil
	case string:
		return decimal128.FromString(x, dt.Precision, dt.Scale)
	case float32:
		return decimal128.FromFloat64(float64(x), dt.Precision, dt.Scale)
	case float64:
		return decimal128.FromFloat64(x, dt.Precision, dt.Scale)
	}
	if n, ok := asInt64(v); ok {
		return decimal128.FromString(strconv.FormatInt(n, 10), dt.Precision, dt.Scale)
	}
	return decimal128.Num{}, fmt.Errorf("no decimal conversion for %T", v)
}

// sequenceLen returns the element count of a non-string sequence value.
func sequenceLen(v any) (int, bool) {
	if _, isStr := v.(string); isStr {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

// stringKeys returns the keys of a string-keyed mapping value in sorted
// order, so built storage is deterministic across calls.
func stringKeys(v any) ([]string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keys := make([]string, 0, rv.Len())
	for _, kv := range rv.MapKeys() {
		keys = append(keys, kv.String())
	}
	slices.Sort(keys)
	return keys, true
}
