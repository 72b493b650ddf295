package dtype

import (
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"

	"github.com/framecheck/framecheck/frame"
)

func TestInfer_TypedColumns(t *testing.T) {
	tests := []struct {
		name   string
		series *frame.Series
		want   Kind
	}{
		{"int column", frame.FromInts("n", 1, 2, 3), Int64},
		{"float column", frame.FromFloats("x", 1.1, 2.2), Float64},
		{"string column", frame.FromStrings("s", "a", "b"), Utf8},
		{"bool column", frame.FromBools("b", true, false), Bool},
		{"timestamp column", frame.FromTimes("t", time.Now()), Timestamp},
		{
			"int32-typed column widens",
			frame.NewSeries("n", arrow.PrimitiveTypes.Int32, []any{int32(1)}),
			Int64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(tt.series))
		})
	}
}

// An integer column containing any null infers as float64: the storage
// representation must widen to hold a missing integer.
func TestInfer_NullableIntWidensToFloat(t *testing.T) {
	s := frame.NewSeries("n", arrow.PrimitiveTypes.Int64, []any{int64(1), nil, int64(3)})
	assert.Equal(t, Float64, Infer(s))

	// Without nulls the same typed column stays integer.
	s = frame.NewSeries("n", arrow.PrimitiveTypes.Int64, []any{int64(1), int64(3)})
	assert.Equal(t, Int64, Infer(s))

	// Floats never widen further.
	s = frame.NewSeries("x", arrow.PrimitiveTypes.Float64, []any{1.5, nil})
	assert.Equal(t, Float64, Infer(s))
}

func TestInfer_ObjectColumns(t *testing.T) {
	tests := []struct {
		name   string
		series *frame.Series
		want   Kind
	}{
		{"ints from sample", frame.FromValues("n", 1, 2), Int64},
		{"floats from sample", frame.FromValues("x", 1.5), Float64},
		{"strings from sample", frame.FromValues("s", "hello"), Utf8},
		{"bool sample before int", frame.FromValues("b", true, false), Bool},
		{"time sample", frame.FromValues("t", time.Now()), Timestamp},
		{"map sample", frame.FromValues("m", map[string]any{"k": 1}), Map},
		{"slice sample", frame.FromValues("l", []int{1, 2}), List},
		{"int with null widens", frame.FromValues("n", nil, 42), Float64},
		{"string with null stays utf8", frame.FromValues("s", nil, "x"), Utf8},
		{"struct sample is object", frame.FromValues("o", struct{}{}), Object},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(tt.series))
		})
	}
}

// Emptiness is a soft outcome: it yields the untyped marker, not an error.
func TestInfer_Empty(t *testing.T) {
	assert.Equal(t, Object, Infer(frame.FromValues("empty")))
	assert.Equal(t, Object, Infer(frame.FromValues("nulls", nil, nil)))
	assert.Equal(t, Object, Infer(nil))
}

// A declared storage type survives emptiness: zero rows do not demote a
// typed column to the untyped marker.
func TestInfer_TypedEmptyKeepsKind(t *testing.T) {
	s := frame.NewSeries("n", arrow.PrimitiveTypes.Int64, nil)
	assert.Equal(t, Int64, Infer(s))

	s = frame.NewSeries("s", arrow.BinaryTypes.String, nil)
	assert.Equal(t, Utf8, Infer(s))
}

func TestKindOf_NamedTypes(t *testing.T) {
	type level int
	type tag string

	assert.Equal(t, Int64, KindOf(level(3)))
	assert.Equal(t, Utf8, KindOf(tag("a")))
	assert.Equal(t, List, KindOf([2]string{"a", "b"}))
	assert.Equal(t, Map, KindOf(map[string]string{}))
}
