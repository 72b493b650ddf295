package frame

import (
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedConstructors(t *testing.T) {
	tests := []struct {
		name   string
		series *Series
		want   arrow.Type
	}{
		{"ints", FromInts("n", 1, 2), arrow.INT64},
		{"floats", FromFloats("x", 1.5), arrow.FLOAT64},
		{"strings", FromStrings("s", "a"), arrow.STRING},
		{"bools", FromBools("b", true), arrow.BOOL},
		{"times", FromTimes("t", time.Now()), arrow.TIMESTAMP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.series.DataType())
			assert.Equal(t, tt.want, tt.series.DataType().ID())
			assert.False(t, tt.series.HasNull())
		})
	}
}

func TestFromValues_Untyped(t *testing.T) {
	s := FromValues("mixed", 1, "two", nil)
	assert.Nil(t, s.DataType())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.HasNull())
	assert.True(t, s.IsNull(2))
	assert.False(t, s.IsNull(0))
}

func TestFirstNonNull(t *testing.T) {
	s := FromValues("x", nil, nil, 42, 43)
	v, ok := s.FirstNonNull()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	s = FromValues("empty", nil, nil)
	_, ok = s.FirstNonNull()
	assert.False(t, ok)
}

func TestNewSeries_CopiesValues(t *testing.T) {
	values := []any{int64(1), int64(2)}
	s := NewSeries("n", arrow.PrimitiveTypes.Int64, values)

	values[0] = int64(99)
	assert.Equal(t, int64(1), s.Value(0))

	// Values() hands out a copy as well.
	vs := s.Values()
	vs[1] = nil
	assert.Equal(t, int64(2), s.Value(1))
}
