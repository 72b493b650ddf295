package contract

import (
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecheck/framecheck/dtype"
	"github.com/framecheck/framecheck/frame"
	"github.com/framecheck/framecheck/schema"
	"github.com/framecheck/framecheck/validator"
)

func idSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New([]*schema.Column{
		schema.NewColumn("id", dtype.Int64, schema.NotNull(),
			schema.WithValidators(validator.IsPositive())),
	})
	require.NoError(t, err)
	return s
}

func idFrame(t *testing.T, ids ...int64) *frame.Frame {
	t.Helper()
	df, err := frame.New(frame.FromInts("id", ids...))
	require.NoError(t, err)
	return df
}

func passthrough(args map[string]any) (map[string]any, error) {
	return map[string]any{"result": args["df"]}, nil
}

func TestWrap_Success(t *testing.T) {
	s := idSchema(t)
	wrapped := New(
		WithArg("df", s),
		WithArg("limit", reflect.TypeOf(0)),
		WithOutput("result", s),
	).Wrap(passthrough)

	df := idFrame(t, 1, 2, 3)
	out, err := wrapped(map[string]any{"df": df, "limit": 10})
	require.NoError(t, err)
	assert.Same(t, df, out["result"])
}

func TestWrap_InvalidFrameArgument(t *testing.T) {
	wrapped := New(WithArg("df", idSchema(t))).Wrap(passthrough)

	_, err := wrapped(map[string]any{"df": idFrame(t, 1, -2)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Validation failed in 'id' at index 1: -2")

	var verr *schema.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestWrap_NonFrameForSchemaArg(t *testing.T) {
	wrapped := New(WithArg("df", idSchema(t))).Wrap(passthrough)

	_, err := wrapped(map[string]any{"df": "not a frame"})
	require.ErrorIs(t, err, ErrArgumentType)
}

func TestWrap_PrimitiveArgType(t *testing.T) {
	wrapped := New(WithArg("limit", reflect.TypeOf(0))).Wrap(
		func(args map[string]any) (map[string]any, error) {
			return map[string]any{}, nil
		})

	_, err := wrapped(map[string]any{"limit": 10})
	require.NoError(t, err)

	_, err = wrapped(map[string]any{"limit": "ten"})
	require.ErrorIs(t, err, ErrArgumentType)

	// A frame where a primitive was declared is a type mismatch too.
	_, err = wrapped(map[string]any{"limit": idFrame(t, 1)})
	require.ErrorIs(t, err, ErrArgumentType)
}

func TestWrap_UndeclaredArgsPassThrough(t *testing.T) {
	wrapped := New(WithArg("df", idSchema(t))).Wrap(passthrough)

	_, err := wrapped(map[string]any{"df": idFrame(t, 1), "extra": struct{}{}})
	require.NoError(t, err)
}

func TestWrap_MissingOutput(t *testing.T) {
	wrapped := New(WithOutput("result", idSchema(t))).Wrap(
		func(args map[string]any) (map[string]any, error) {
			return map[string]any{}, nil
		})

	_, err := wrapped(map[string]any{})
	require.ErrorIs(t, err, ErrMissingOutput)
}

func TestWrap_OutputMustBeFrame(t *testing.T) {
	wrapped := New(WithOutput("result", idSchema(t))).Wrap(
		func(args map[string]any) (map[string]any, error) {
			return map[string]any{"result": 42}, nil
		})

	_, err := wrapped(map[string]any{})
	require.ErrorIs(t, err, ErrOutputType)
}

func TestWrap_OutputValidated(t *testing.T) {
	wrapped := New(WithOutput("result", idSchema(t))).Wrap(
		func(args map[string]any) (map[string]any, error) {
			return map[string]any{"result": idFrame(t, -1)}, nil
		})

	_, err := wrapped(map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output \"result\"")
}

func TestWrap_FunctionErrorPassesThrough(t *testing.T) {
	sentinel := errors.New("boom")
	wrapped := New(WithOutput("result", idSchema(t))).Wrap(
		func(args map[string]any) (map[string]any, error) {
			return nil, sentinel
		})

	_, err := wrapped(map[string]any{})
	require.ErrorIs(t, err, sentinel)
}

func TestWrap_WithLogger(t *testing.T) {
	wrapped := New(
		WithArg("df", idSchema(t)),
		WithLogger(slog.Default()),
	).Wrap(passthrough)

	_, err := wrapped(map[string]any{"df": "nope"})
	require.ErrorIs(t, err, ErrArgumentType)
}
