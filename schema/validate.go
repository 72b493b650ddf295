package schema

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/framecheck/framecheck/dtype"
	"github.com/framecheck/framecheck/frame"
	"github.com/framecheck/framecheck/validator"
)

// ErrNilFrame indicates a nil frame passed to validation.
var ErrNilFrame = errors.New("nil frame")

// Validate checks the frame against the schema, exhaustively across every
// declared column, row, and validator. It returns nil on success, a
// *ValidationError aggregating every finding on violation, and
// dtype.ErrUnsupportedType immediately if a column declares a kind with no
// storage mapping. The frame is never modified.
func (s *Schema) Validate(df *frame.Frame) error {
	return s.ValidateContext(context.Background(), df)
}

// ValidateContext is Validate under a tracing span when the schema carries a
// tracer. Validation itself is pure and runs to completion; the context is
// used only for trace propagation.
func (s *Schema) ValidateContext(ctx context.Context, df *frame.Frame) error {
	_, span := s.tracer.Start(ctx, "schema.Validate")
	defer span.End()

	rep, err := s.Check(df)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.Int("schema.columns", len(s.cols)),
		attribute.Int("frame.rows", df.NumRows()),
		attribute.Int("report.findings", len(rep.Findings)),
	)
	if !rep.OK() {
		span.SetStatus(codes.Error, "schema validation failed")
		return &ValidationError{Report: rep}
	}
	return nil
}

// Check runs the validation pass and returns the structured report. The
// error is non-nil only for fatal conditions: a nil frame, or a declared
// kind with no storage mapping. An empty report means success.
func (s *Schema) Check(df *frame.Frame) (*Report, error) {
	if df == nil {
		return nil, ErrNilFrame
	}

	rep := newReport()
	for _, col := range s.cols {
		series, ok := df.Column(col.name)
		if !ok {
			// No series exists, so the remaining checks have nothing to run on.
			rep.add(Finding{Kind: KindMissingColumn, Column: col.name, Row: -1})
			continue
		}
		if err := checkColumn(rep, col, series); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

// checkColumn records nullability, structural, and semantic findings for
// one column in that fixed order. Nulls are excluded from the structural
// and semantic checks whether or not the column permits them; the
// nullability flag only controls whether their presence is itself recorded.
// The returned error is non-nil only for a kind with no storage mapping,
// which is fatal: there is no sensible way to keep checking the column.
func checkColumn(rep *Report, col *Column, series *frame.Series) error {
	if !col.nullable && series.HasNull() {
		rep.add(Finding{Kind: KindNullInNonNullable, Column: col.name, Row: -1})
	}

	// Single pass to split out the non-null values with their row indexes.
	values := make([]any, 0, series.Len())
	rows := make([]int, 0, series.Len())
	for i := 0; i < series.Len(); i++ {
		if v := series.Value(i); v != nil {
			values = append(values, v)
			rows = append(rows, i)
		}
	}

	arr, err := dtype.BuildArray(col.kind, values)
	switch {
	case err == nil:
		arr.Release()
	case errors.Is(err, dtype.ErrUnsupportedType):
		return fmt.Errorf("column %q: %w", col.name, err)
	default:
		rep.add(Finding{Kind: KindTypeMismatch, Column: col.name, Row: -1, Detail: err.Error()})
	}

	for i, v := range values {
		for _, vd := range col.validators {
			ok, verr := evaluate(vd, v)
			if verr != nil {
				rep.add(Finding{Kind: KindValidatorError, Column: col.name, Row: rows[i], Value: v, Detail: verr.Error()})
				break
			}
			if !ok {
				rep.add(Finding{Kind: KindValidationFailed, Column: col.name, Row: rows[i], Value: v, Detail: vd.Describe()})
				break
			}
		}
	}
	return nil
}

// evaluate runs one validator over one value, converting a panic in a
// caller-supplied predicate into an evaluation error instead of aborting
// the pass.
func evaluate(v validator.Validator, value any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("panic: %v", r)
		}
	}()
	return v.Check(value)
}
