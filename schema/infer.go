package schema

import (
	"github.com/framecheck/framecheck/dtype"
	"github.com/framecheck/framecheck/frame"
)

// Infer derives a schema from an existing frame, in frame column order.
// Each column's kind comes from dtype.Infer over its values; inference runs
// once, here, and the result is a fixed column spec from then on.
//
// A column is marked nullable only when nulls were actually observed, the
// inverse of the explicit-construction default. Inference describes observed
// reality tightly; explicit declarations stay permissive unless the author
// opts into strictness.
func Infer(df *frame.Frame, opts ...Option) (*Schema, error) {
	if df == nil {
		return nil, ErrNilFrame
	}
	cols := make([]*Column, 0, df.NumCols())
	for _, series := range df.Columns() {
		colOpts := []ColumnOption{}
		if !series.HasNull() {
			colOpts = append(colOpts, NotNull())
		}
		cols = append(cols, NewColumn(series.Name(), dtype.Infer(series), colOpts...))
	}
	return New(cols, opts...)
}
