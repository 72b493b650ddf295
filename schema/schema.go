package schema

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/framecheck/framecheck/dtype"
	"github.com/framecheck/framecheck/validator"
)

// ErrDuplicateColumn indicates two columns declared under one name. A
// duplicate silently dropping an earlier spec is never what the author
// meant, so construction rejects it outright.
var ErrDuplicateColumn = errors.New("duplicate column name")

// ErrUnboundColumn indicates a column whose name was never bound.
var ErrUnboundColumn = errors.New("column name is not bound")

// Schema is an ordered, name-indexed collection of column specs. It is
// immutable after construction and safe for concurrent Validate calls.
type Schema struct {
	cols        []*Column
	nameToIndex map[string]int
	tracer      trace.Tracer
}

// Option configures a Schema at construction.
type Option func(*Schema)

// WithTracer attaches an OpenTelemetry tracer; each validation pass then
// runs under its own span. Without it, tracing is a no-op.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Schema) {
		s.tracer = tracer
	}
}

// New builds a schema from columns in declaration order. Every column must
// carry a bound, unique name.
func New(cols []*Column, opts ...Option) (*Schema, error) {
	s := &Schema{
		cols:        make([]*Column, 0, len(cols)),
		nameToIndex: make(map[string]int, len(cols)),
	}
	for _, col := range cols {
		if col.Name() == "" {
			return nil, ErrUnboundColumn
		}
		if _, ok := s.nameToIndex[col.Name()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, col.Name())
		}
		s.nameToIndex[col.Name()] = len(s.cols)
		s.cols = append(s.cols, col)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = noop.NewTracerProvider().Tracer("")
	}
	return s, nil
}

// Def is one row of a declarative schema table: the struct-literal
// equivalent of declaring columns as named attributes. The zero value of
// NotNull keeps the default of nullable columns.
type Def struct {
	Name       string
	Kind       dtype.Kind
	NotNull    bool
	Validators []validator.Validator
}

// FromDefs builds a schema from a table of column definitions, binding each
// name in declared order.
func FromDefs(defs []Def, opts ...Option) (*Schema, error) {
	cols := make([]*Column, 0, len(defs))
	for _, d := range defs {
		colOpts := []ColumnOption{WithValidators(d.Validators...)}
		if d.NotNull {
			colOpts = append(colOpts, NotNull())
		}
		cols = append(cols, NewColumn(d.Name, d.Kind, colOpts...))
	}
	return New(cols, opts...)
}

// Len returns the number of declared columns.
func (s *Schema) Len() int {
	return len(s.cols)
}

// Column returns the declared column with the given name.
func (s *Schema) Column(name string) (*Column, bool) {
	i, ok := s.nameToIndex[name]
	if !ok {
		return nil, false
	}
	return s.cols[i], true
}

// Columns returns the column specs in declaration order. The returned slice
// is a copy; the specs themselves are shared and immutable.
func (s *Schema) Columns() []*Column {
	cols := make([]*Column, len(s.cols))
	copy(cols, s.cols)
	return cols
}
