package schema

import (
	"github.com/framecheck/framecheck/dtype"
	"github.com/framecheck/framecheck/validator"
)

// Column declares the contract for one column: name, logical kind,
// nullability, and the validators applied to each non-null value. Columns
// are immutable after construction.
type Column struct {
	name       string
	kind       dtype.Kind
	nullable   bool
	validators []validator.Validator
}

// ColumnOption configures a Column at construction.
type ColumnOption func(*Column)

// NotNull marks the column as non-nullable. Columns default to nullable.
func NotNull() ColumnOption {
	return func(c *Column) {
		c.nullable = false
	}
}

// WithValidators appends validators, applied to non-null values in the
// given order.
func WithValidators(vs ...validator.Validator) ColumnOption {
	return func(c *Column) {
		c.validators = append(c.validators, vs...)
	}
}

// NewColumn builds a column spec. The name may be left empty and bound
// later through a Def table; an unnamed column cannot join a schema.
func NewColumn(name string, kind dtype.Kind, opts ...ColumnOption) *Column {
	c := &Column{name: name, kind: kind, nullable: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rename returns a copy of the column bound to the given name. The receiver
// is left untouched: schemas index columns by name, and renaming in place
// would corrupt that index.
func (c *Column) Rename(name string) *Column {
	clone := &Column{
		name:       name,
		kind:       c.kind,
		nullable:   c.nullable,
		validators: make([]validator.Validator, len(c.validators)),
	}
	copy(clone.validators, c.validators)
	return clone
}

// Name returns the column name; empty until bound.
func (c *Column) Name() string {
	return c.name
}

// Kind returns the declared logical kind.
func (c *Column) Kind() dtype.Kind {
	return c.kind
}

// Nullable reports whether nulls are permitted.
func (c *Column) Nullable() bool {
	return c.nullable
}

// Validators returns a copy of the column's validator list in declared
// order.
func (c *Column) Validators() []validator.Validator {
	vs := make([]validator.Validator, len(c.validators))
	copy(vs, c.validators)
	return vs
}
