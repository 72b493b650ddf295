package framecheck

import (
	"github.com/framecheck/framecheck/frame"
	"github.com/framecheck/framecheck/schema"
)

// Version is the SDK version, following semantic versioning.
const Version = "0.3.0"

// Validate checks df against s. It is shorthand for s.Validate(df): nil on
// success, a *schema.ValidationError carrying every finding on violation.
func Validate(df *frame.Frame, s *schema.Schema) error {
	return s.Validate(df)
}

// Infer derives a schema from a sample frame. Shorthand for schema.Infer.
func Infer(df *frame.Frame) (*schema.Schema, error) {
	return schema.Infer(df)
}
