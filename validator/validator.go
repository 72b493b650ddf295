package validator

// Validator is the capability a column applies to each of its non-null
// values.
type Validator interface {
	// Check reports whether the value satisfies the requirement. A non-nil
	// error means the validator itself failed to evaluate, which the engine
	// records separately from an ordinary false result.
	Check(value any) (bool, error)

	// Describe returns a human-readable statement of the requirement, used
	// in findings and documentation.
	Describe() string
}

// Func wraps an arbitrary predicate as a Validator. The description should
// state the requirement the predicate enforces.
func Func(description string, fn func(value any) bool) Validator {
	return &funcValidator{description: description, fn: fn}
}

type funcValidator struct {
	description string
	fn          func(value any) bool
}

func (v *funcValidator) Check(value any) (bool, error) {
	return v.fn(value), nil
}

func (v *funcValidator) Describe() string {
	return v.description
}
