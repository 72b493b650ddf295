// Package validator provides per-value validation capabilities for schema
// columns.
//
// A Validator is a reusable predicate over a single cell value together with
// a human-readable description of its requirement. Validators are never
// invoked on null values; null handling happens one level up, in the schema
// engine's per-column loop.
//
// Check returns a tagged pair: ok reports whether the value satisfies the
// requirement, and a non-nil error marks the validator itself as broken for
// that value. The engine records the two outcomes as distinct finding kinds,
// so a faulty validator is diagnosable separately from genuinely bad data.
//
// The built-in set covers one-sided and two-sided numeric bounds, set
// membership, sized-value length bounds, regular expression matching,
// non-empty strings, and positivity. Beyond the built-ins there are two
// extension points: Func wraps an arbitrary Go predicate, and Expr compiles
// a CEL expression over the variable "value" into a validator, for
// requirements supplied as configuration rather than code.
package validator
