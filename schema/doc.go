// Package schema declares expected column contracts for tabular frames and
// validates actual frames against them.
//
// A Column binds a name, a logical kind, a nullability flag, and an ordered
// list of validators. A Schema is an ordered, name-indexed collection of
// columns. Both are immutable after construction: renaming a column returns
// a copy, so a schema's name index can never be corrupted by an in-place
// rename. That immutability is also what makes one Schema safe to reuse for
// repeated and concurrent Validate calls.
//
// # Validation
//
// Validate is exhaustive: it never stops at the first violation. For each
// declared column, in declaration order, the engine runs four checks:
//
//  1. Presence: a missing column is recorded and ends that column's checks.
//  2. Nullability: nulls in a non-nullable column are recorded; nulls are
//     excluded from the remaining checks regardless of the flag's outcome.
//  3. Structural type: the non-null values are coerced into the declared
//     Arrow storage type; a coercion failure is recorded with its reason.
//  4. Semantic validators: each non-null value, in row order, runs the
//     column's validators in declared order, recording the first validator
//     that fails or errors for that row.
//
// Findings accumulate across all columns and surface once, as a single
// ValidationError whose message joins every finding's text by newlines. The
// structured Report behind it is available from Check, and distinguishes a
// validator that returned false from one that itself errored.
//
// The only fatal condition is a column whose declared kind has no storage
// mapping: there is no sensible way to keep checking that column, so
// Validate returns dtype.ErrUnsupportedType immediately.
//
// # Inference
//
// Infer derives a Schema from an existing frame: each column's kind comes
// from dtype.Infer, and nullability is set only if nulls were actually
// observed. Inferred schemas therefore describe observed reality tightly,
// while explicitly constructed columns default to nullable; the author
// opts into strictness.
package schema
