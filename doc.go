// Package framecheck provides declarative schema validation for tabular
// dataframes.
//
// A caller describes the expected shape of a table (column names, logical
// types, nullability, and per-value validators) and framecheck checks an
// actual table against that description, reporting every violation found
// rather than stopping at the first one.
//
// # Core Concepts
//
//   - Frame: the tabular data under test, an ordered collection of named,
//     equal-length columns (package frame).
//   - Kind: a logical column type, mapped one-to-one onto an Arrow columnar
//     storage type (package dtype).
//   - Validator: a reusable predicate over a single cell value, with a
//     human-readable requirement description (package validator).
//   - Schema: an ordered collection of column specs and the validation
//     engine itself (package schema).
//   - Contract: a pre/post-condition wrapper applying schemas to a
//     transformation function's inputs and outputs (package contract).
//
// # Getting Started
//
//	df, err := frame.New(
//		frame.FromInts("age", 25, 30, 1),
//		frame.FromStrings("name", "Alice", "Bob", "Charlie"),
//		frame.FromFloats("score", 95.5, 88.0, 91.2),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s, err := schema.New([]*schema.Column{
//		schema.NewColumn("age", dtype.Int64, schema.NotNull(),
//			schema.WithValidators(validator.IsPositive())),
//		schema.NewColumn("name", dtype.Utf8, schema.NotNull(),
//			schema.WithValidators(validator.IsNonEmptyString())),
//		schema.NewColumn("score", dtype.Float64),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := s.Validate(df); err != nil {
//		fmt.Println(err) // every finding, one per line
//	}
//
// A schema can also be derived from a sample table with schema.Infer, which
// types each column from its observed values and marks it non-nullable
// unless nulls were actually present.
//
// Validation is exhaustive, single-threaded, and side-effect-free; a Schema
// is immutable after construction and safe to reuse concurrently across
// tables.
package framecheck
