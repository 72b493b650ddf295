// Package dtype defines the logical type system for framecheck schemas and
// its mapping onto Arrow columnar storage types.
//
// A dtype.Kind is the declared semantic type of a column (integer, string,
// timestamp, ...), independent of physical layout. Each Kind maps to exactly
// one Arrow storage type; the mapping is total for the built-in set and fixed
// at process start. There is no runtime registration of new logical types;
// extensibility lives in validators, not in the type system.
//
// The package provides three operations:
//
//   - StorageType / KindForStorage: the bidirectional registry between
//     logical kinds and arrow.DataType descriptors.
//   - Infer: best-fit logical kind for a column of actual values, used when
//     deriving a schema from an existing frame.
//   - BuildArray: structural coercion, attempting to place a column's non-null
//     values into the declared Arrow storage type, reporting the first value
//     that cannot be represented losslessly.
//
// Inference follows observed data, not declared intent: an integer column
// containing any null infers as float64, because the storage representation
// must widen to hold a missing integer. An empty or all-null column infers
// as the untyped Object marker, which has no storage mapping and therefore
// fails any later structural check.
package dtype
