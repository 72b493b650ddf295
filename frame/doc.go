// Package frame provides the tabular data representation that framecheck
// schemas validate: an ordered, name-indexed collection of equal-length
// columns.
//
// A Series is one named column. It optionally carries a native Arrow storage
// type when constructed from a typed slice (FromInts, FromStrings, ...);
// columns built from heterogeneous values (FromValues) carry no dtype and
// are classified by sampling at inference time. A nil entry is a null.
//
// A Frame holds series in insertion order with unique names, mirroring an
// Arrow schema's field list plus name index. Frames are plain value
// carriers: validation never mutates them.
package frame
