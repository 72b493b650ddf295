// Package contract wraps a transformation function with pre- and
// post-condition schema checks.
//
// A contract declares, per argument name, either a *schema.Schema (the
// argument must be a *frame.Frame validating against it) or a reflect.Type
// (the argument must have exactly that runtime type), and per output name a
// *schema.Schema the produced frame must validate against. Wrap returns a
// function that checks the bound arguments, calls through, then checks the
// declared outputs, at most one validation per bound argument and one per
// declared output. The wrapper introduces no validation semantics of its
// own; everything is delegated to the schema engine.
package contract
