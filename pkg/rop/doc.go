// Package rop defines the data model of railway-oriented pipelines: the
// two-track Result[T] and the closed Error sum it carries on the failure
// track.
//
// Error has three variants:
//   - *Simple: one atomic cause with a code and a message
//   - *Validation: one or more named-field causes sharing a code
//   - *Aggregate: unrelated causes, always flattened
//
// Combine merges two errors. Two Validations concatenate into one (the left
// code is kept); everything else becomes an Aggregate holding only Simple and
// single-field Validation entries.
//
// Misuse (a nil error where one is required, reading the value of a failure
// or the error of a success) panics with an error wrapping ErrInvalidArgument
// or ErrInvalidState. Operators live in packages solo, async and chain.
package rop
