// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without goroutines.
//
// Highlights:
// - Bind/Map/Try: move from Result[In] to Result[Out], short-circuiting failures
// - Ensure/EnsureFunc/EnsureResult: turn a success into a failure on a rejected predicate
// - Validate/AndValidate/ValidateAll: (ok, message) validators
// - Tee/TeeError/DoubleTee: side-effect helpers
// - Compensate: the only way back from the failure track
// - Combine2..Combine5/CombineAll/CombineUnit/Append3..Append5: merge
//   independent results without short-circuiting
// - Finally: reduce to a concrete value via success/error handlers
//
// Combinators that create a new failure report it once to the core.Observer
// found in the context.
package solo
