// Package async lifts the solo operators over Future[T], a result that may
// still be computing.
//
// Sources:
// - Go: start a computation on its own goroutine
// - FromResult: wrap an already materialized result
// - FromChan: adapt a channel stage that yields one result
// - Defer: a continuation evaluated by whoever awaits it
//
// Every lifted operator (Bind, Map, Try, Ensure, Tee, TeeError, Compensate
// and their Async/Result variants) is a continuation: nothing is evaluated
// before the input settles, and steps run in declaration order. Parallel2..4
// and ParallelAll wait for every branch before inspecting any of them, then
// merge the outcomes in argument order with the solo Combine family.
//
// Panics are not turned into failures. They are captured when the
// computation settles and raised again by Await.
//
// Turnout runs a stage over a channel of results on a fixed number of
// worker lines; Emit and Collect feed and drain it. It is the only place
// that watches ctx.Done. Elsewhere closures that need cancellation take it
// from the ctx they are handed.
package async
