package rop

// Outcome erases the success type so results of different types can be
// merged by one algorithm.
type Outcome interface {
	// Failure returns the error and true for a failed outcome
	Failure() (Error, bool)
}

var _ Outcome = Result[Unit]{}
