// Package core carries pipeline options through context.Context: the
// failure Observer consulted by every combinator and the process options
// that tune when it is called. Nothing here is global; a pipeline without an
// observer in its context simply reports nothing.
package core
