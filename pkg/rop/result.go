package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value or an Error, never both.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       Error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail panics with ErrInvalidArgument when err is nil.
func Fail[T any](err Error) Result[T] {
	if IsNil(err) {
		panic(fmt.Errorf("%w: failure needs a non-nil error", ErrInvalidArgument))
	}
	mustBeWellFormed(err)
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a failure, keeping its error, id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess || from.err == nil {
		panic(fmt.Errorf("%w: FailFrom needs a failure, got %s", ErrInvalidState, from.state()))
	}
	return Result[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FromTuple converts a Go (value, error) pair.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](FromError(err))
	}
	return Success(value)
}

// FromPtr maps an optional value: nil becomes Failure(err), anything else
// Success(*p).
func FromPtr[T any](p *T, err Error) Result[T] {
	if p == nil {
		return Fail[T](err)
	}
	return Success(*p)
}

// Value returns the success value. It panics with ErrInvalidState on a failure.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(fmt.Errorf("%w: value of %s result", ErrInvalidState, r.state()))
	}
	return r.result
}

// ValueOr returns the success value or def.
func (r Result[T]) ValueOr(def T) T {
	if !r.isSuccess {
		return def
	}
	return r.result
}

// Err returns the failure. It panics with ErrInvalidState on a success.
func (r Result[T]) Err() Error {
	if r.err == nil {
		panic(fmt.Errorf("%w: error of %s result", ErrInvalidState, r.state()))
	}
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// IsEmpty reports a zero Result that was never constructed.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Failure implements Outcome.
func (r Result[T]) Failure() (Error, bool) {
	if r.IsEmpty() {
		panic(fmt.Errorf("%w: empty result", ErrInvalidState))
	}
	return r.err, !r.isSuccess
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	if r.err != nil {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return "Empty"
}

func (r Result[T]) state() string {
	switch {
	case r.isSuccess:
		return "success"
	case r.err != nil:
		return "failure"
	default:
		return "empty"
	}
}
