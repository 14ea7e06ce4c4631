package solo

import (
	"context"
	"fmt"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err rop.Error) rop.Result[T] {
	return rop.Fail[T](err)
}

// Bind runs onSuccess on the value of a successful input and returns its
// result as is. A failed input is forwarded without calling onSuccess.
func Bind[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Value()))
	}
	return rop.FailFrom[In, Out](input)
}

// Try calls a (value, error) function and converts its error with rop.FromError.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			fail := rop.FromError(err)
			core.NotifyFailure(ctx, "try", fail)
			return rop.Fail[Out](fail)
		}

		return rop.Success(out)
	}

	return rop.FailFrom[In, Out](input)
}

// Ensure turns a success into Failure(err) when predicate is false. A
// passing success and any failure are returned unchanged.
func Ensure[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool,
	err rop.Error) rop.Result[T] {

	if rop.IsNil(err) {
		panic(fmt.Errorf("%w: ensure needs an error", rop.ErrInvalidArgument))
	}
	return EnsureFunc(ctx, input, predicate, func(context.Context, T) rop.Error { return err })
}

// EnsureFunc is Ensure with the error derived from the rejected value.
func EnsureFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool,
	errorFactory func(ctx context.Context, in T) rop.Error) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	if predicate(ctx, input.Value()) {
		return input
	}

	err := errorFactory(ctx, input.Value())
	core.NotifyFailure(ctx, "ensure", err)
	return rop.Fail[T](err)
}

// EnsureResult runs a check that itself returns a result. A failed check
// yields a failure carrying the check's error.
func EnsureResult[T any](ctx context.Context, input rop.Result[T],
	check func(ctx context.Context, in T) rop.Result[rop.Unit]) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	checked := check(ctx, input.Value())
	if checked.IsSuccess() {
		return input
	}

	core.NotifyFailure(ctx, "ensure", checked.Err())
	return rop.FailFrom[rop.Unit, T](checked)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

// AndValidate is Ensure for the (ok, message) validator shape; the message
// becomes a Simple error with rop.CodeValidation.
func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if !input.IsSuccess() {
		return rop.FailFrom[T, T](input)
	}

	if isValid, errMsg := validate(ctx, input.Value()); isValid {
		return input
	} else {
		err := rop.NewSimple(rop.CodeValidation, errMsg)
		core.NotifyFailure(ctx, "validate", err)
		return rop.Fail[T](err)
	}
}

// ValidateAll runs every validator against input and merges their errors
// with rop.Combine. With breakOnError it stops at the first failure.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if !input.IsSuccess() {
		return rop.FailFrom[T, T](input)
	}
	if len(validators) == 0 {
		return input
	}

	var merged rop.Error
	for _, validate := range validators {
		current := validate(ctx, input)
		if current.IsFailure() {
			merged = rop.Combine(merged, current.Err())
			if breakOnError {
				break
			}
		}
	}

	if merged == nil {
		return input
	}
	return rop.Fail[T](merged)
}

// Tee calls onSuccess for its effect and returns input unchanged.
func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		core.NotifyForwarded(ctx, "tee", input.Err())
	}

	return input
}

// TeeError calls onError with the failure and returns input unchanged.
func TeeError[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err rop.Error)) rop.Result[T] {

	if !input.IsSuccess() {
		err := input.Err()
		core.NotifyForwarded(ctx, "tee_error", err)
		onError(ctx, err)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err rop.Error)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

// Compensate replaces a failure with the result of recovery. Successes are
// returned without calling it.
func Compensate[T any](ctx context.Context, input rop.Result[T],
	recovery func(ctx context.Context, err rop.Error) rop.Result[T]) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return recovery(ctx, input.Err())
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err rop.Error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}
