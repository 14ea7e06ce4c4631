package async

import (
	"context"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/solo"
)

// Each lifted operator returns a deferred future: the input is awaited first
// and the solo operator is applied afterwards, on the awaiting goroutine.

func Bind[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) *Future[Out] {
	return Defer(func() rop.Result[Out] {
		return solo.Bind(ctx, input.Await(), onSuccess)
	})
}

func BindAsync[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, r In) *Future[Out]) *Future[Out] {
	return Bind(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		return onSuccess(ctx, r).Await()
	})
}

func BindResult[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) *Future[Out]) *Future[Out] {
	return BindAsync(ctx, FromResult(input), onSuccess)
}

func Map[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, r In) Out) *Future[Out] {
	return Defer(func() rop.Result[Out] {
		return solo.Map(ctx, input.Await(), onSuccess)
	})
}

func Try[In, Out any](ctx context.Context, input *Future[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) *Future[Out] {
	return Defer(func() rop.Result[Out] {
		return solo.Try(ctx, input.Await(), onTryExecute)
	})
}

func Ensure[T any](ctx context.Context, input *Future[T],
	predicate func(ctx context.Context, in T) bool, err rop.Error) *Future[T] {
	return Defer(func() rop.Result[T] {
		return solo.Ensure(ctx, input.Await(), predicate, err)
	})
}

// EnsureAsync awaits predicate only for a successful input. A predicate
// future that settles as a failure counts as a rejection.
func EnsureAsync[T any](ctx context.Context, input *Future[T],
	predicate func(ctx context.Context, in T) *Future[bool], err rop.Error) *Future[T] {
	return Ensure(ctx, input, func(ctx context.Context, in T) bool {
		return predicate(ctx, in).Await().ValueOr(false)
	}, err)
}

// EnsureFuncAsync computes the error asynchronously, and only when the
// predicate rejects the value.
func EnsureFuncAsync[T any](ctx context.Context, input *Future[T],
	predicate func(ctx context.Context, in T) bool,
	errorFactory func(ctx context.Context, in T) *Future[rop.Error]) *Future[T] {
	return Defer(func() rop.Result[T] {
		return solo.EnsureFunc(ctx, input.Await(), predicate, func(ctx context.Context, in T) rop.Error {
			produced := errorFactory(ctx, in).Await()
			if produced.IsFailure() {
				return produced.Err()
			}
			return produced.Value()
		})
	})
}

func EnsureResultAsync[T any](ctx context.Context, input *Future[T],
	check func(ctx context.Context, in T) *Future[rop.Unit]) *Future[T] {
	return Defer(func() rop.Result[T] {
		return solo.EnsureResult(ctx, input.Await(), func(ctx context.Context, in T) rop.Result[rop.Unit] {
			return check(ctx, in).Await()
		})
	})
}

func EnsureResult[T any](ctx context.Context, input rop.Result[T],
	check func(ctx context.Context, in T) *Future[rop.Unit]) *Future[T] {
	return EnsureResultAsync(ctx, FromResult(input), check)
}

func Tee[T any](ctx context.Context, input *Future[T],
	onSuccess func(ctx context.Context, r T)) *Future[T] {
	return Defer(func() rop.Result[T] {
		return solo.Tee(ctx, input.Await(), onSuccess)
	})
}

// TeeAsync waits for the action to settle; its outcome is ignored but a
// panic inside it propagates.
func TeeAsync[T any](ctx context.Context, input *Future[T],
	onSuccess func(ctx context.Context, r T) *Future[rop.Unit]) *Future[T] {
	return Tee(ctx, input, func(ctx context.Context, r T) {
		onSuccess(ctx, r).Await()
	})
}

func TeeResult[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T) *Future[rop.Unit]) *Future[T] {
	return TeeAsync(ctx, FromResult(input), onSuccess)
}

func TeeError[T any](ctx context.Context, input *Future[T],
	onError func(ctx context.Context, err rop.Error)) *Future[T] {
	return Defer(func() rop.Result[T] {
		return solo.TeeError(ctx, input.Await(), onError)
	})
}

func TeeErrorAsync[T any](ctx context.Context, input *Future[T],
	onError func(ctx context.Context, err rop.Error) *Future[rop.Unit]) *Future[T] {
	return TeeError(ctx, input, func(ctx context.Context, err rop.Error) {
		onError(ctx, err).Await()
	})
}

func TeeErrorResult[T any](ctx context.Context, input rop.Result[T],
	onError func(ctx context.Context, err rop.Error) *Future[rop.Unit]) *Future[T] {
	return TeeErrorAsync(ctx, FromResult(input), onError)
}

func Compensate[T any](ctx context.Context, input *Future[T],
	recovery func(ctx context.Context, err rop.Error) rop.Result[T]) *Future[T] {
	return Defer(func() rop.Result[T] {
		return solo.Compensate(ctx, input.Await(), recovery)
	})
}

func CompensateAsync[T any](ctx context.Context, input *Future[T],
	recovery func(ctx context.Context, err rop.Error) *Future[T]) *Future[T] {
	return Compensate(ctx, input, func(ctx context.Context, err rop.Error) rop.Result[T] {
		return recovery(ctx, err).Await()
	})
}

func CompensateResult[T any](ctx context.Context, input rop.Result[T],
	recovery func(ctx context.Context, err rop.Error) *Future[T]) *Future[T] {
	return CompensateAsync(ctx, FromResult(input), recovery)
}

// Finally awaits input and reduces it to a value.
func Finally[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err rop.Error) Out) Out {
	return solo.Finally(ctx, input.Await(), onSuccess, onError)
}
