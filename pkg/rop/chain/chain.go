package chain

import (
	"context"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rop.Success(value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Bind(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Ensure switches to the failure track with err when predicate rejects the value
func (c *Chain[T]) Ensure(predicate func(context.Context, T) bool, err rop.Error) *Chain[T] {
	return c.with(solo.Ensure(c.ctx, c.result, predicate, err))
}

// EnsureFunc is Ensure with an error built from the rejected value
func (c *Chain[T]) EnsureFunc(predicate func(context.Context, T) bool,
	errorFactory func(context.Context, T) rop.Error) *Chain[T] {
	return c.with(solo.EnsureFunc(c.ctx, c.result, predicate, errorFactory))
}

// Tee performs a side effect without changing the result
func (c *Chain[T]) Tee(onSuccess func(context.Context, T)) *Chain[T] {
	return c.with(solo.Tee(c.ctx, c.result, onSuccess))
}

// TeeError performs a side effect on the failure track only
func (c *Chain[T]) TeeError(onError func(context.Context, rop.Error)) *Chain[T] {
	return c.with(solo.TeeError(c.ctx, c.result, onError))
}

// Compensate replaces a failure with the result of recovery
func (c *Chain[T]) Compensate(recovery func(context.Context, rop.Error) rop.Result[T]) *Chain[T] {
	return c.with(solo.Compensate(c.ctx, c.result, recovery))
}

// Or returns the first successful chain among c and alternatives, otherwise c
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt != nil && alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, rop.Error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}

func (c *Chain[T]) with(result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, result: result}
}
