package async

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/solo"
)

type settler interface {
	wait()
}

// join blocks until every future has settled, whatever the completion
// order. Deferred futures are driven concurrently. Failures and panics are
// left for the caller to inspect in argument order.
func join(futures ...settler) {
	var g errgroup.Group
	for _, f := range futures {
		f := f
		g.Go(func() error {
			f.wait()
			return nil
		})
	}
	_ = g.Wait()
}

// Parallel2 joins two independent futures and merges them with
// solo.Combine2. A failing branch never stops the other one; a panic in any
// branch is raised once both have settled.
func Parallel2[T1, T2 any](ctx context.Context, f1 *Future[T1], f2 *Future[T2]) *Future[rop.Tuple2[T1, T2]] {
	return Defer(func() rop.Result[rop.Tuple2[T1, T2]] {
		join(f1, f2)
		return solo.Combine2(ctx, f1.Await(), f2.Await())
	})
}

func Parallel3[T1, T2, T3 any](ctx context.Context, f1 *Future[T1], f2 *Future[T2],
	f3 *Future[T3]) *Future[rop.Tuple3[T1, T2, T3]] {
	return Defer(func() rop.Result[rop.Tuple3[T1, T2, T3]] {
		join(f1, f2, f3)
		return solo.Combine3(ctx, f1.Await(), f2.Await(), f3.Await())
	})
}

func Parallel4[T1, T2, T3, T4 any](ctx context.Context, f1 *Future[T1], f2 *Future[T2],
	f3 *Future[T3], f4 *Future[T4]) *Future[rop.Tuple4[T1, T2, T3, T4]] {
	return Defer(func() rop.Result[rop.Tuple4[T1, T2, T3, T4]] {
		join(f1, f2, f3, f4)
		return solo.Combine4(ctx, f1.Await(), f2.Await(), f3.Await(), f4.Await())
	})
}

// ParallelAll joins any number of same-typed futures into one result of
// their values in argument order.
func ParallelAll[T any](ctx context.Context, futures ...*Future[T]) *Future[[]T] {
	return Defer(func() rop.Result[[]T] {
		settlers := make([]settler, len(futures))
		for i, f := range futures {
			settlers[i] = f
		}
		join(settlers...)

		results := make([]rop.Result[T], len(futures))
		for i, f := range futures {
			results[i] = f.Await()
		}
		return solo.CombineAll(ctx, results...)
	})
}
