package async

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/rail/pkg/rop"
)

// Emit feeds values into a channel of successes. The channel is closed when
// every value is sent or ctx is done.
func Emit[T any](ctx context.Context, values ...T) <-chan rop.Result[T] {
	out := make(chan rop.Result[T])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- rop.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Turnout runs stage over every result read from inputs using the given
// number of lines (at least one). Each output is an already settled future;
// a stage panic is kept in it and raised again by Await on the caller's
// goroutine. Output order follows completion, not input. When ctx is done,
// an input already taken by a line is emitted as a canceled failure and the
// rest are dropped. Readers must drain the output until it is closed, which
// happens once every line has stopped.
func Turnout[In, Out any](ctx context.Context, inputs <-chan rop.Result[In], lines int,
	stage func(ctx context.Context, input rop.Result[In]) *Future[Out]) <-chan *Future[Out] {

	if lines < 1 {
		lines = 1
	}
	out := make(chan *Future[Out])

	var g errgroup.Group
	for n := 0; n < lines; n++ {
		g.Go(func() error {
			locomotive(ctx, inputs, out, stage)
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(out)
	}()

	return out
}

func locomotive[In, Out any](ctx context.Context, inputs <-chan rop.Result[In], out chan<- *Future[Out],
	stage func(ctx context.Context, input rop.Result[In]) *Future[Out]) {

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputs:
			if !ok {
				return
			}

			processed := Go(func() rop.Result[Out] {
				return stage(ctx, in).Await()
			})
			select {
			case <-ctx.Done():
				out <- FromResult(rop.Fail[Out](rop.FromError(ctx.Err())))
				return
			case <-processed.Done():
			}

			select {
			case out <- processed:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Collect drains the output of Turnout and then awaits every future in
// arrival order. A stage panic is raised here, after all lines stopped.
func Collect[T any](results <-chan *Future[T]) []rop.Result[T] {
	var settled []*Future[T]
	for f := range results {
		settled = append(settled, f)
	}

	collected := make([]rop.Result[T], 0, len(settled))
	for _, f := range settled {
		collected = append(collected, f.Await())
	}
	return collected
}
