package async

import (
	"sync"

	"github.com/ib-77/rail/pkg/rop"
)

// Future is a result that may not be available yet. It settles exactly once,
// either with a rop.Result or with a panic raised while computing it.
type Future[T any] struct {
	done    chan struct{}
	once    sync.Once
	run     func() rop.Result[T]
	result  rop.Result[T]
	fault   any
	faulted bool
}

// Go starts fn on a new goroutine and returns its future.
func Go[T any](fn func() rop.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.once.Do(func() {
		go f.settle(fn)
	})
	return f
}

// FromResult returns an already settled future.
func FromResult[T any](r rop.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), result: r}
	f.once.Do(func() {
		close(f.done)
	})
	return f
}

// Defer returns a future whose fn runs on the goroutine that first awaits
// it. Until then nothing is evaluated.
func Defer[T any](fn func() rop.Result[T]) *Future[T] {
	return &Future[T]{done: make(chan struct{}), run: fn}
}

// FromChan adapts a channel stage: the first value received settles the
// future, a channel closed without a value settles it as Failure(onClosed).
func FromChan[T any](ch <-chan rop.Result[T], onClosed rop.Error) *Future[T] {
	return Defer(func() rop.Result[T] {
		r, ok := <-ch
		if !ok {
			return rop.Fail[T](onClosed)
		}
		return r
	})
}

// Await blocks until the future settles and returns its result. A panic
// raised by the computation is raised again here with the original value.
func (f *Future[T]) Await() rop.Result[T] {
	f.wait()
	if f.faulted {
		panic(f.fault)
	}
	return f.result
}

// Done is closed once the future has settled. A deferred future settles
// only after something awaits it.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) wait() {
	f.once.Do(func() {
		f.settle(f.run)
	})
	<-f.done
}

func (f *Future[T]) settle(fn func() rop.Result[T]) {
	defer close(f.done)
	defer func() {
		if r := recover(); r != nil {
			f.fault = r
			f.faulted = true
		}
	}()

	f.result = fn()
}
