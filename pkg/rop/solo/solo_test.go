package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
)

func observed(ops *[]string) context.Context {
	return core.WithObserver(context.Background(), core.ObserverFunc(
		func(_ context.Context, op string, _ rop.Error) {
			*ops = append(*ops, op)
		}))
}

func TestBind_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Bind(ctx, rop.Success(5), func(ctx context.Context, x int) rop.Result[int] {
		return rop.Success(x * 2)
	})

	require.True(t, out.IsSuccess())
	assert.Equal(t, 10, out.Value())
}

func TestBind_FailureSkipsFunction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	in := rop.Fail[int](rop.NewSimple("db", "down"))

	called := false
	out := Bind(ctx, in, func(ctx context.Context, x int) rop.Result[string] {
		called = true
		return rop.Success("never")
	})

	assert.False(t, called)
	assert.Same(t, in.Err(), out.Err())
	assert.Equal(t, in.Id(), out.Id())
}

func TestBind_ReturnsFunctionResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := rop.NewSimple("conflict", "taken")

	out := Bind(ctx, rop.Success("bob"), func(ctx context.Context, s string) rop.Result[int] {
		return rop.Fail[int](e)
	})

	assert.Same(t, e, out.Err())
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, "5!", Map(ctx, rop.Success(5), func(_ context.Context, x int) string {
		return "5!"
	}).Value())

	failed := Map(ctx, rop.Fail[int](rop.NewSimple("a", "b")), func(_ context.Context, x int) string {
		t.Fatal("map must not run on failure")
		return ""
	})
	assert.True(t, failed.IsFailure())
}

func TestTry(t *testing.T) {
	t.Parallel()
	var ops []string
	ctx := observed(&ops)

	ok := Try(ctx, rop.Success(4), func(_ context.Context, x int) (int, error) { return x * x, nil })
	assert.Equal(t, 16, ok.Value())

	boom := errors.New("boom")
	failed := Try(ctx, rop.Success(4), func(_ context.Context, x int) (int, error) { return 0, boom })
	require.True(t, failed.IsFailure())
	assert.ErrorIs(t, failed.Err(), boom)

	canceled := Try(ctx, rop.Success(4), func(ctx context.Context, x int) (int, error) {
		return 0, context.Canceled
	})
	assert.Equal(t, rop.CodeCanceled, canceled.Err().(*rop.Simple).Code())

	assert.Equal(t, []string{"try", "try"}, ops)
}

func TestEnsure_FalsePredicateFails(t *testing.T) {
	t.Parallel()
	var ops []string
	ctx := observed(&ops)
	e := rop.NewSimple("range", "too small")

	out := Ensure(ctx, rop.Success(5), func(context.Context, int) bool { return false }, e)

	assert.Same(t, e, out.Err())
	assert.Equal(t, []string{"ensure"}, ops)
}

func TestEnsure_PassingReturnsOriginal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	in := rop.Success(5)

	out := Ensure(ctx, in, func(_ context.Context, v int) bool { return v > 0 }, rop.NewSimple("a", "b"))

	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, 5, out.Value())
}

func TestEnsure_FailureUnchanged(t *testing.T) {
	t.Parallel()
	var ops []string
	ctx := observed(&ops)
	in := rop.Fail[int](rop.NewSimple("db", "down"))

	out := Ensure(ctx, in, func(context.Context, int) bool {
		t.Fatal("predicate must not run on failure")
		return false
	}, rop.NewSimple("other", "err"))

	assert.Same(t, in.Err(), out.Err())
	assert.Equal(t, in.Id(), out.Id())
	assert.Empty(t, ops)
}

func TestEnsure_NilErrorPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Ensure(context.Background(), rop.Success(1), func(context.Context, int) bool { return true }, nil)
	})
}

func TestEnsureFunc_DerivesError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := EnsureFunc(ctx, rop.Success(-3),
		func(_ context.Context, v int) bool { return v >= 0 },
		func(_ context.Context, v int) rop.Error {
			return rop.FieldInvalid(rop.CodeValidation, "age", "must be non-negative")
		})

	assert.Equal(t, "validation: age: must be non-negative", out.Err().Error())
}

func TestEnsureResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := rop.NewSimple("unique", "email taken")

	failed := EnsureResult(ctx, rop.Success("a@b.c"), func(context.Context, string) rop.Result[rop.Unit] {
		return rop.Fail[rop.Unit](e)
	})
	assert.Same(t, e, failed.Err())

	in := rop.Success("a@b.c")
	passed := EnsureResult(ctx, in, func(context.Context, string) rop.Result[rop.Unit] {
		return rop.Ok()
	})
	assert.Equal(t, in.Id(), passed.Id())
}

func TestTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	in := rop.Success(3)
	out := Tee(ctx, in, func(_ context.Context, v int) { seen = v })
	assert.Equal(t, 3, seen)
	assert.Equal(t, in.Id(), out.Id())

	Tee(ctx, rop.Fail[int](rop.NewSimple("a", "b")), func(context.Context, int) {
		t.Fatal("tee must not run on failure")
	})
}

func TestTeeError(t *testing.T) {
	t.Parallel()
	var ops []string
	ctx := core.WithProcessOptions(observed(&ops), true)

	e := rop.NewSimple("db", "down")
	var got rop.Error
	in := rop.Fail[int](e)
	out := TeeError(ctx, in, func(_ context.Context, err rop.Error) { got = err })

	assert.Same(t, e, got)
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, []string{"tee_error"}, ops)

	TeeError(ctx, rop.Success(1), func(context.Context, rop.Error) {
		t.Fatal("tee error must not run on success")
	})
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var okCalls, errCalls int
	onOk := func(context.Context, int) { okCalls++ }
	onErr := func(context.Context, rop.Error) { errCalls++ }

	DoubleTee(ctx, rop.Success(1), onOk, onErr)
	DoubleTee(ctx, rop.Fail[int](rop.NewSimple("a", "b")), onOk, onErr)

	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 1, errCalls)
}

func TestCompensate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	recovered := Compensate(ctx, rop.Fail[int](rop.NewSimple("cache", "miss")),
		func(context.Context, rop.Error) rop.Result[int] { return rop.Success(9) })
	assert.Equal(t, 9, recovered.Value())

	in := rop.Success(9)
	same := Compensate(ctx, in, func(context.Context, rop.Error) rop.Result[int] {
		t.Fatal("recovery must not run on success")
		return rop.Success(0)
	})
	assert.Equal(t, in.Id(), same.Id())
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onOk := func(_ context.Context, v int) string { return "ok" }
	onErr := func(_ context.Context, err rop.Error) string { return err.Error() }

	assert.Equal(t, "ok", Finally(ctx, rop.Success(1), onOk, onErr))
	assert.Equal(t, "a: b", Finally(ctx, rop.Fail[int](rop.NewSimple("a", "b")), onOk, onErr))
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	nonEmpty := func(_ context.Context, s string) (bool, string) {
		if s == "" {
			return false, "empty"
		}
		return true, ""
	}

	assert.Equal(t, "x", Validate(ctx, "x", nonEmpty).Value())

	failed := Validate(ctx, "", nonEmpty)
	require.True(t, failed.IsFailure())
	assert.Equal(t, "validation: empty", failed.Err().Error())
}

func TestZeroResult_FailsFastEverywhere(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var zero rop.Result[int]

	keep := func(_ context.Context, in rop.Result[int]) rop.Result[int] { return in }
	valid := func(context.Context, int) (bool, string) { return true, "" }

	cases := map[string]func(){
		"Bind":        func() { Bind(ctx, zero, func(context.Context, int) rop.Result[int] { return rop.Success(1) }) },
		"Map":         func() { Map(ctx, zero, func(_ context.Context, v int) int { return v }) },
		"Ensure":      func() { Ensure(ctx, zero, func(context.Context, int) bool { return true }, rop.NewSimple("e", "x")) },
		"Tee":         func() { Tee(ctx, zero, func(context.Context, int) {}) },
		"TeeError":    func() { TeeError(ctx, zero, func(context.Context, rop.Error) {}) },
		"AndValidate": func() { AndValidate(ctx, zero, valid) },
		"ValidateAll": func() { ValidateAll(ctx, zero, false, keep) },
		"Compensate":  func() { Compensate(ctx, zero, func(context.Context, rop.Error) rop.Result[int] { return rop.Success(0) }) },
	}

	for name, call := range cases {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, rop.ErrInvalidState) {
					t.Fatalf("%s: expected ErrInvalidState panic, got %v", name, r)
				}
			}()
			call()
		}()
	}
}
