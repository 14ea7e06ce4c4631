package solo

import (
	"context"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
)

// MergeFailures folds the errors of every failed operand left to right
// through rop.Combine. All operands are inspected; nil means none failed.
func MergeFailures(operands ...rop.Outcome) rop.Error {
	var merged rop.Error
	for _, op := range operands {
		if err, failed := op.Failure(); failed {
			merged = rop.Combine(merged, err)
		}
	}
	return merged
}

func combined[T any](ctx context.Context, build func() T, operands ...rop.Outcome) rop.Result[T] {
	if merged := MergeFailures(operands...); merged != nil {
		core.NotifyFailure(ctx, "combine", merged)
		return rop.Fail[T](merged)
	}
	return rop.Success(build())
}

// CombineAll merges any number of same-typed results into one result of
// their values in argument order.
func CombineAll[T any](ctx context.Context, results ...rop.Result[T]) rop.Result[[]T] {
	operands := make([]rop.Outcome, len(results))
	for i, r := range results {
		operands[i] = r
	}
	return combined(ctx, func() []T {
		values := make([]T, len(results))
		for i, r := range results {
			values[i] = r.Value()
		}
		return values
	}, operands...)
}

// CombineUnit folds a value-less check into r.
func CombineUnit[T any](ctx context.Context, r rop.Result[T], check rop.Result[rop.Unit]) rop.Result[T] {
	return combined(ctx, r.Value, r, check)
}

func Combine2[T1, T2 any](ctx context.Context, r1 rop.Result[T1], r2 rop.Result[T2]) rop.Result[rop.Tuple2[T1, T2]] {
	return combined(ctx, func() rop.Tuple2[T1, T2] {
		return rop.Tuple2[T1, T2]{V1: r1.Value(), V2: r2.Value()}
	}, r1, r2)
}

func Combine3[T1, T2, T3 any](ctx context.Context, r1 rop.Result[T1], r2 rop.Result[T2],
	r3 rop.Result[T3]) rop.Result[rop.Tuple3[T1, T2, T3]] {
	return combined(ctx, func() rop.Tuple3[T1, T2, T3] {
		return rop.Tuple3[T1, T2, T3]{V1: r1.Value(), V2: r2.Value(), V3: r3.Value()}
	}, r1, r2, r3)
}

func Combine4[T1, T2, T3, T4 any](ctx context.Context, r1 rop.Result[T1], r2 rop.Result[T2],
	r3 rop.Result[T3], r4 rop.Result[T4]) rop.Result[rop.Tuple4[T1, T2, T3, T4]] {
	return combined(ctx, func() rop.Tuple4[T1, T2, T3, T4] {
		return rop.Tuple4[T1, T2, T3, T4]{V1: r1.Value(), V2: r2.Value(), V3: r3.Value(), V4: r4.Value()}
	}, r1, r2, r3, r4)
}

func Combine5[T1, T2, T3, T4, T5 any](ctx context.Context, r1 rop.Result[T1], r2 rop.Result[T2],
	r3 rop.Result[T3], r4 rop.Result[T4], r5 rop.Result[T5]) rop.Result[rop.Tuple5[T1, T2, T3, T4, T5]] {
	return combined(ctx, func() rop.Tuple5[T1, T2, T3, T4, T5] {
		return rop.Tuple5[T1, T2, T3, T4, T5]{V1: r1.Value(), V2: r2.Value(), V3: r3.Value(), V4: r4.Value(),
			V5: r5.Value()}
	}, r1, r2, r3, r4, r5)
}

// Append3 extends a combined pair with one more result. The outcome equals
// Combine3 over the same three operands.
func Append3[T1, T2, T3 any](ctx context.Context, r rop.Result[rop.Tuple2[T1, T2]],
	r3 rop.Result[T3]) rop.Result[rop.Tuple3[T1, T2, T3]] {
	return combined(ctx, func() rop.Tuple3[T1, T2, T3] {
		t := r.Value()
		return rop.Tuple3[T1, T2, T3]{V1: t.V1, V2: t.V2, V3: r3.Value()}
	}, r, r3)
}

func Append4[T1, T2, T3, T4 any](ctx context.Context, r rop.Result[rop.Tuple3[T1, T2, T3]],
	r4 rop.Result[T4]) rop.Result[rop.Tuple4[T1, T2, T3, T4]] {
	return combined(ctx, func() rop.Tuple4[T1, T2, T3, T4] {
		t := r.Value()
		return rop.Tuple4[T1, T2, T3, T4]{V1: t.V1, V2: t.V2, V3: t.V3, V4: r4.Value()}
	}, r, r4)
}

func Append5[T1, T2, T3, T4, T5 any](ctx context.Context, r rop.Result[rop.Tuple4[T1, T2, T3, T4]],
	r5 rop.Result[T5]) rop.Result[rop.Tuple5[T1, T2, T3, T4, T5]] {
	return combined(ctx, func() rop.Tuple5[T1, T2, T3, T4, T5] {
		t := r.Value()
		return rop.Tuple5[T1, T2, T3, T4, T5]{V1: t.V1, V2: t.V2, V3: t.V3, V4: t.V4, V5: r5.Value()}
	}, r, r5)
}
