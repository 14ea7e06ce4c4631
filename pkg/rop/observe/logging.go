package observe

import (
	"context"

	"go.uber.org/zap"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
)

// Logging writes one warning per reported failure.
func Logging(log *zap.Logger) core.Observer {
	if log == nil {
		log = zap.NewNop()
	}
	return core.ObserverFunc(func(ctx context.Context, op string, err rop.Error) {
		leaves := rop.Leaves(err)
		messages := make([]string, 0, len(leaves))
		for _, leaf := range leaves {
			messages = append(messages, leaf.Error())
		}

		log.Warn("rop failure",
			zap.String("op", op),
			zap.Stringer("kind", err.Kind()),
			zap.String("code", Code(err)),
			zap.Strings("errors", messages),
		)
	})
}

// Multi fans a failure out to every non-nil observer in order.
func Multi(observers ...core.Observer) core.Observer {
	return core.ObserverFunc(func(ctx context.Context, op string, err rop.Error) {
		for _, obs := range observers {
			if !rop.IsNil(obs) {
				obs.OnFailure(ctx, op, err)
			}
		}
	})
}
